package views

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/f3rmion/yuanfen/internal/report"
	"github.com/f3rmion/yuanfen/internal/store"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	cands []yuanfen.Candidate
	err   error
}

func (f fakeSource) Candidates(context.Context, string) ([]yuanfen.Candidate, error) {
	return f.cands, f.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var me = bazi.BirthData{Year: 1984, Month: 6, Day: 15, Hour: 12}

func TestChartModel(t *testing.T) {
	m := NewChartModel(report.NewRenderer("en_US"), nil, "1990-06-15 14:00")
	c, ok := m.Chart()
	require.True(t, ok)
	assert.Equal(t, bazi.BirthData{Year: 1990, Month: 6, Day: 15, Hour: 14}, c.Birth)
	assert.True(t, m.Capturing())
	assert.Contains(t, m.View(), c.Day.Hanzi())
	assert.Contains(t, m.View(), c.Day.Stem.Hanzi(), "falls back to the plain glyph")

	m.input.SetValue("not a date")
	m, _ = m.Update(key("enter"))
	require.Error(t, m.err)
	assert.Contains(t, m.View(), m.err.Error())
	_, ok = m.Chart()
	assert.True(t, ok, "keeps the previous chart")
}

func TestMatchModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := NewMatchModel(report.NewRenderer("en_US"), yuanfen.NewCache(), rng, "1984-06-15 12:00")
	assert.Equal(t, 1, m.focus)

	m.inputs[1].SetValue("1992-06-15 12:00")
	m, _ = m.Update(key("enter"))
	require.NoError(t, m.err)
	require.NotNil(t, m.score)
	want, err := yuanfen.Calculate(me, bazi.BirthData{Year: 1992, Month: 6, Day: 15, Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, want.Total, m.score.Total)
	assert.Contains(t, m.View(), want.Tier.Recommendation())
	assert.Contains(t, m.View(), "San He harmony")

	m, _ = m.Update(key("up"))
	assert.Equal(t, 0, m.focus)
	m.inputs[0].SetValue("garbage")
	m, _ = m.Update(key("enter"))
	assert.Equal(t, 1, m.focus, "enter on the first field moves on")
	m, _ = m.Update(key("enter"))
	assert.Error(t, m.err)
	assert.Equal(t, 0, m.focus, "focus returns to the bad field")

	m.copied = true
	assert.Contains(t, m.View(), "Copied!")
	m, _ = m.Update(ClearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestMatchModel_CopyWithoutResult(t *testing.T) {
	m := NewMatchModel(report.NewRenderer("en_US"), yuanfen.NewCache(), nil, "")
	m, cmd := m.Update(key("ctrl+y"))
	assert.Nil(t, cmd)
	assert.False(t, m.copied)
	assert.NoError(t, m.err)
}

func TestProfilesModel(t *testing.T) {
	src := fakeSource{cands: []yuanfen.Candidate{
		{ID: "a", Name: "Horse", Birth: bazi.BirthData{Year: 1990, Month: 6, Day: 15, Hour: 12}},
		{ID: "b", Name: "Monkey", Birth: bazi.BirthData{Year: 1992, Month: 6, Day: 15, Hour: 12}},
	}}
	birth := me
	m := NewProfilesModel(src, yuanfen.NewRanker(nil, 2), &birth)
	assert.True(t, m.loading)

	cmd := m.Load()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	assert.False(t, m.loading)
	require.NoError(t, m.err)
	require.Len(t, m.ranked, 2)

	assert.GreaterOrEqual(t, m.ranked[0].Score.Total, m.ranked[1].Score.Total)

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, m.ranked[0].ID, sel.ID)
	assert.Contains(t, m.View(), sel.Score.Tier.Recommendation())

	m, _ = m.Update(key("j"))
	sel, _ = m.Selected()
	assert.Equal(t, m.ranked[1].ID, sel.ID)
	m, _ = m.Update(key("j"))
	assert.Equal(t, 1, m.selected, "stops at the end")
	m, _ = m.Update(key("g"))
	assert.Equal(t, 0, m.selected)

	m, cmd = m.Update(key("r"))
	assert.NotNil(t, cmd)
	assert.True(t, m.loading)
}

func TestProfilesModel_Errors(t *testing.T) {
	m := NewProfilesModel(fakeSource{}, yuanfen.NewRanker(nil, 1), nil)
	assert.ErrorIs(t, m.err, ErrNoSubject)
	assert.Nil(t, m.Load())

	birth := me
	m = NewProfilesModel(nil, yuanfen.NewRanker(nil, 1), &birth)
	assert.ErrorIs(t, m.err, ErrNoProfiles)

	boom := errors.New("boom")
	m = NewProfilesModel(fakeSource{err: boom}, yuanfen.NewRanker(nil, 1), &birth)
	m, _ = m.Update(m.Load()())
	assert.ErrorIs(t, m.err, boom)
	assert.Contains(t, m.View(), "boom")
}

func TestHoursModel(t *testing.T) {
	c := bazi.MustChart(me)
	now := func() time.Time { return time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC) }

	m := NewHoursModel(report.NewRenderer("en_US"), &c, "Ann", now)
	require.NoError(t, m.err)
	assert.Contains(t, m.text, "Ann, Monday, June 3, 2024")
	assert.Contains(t, m.View(), "巳时")

	again := NewHoursModel(report.NewRenderer("en_US"), &c, "Ann", now)
	assert.Equal(t, m.text, again.text, "stable within a day")

	m, cmd := m.Update(hoursTickMsg(now()))
	assert.NotNil(t, cmd)

	none := NewHoursModel(report.NewRenderer("en_US"), nil, "", now)
	assert.ErrorIs(t, none.err, ErrNoSubject)
	assert.Contains(t, none.View(), ErrNoSubject.Error())
}

func TestSettingsModel(t *testing.T) {
	cfg := config.Default()
	cfg.Me = config.Person{Name: "Ann", Birth: "1984-06-15 12:00"}
	m := NewSettingsModel(cfg, "/tmp/yuanfen")
	m.SetSize(80, 24)

	assert.Contains(t, m.View(), "Ann")
	assert.Contains(t, m.View(), "Day Master")

	m, _ = m.Update(key("l"))
	assert.Contains(t, m.View(), "Min score")
	m, _ = m.Update(key("l"))
	assert.Contains(t, m.View(), "/tmp/yuanfen/profiles.db")
	m, _ = m.Update(key("l"))
	assert.Equal(t, 0, m.tab)
	m, _ = m.Update(key("h"))
	assert.Equal(t, 2, m.tab)
}

type fakeImporter struct {
	got string
}

func (f *fakeImporter) Import(_ context.Context, r io.Reader) (store.ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return store.ImportResult{}, err
	}
	f.got = string(data)
	return store.ImportResult{Added: 2, Skipped: []string{"line 3: duplicate"}}, nil
}

func TestImportModel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.jsonl"), []byte(`{"name":"Bo"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	imp := &fakeImporter{}
	m := NewImportModel(imp, dir)
	require.Len(t, m.entries, 3)
	assert.Equal(t, "..", m.entries[0].Name)
	assert.Equal(t, "sub", m.entries[1].Name)
	assert.Equal(t, "people.jsonl", m.entries[2].Name)

	m, _ = m.Update(key("G"))
	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.importing)

	msg := cmd()
	require.IsType(t, ImportedMsg{}, msg)
	m, _ = m.Update(msg)
	assert.False(t, m.importing)
	assert.Equal(t, `{"name":"Bo"}`, imp.got)
	assert.Contains(t, m.View(), "people.jsonl: 2 added, 1 skipped")
	assert.Contains(t, m.View(), "line 3: duplicate")

	m, _ = m.Update(key("g"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("enter"))
	assert.Equal(t, filepath.Join(dir, "sub"), m.currentDir)
	m, _ = m.Update(key("h"))
	assert.Equal(t, dir, m.currentDir)
}

func TestImportModel_NoImporter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p.jsonl"), nil, 0o644))

	m := NewImportModel(nil, dir)
	m, _ = m.Update(key("G"))
	_, cmd := m.Update(key("enter"))
	msg := cmd().(ImportedMsg)
	assert.ErrorIs(t, msg.Err, ErrNoProfiles)
}
