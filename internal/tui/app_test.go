package tui

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noProfiles struct{}

func (noProfiles) Candidates(context.Context, string) ([]yuanfen.Candidate, error) { return nil, nil }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	cfg := config.Default()
	cfg.Me = config.Person{Name: "Ann", Birth: "1984-06-15 12:00"}

	m := NewApp(Options{
		Config:    cfg,
		ConfigDir: t.TempDir(),
		Profiles:  noProfiles{},
		ImportDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC) },
		Rand:      rand.New(rand.NewPCG(1, 1)),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestApp_View(t *testing.T) {
	assert.Equal(t, "Loading...", NewApp(Options{}).View())

	m := newTestApp(t)
	out := m.View()
	assert.Contains(t, out, "Yuan Fen")
	assert.Contains(t, out, "Four Pillars")
}

func TestApp_Navigation(t *testing.T) {
	m := newTestApp(t)
	assert.Equal(t, ViewChart, m.currentView)

	// Digits are typed into the birth date field while it has focus.
	m, _ = update(t, m, runes("2"))
	assert.Equal(t, ViewChart, m.currentView)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.sidebarActive)
	m, _ = update(t, m, runes("3"))
	assert.Equal(t, ViewProfiles, m.currentView)
	assert.False(t, m.sidebarActive)

	m, _ = update(t, m, runes("4"))
	assert.Equal(t, ViewHours, m.currentView)
	assert.Contains(t, m.View(), "Auspicious Hours")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewImport, m.currentView)
	assert.Contains(t, m.View(), "Import Profiles")

	m, _ = update(t, m, runes("6"))
	assert.Equal(t, ViewSettings, m.currentView)

	m, _ = update(t, m, ViewSwitchMsg{View: ViewMatch})
	assert.Equal(t, ViewMatch, m.currentView)
	assert.Equal(t, 1, m.selectedMenu)
}

func TestApp_HelpAndQuit(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Press any key to close")
	m, _ = update(t, m, runes("x"))
	assert.False(t, m.showHelp)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
