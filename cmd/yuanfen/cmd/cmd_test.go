package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChart(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "chart", "1990-06-15 14:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Born Friday, June 15, 1990 at 14:00")
	assert.Contains(t, out, "Day Master:")
	assert.Contains(t, out, "Year of the Horse 马")

	out, err = run(t, dir, "chart", "1990-06-15 14:00", "--json")
	require.NoError(t, err)
	var got struct {
		Chart struct {
			Birth struct{ Year, Month, Day, Hour int }
			Day   struct {
				Stem string `json:"stem"`
			} `json:"day"`
			DayMaster string `json:"day_master"`
		} `json:"chart"`
		Balanced bool `json:"balanced"`
		Zodiac   struct {
			Animal   string `json:"animal"`
			Polarity string `json:"polarity"`
		} `json:"zodiac"`
		Partners []string `json:"compatible_animals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Horse", got.Zodiac.Animal)
	assert.Equal(t, "Yang", got.Zodiac.Polarity)
	assert.Equal(t, []string{"Tiger", "Goat", "Dog", "Dragon"}, got.Partners)
	assert.Equal(t, 1990, got.Chart.Birth.Year)
	assert.Equal(t, 14, got.Chart.Birth.Hour)
	assert.NotEmpty(t, got.Chart.Day.Stem)
	assert.NotEmpty(t, got.Chart.DayMaster)

	out, err = run(t, dir, "chart", "1990-06-15 14:00", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "day_master:")

	_, err = run(t, dir, "chart")
	assert.ErrorContains(t, err, "no birth date configured")

	_, err = run(t, dir, "chart", "nobody")
	assert.ErrorContains(t, err, `"nobody" is neither a birth date`)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init", "--name", "Ann", "--birth", "1990-06-15 14:00", "--locale", "zh_CN")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized yuanfen")
	assert.FileExists(t, filepath.Join(dir, config.FileName))
	assert.FileExists(t, filepath.Join(dir, "profiles.db"))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "Ann", cfg.Me.Name)
	assert.Equal(t, "zh_CN", cfg.Locale)

	_, err = run(t, dir, "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, dir, "init", "--force", "--birth", "not a date")
	assert.Error(t, err)

	out, err = run(t, dir, "chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann, born 1990年6月15日")
}

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	args := []string{"match", "1984-03-10 08:00", "1992-11-02 21:00", "--seed", "7"}

	first, err := run(t, dir, args...)
	require.NoError(t, err)
	assert.Contains(t, first, "First & Second")
	assert.Contains(t, first, "Yuan Fen ")
	assert.Contains(t, first, "Rat & Monkey")

	second, err := run(t, dir, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "seeded readings repeat")

	out, err := run(t, dir, append(args, "--json")...)
	require.NoError(t, err)
	var got struct {
		Score struct {
			Total int    `json:"total"`
			Tier  string `json:"tier"`
		} `json:"score"`
		Reading struct {
			Headline string `json:"headline"`
		} `json:"reading"`
		Age struct {
			Note string `json:"note"`
		} `json:"age"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.GreaterOrEqual(t, got.Score.Total, 0)
	assert.LessOrEqual(t, got.Score.Total, 100)
	assert.NotEmpty(t, got.Score.Tier)
	assert.NotEmpty(t, got.Reading.Headline)
	assert.Equal(t, "San He harmony - natural understanding", got.Age.Note)

	_, err = run(t, dir, "match", "1984-03-10")
	assert.ErrorContains(t, err, "no birth date configured")
}

func TestQuick(t *testing.T) {
	out, err := run(t, t.TempDir(), "quick", "1990", "1992")
	require.NoError(t, err)
	assert.Equal(t, "1990 Metal Horse & 1992 Water Monkey: 70/100, compatible\n"+
		"  Horse 马: Energetic, Independent, Cheerful, Warm-hearted, Talented, Free-spirited\n"+
		"  Monkey 猴: Clever, Versatile, Energetic, Witty, Innovative, Sociable\n", out)

	out, err = run(t, t.TempDir(), "quick", "1990", "1992", "--json")
	require.NoError(t, err)
	var got struct {
		Score  int `json:"score"`
		Traits []struct {
			Animal string `json:"animal"`
			Hanzi  string `json:"hanzi"`
		} `json:"traits"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 70, got.Score)
	require.Len(t, got.Traits, 2)
	assert.Equal(t, "Horse", got.Traits[0].Animal)
	assert.Equal(t, "猴", got.Traits[1].Hanzi)

	_, err = run(t, t.TempDir(), "quick", "1990", "soon")
	assert.ErrorContains(t, err, "invalid year")
}

func TestHours(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "hours", "2024-06-03", "--profile", "1990-06-15 14:00", "--at", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday, June 3, 2024")
	assert.Contains(t, out, "Auspicious hours:")

	_, err = run(t, dir, "hours", "--profile", "1990-06-15 14:00", "--at", "24")
	assert.Error(t, err)
}

func TestProfiles(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init", "--name", "Me", "--birth", "1984-06-15 12:00")
	require.NoError(t, err)

	out, err := run(t, dir, "profiles", "add", "alice", "1992-11-02 21:00", "--note", "friend")
	require.NoError(t, err)
	assert.Contains(t, out, "Added alice")

	_, err = run(t, dir, "profiles", "add", "alice", "1990-01-01")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, dir, "profiles", "add", "bob", "1990-02-30")
	assert.Error(t, err)

	jsonl := filepath.Join(dir, "people.jsonl")
	require.NoError(t, os.WriteFile(jsonl, []byte(
		`{"name":"bob","year":1990,"month":6,"day":15,"hour":9}`+"\n"+
			`{"name":"carol","birth":"1988-08-08 08:00"}`+"\n"+
			`{"name":"alice","birth":"1992-11-02 21:00"}`+"\n"+
			`not json`+"\n"), 0o644))
	out, err = run(t, dir, "profiles", "import", jsonl)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 profile(s)")
	assert.Contains(t, out, "skipped line 3")
	assert.Contains(t, out, "skipped line 4")

	out, err = run(t, dir, "profiles", "list")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "friend")

	out, err = run(t, dir, "profiles", "list", "--year", "1990", "--json")
	require.NoError(t, err)
	var listed []struct {
		Name string `json:"name"`
		Year int    `json:"year"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "bob", listed[0].Name)

	out, err = run(t, dir, "profiles", "show", "carol")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:       carol")
	assert.Contains(t, out, "Zodiac:     Earth Dragon")

	out, err = run(t, dir, "profiles", "rank", "--min", "0", "--top", "2", "--json")
	require.NoError(t, err)
	var ranked []struct {
		Name  string `json:"name"`
		Score struct {
			Total int `json:"total"`
		} `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	require.Len(t, ranked, 2)
	assert.GreaterOrEqual(t, ranked[0].Score.Total, ranked[1].Score.Total)

	out, err = run(t, dir, "profiles", "rank", "--min", "0", "--sanhe")
	require.NoError(t, err)
	assert.Contains(t, out, "alice", "Rat and Monkey share a trinity")
	assert.Contains(t, out, "carol", "Rat and Dragon share a trinity")
	assert.NotContains(t, out, "bob")

	out, err = run(t, dir, "profiles", "rank", "--min", "101")
	require.NoError(t, err)
	assert.Contains(t, out, "No profiles score 101 or more.")

	out, err = run(t, dir, "match", "alice", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Me & alice")

	_, err = run(t, dir, "profiles", "remove", "bob")
	require.NoError(t, err)
	_, err = run(t, dir, "profiles", "show", "bob")
	assert.ErrorContains(t, err, "profile not found")
}
