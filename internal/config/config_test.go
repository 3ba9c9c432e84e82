package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Me = Person{Name: "Mei", Birth: "1990-06-15 14:30"}
	cfg.Locale = "zh_CN"
	cfg.Top = 5

	require.NoError(t, SaveConfig(dir, cfg))
	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	b, err := loaded.Me.BirthData()
	require.NoError(t, err)
	assert.Equal(t, bazi.BirthData{Year: 1990, Month: 6, Day: 15, Hour: 14}, b)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("min_score: 75\n"), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.MinScore)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, Default().Top, cfg.Top)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("top: [1, 2"), 0644))

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.MinScore = 101
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Me.Birth = "not a date"
	assert.Error(t, cfg.Validate())

	_, err := Default().Me.BirthData()
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/cfg", "profiles.db"), cfg.DatabasePath("/cfg"))

	cfg.Database = "/var/lib/yuanfen.db"
	assert.Equal(t, "/var/lib/yuanfen.db", cfg.DatabasePath("/cfg"))
}
