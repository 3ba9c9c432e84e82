// Package config handles loading and saving user configuration for yuanfen.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// DefaultLocale is used for date formatting when none is configured.
const DefaultLocale = "en_US"

// Config holds all user configuration.
type Config struct {
	Me          Person `yaml:"me"`
	Locale      string `yaml:"locale"`      // monday locale, e.g. "en_US", "zh_CN"
	Database    string `yaml:"database"`    // sqlite path; relative paths sit in the config dir
	MinScore    int    `yaml:"min_score"`   // candidate filter threshold
	Top         int    `yaml:"top"`         // ranking limit
	Concurrency int    `yaml:"concurrency"` // candidates scored in parallel
}

// Person is a named birth date as written by the user.
type Person struct {
	Name  string `yaml:"name"`
	Birth string `yaml:"birth"` // free-form, e.g. "1990-06-15 12:00"
}

// BirthData parses the person's birth date.
func (p Person) BirthData() (bazi.BirthData, error) {
	if p.Birth == "" {
		return bazi.BirthData{}, errors.New("no birth date configured for me; run yuanfen init")
	}
	return bazi.ParseBirth(p.Birth)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale:      DefaultLocale,
		Database:    "profiles.db",
		MinScore:    yuanfen.DefaultMinScore,
		Top:         yuanfen.DefaultLimit,
		Concurrency: yuanfen.DefaultConcurrency,
	}
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// DatabasePath resolves the database path against dir.
func (c *Config) DatabasePath(dir string) string {
	if filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(dir, c.Database)
}

// LoadConfig loads the configuration from a directory. A missing file yields
// Default; unset fields keep their default values.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score %d outside 0-100", c.MinScore)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	if c.Me.Birth != "" {
		if _, err := c.Me.BirthData(); err != nil {
			return fmt.Errorf("me: %w", err)
		}
	}
	return nil
}

// SaveConfig writes the configuration into dir.
func SaveConfig(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "yuanfen"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
