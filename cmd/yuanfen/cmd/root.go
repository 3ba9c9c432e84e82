// Package cmd contains all CLI commands for yuanfen.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/f3rmion/yuanfen/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yuanfen",
	Short: "BaZi Four Pillars charts and Yuan Fen compatibility",
	Long: `yuanfen computes Four Pillars of Destiny (BaZi) charts from a birth date
and hour, and scores the Yuan Fen (destined affinity) between two people.

A Yuan Fen score combines:
  - Zodiac compatibility of the birth-year animals (30%)
  - Element compatibility of the birth years (25%)
  - Day master and element balance of the full charts (25%)
  - San He, Liu He and complementary-element bonuses (20%)

Running 'yuanfen' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/yuanfen)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("db", "", "profile database (default is <config>/profiles.db)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.SilenceErrors = true
}

// initConfig reads in ENV variables and sets up logging.
func initConfig() {
	viper.SetEnvPrefix("YUANFEN")
	viper.AutomaticEnv()

	switch {
	case cfgFile != "":
		viper.Set("config_dir", cfgFile)
	case viper.GetString("config_dir") == "":
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig loads config.yaml from the config directory.
func loadUserConfig() (*config.Config, error) {
	dir := getConfigDir()
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.Path(dir), err)
	}
	log.Debug().Str("dir", dir).Str("locale", cfg.Locale).Msg("loaded config")
	return cfg, nil
}

// openStore opens the profile database named by --db or the config.
func openStore(cfg *config.Config) (*store.DB, error) {
	path := viper.GetString("db")
	if path == "" {
		path = cfg.DatabasePath(getConfigDir())
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	log.Debug().Str("path", path).Msg("opening profile database")
	return store.Open(path)
}

// person is a resolved birth date with a display name.
type person struct {
	Name  string
	Birth bazi.BirthData
}

// resolvePerson turns a command argument into a birth date. An empty ref
// means the configured "me"; a ref that does not parse as a date is looked
// up as a saved profile name or ID.
func resolvePerson(ctx context.Context, cfg *config.Config, ref string) (person, error) {
	if ref == "" {
		b, err := cfg.Me.BirthData()
		if err != nil {
			return person{}, err
		}
		name := cfg.Me.Name
		if name == "" {
			name = "Me"
		}
		return person{name, b}, nil
	}

	b, perr := bazi.ParseBirth(ref)
	if perr == nil {
		return person{Birth: b}, nil
	}

	db, err := openStore(cfg)
	if err != nil {
		return person{}, err
	}
	defer db.Close()

	p, err := db.Get(ctx, ref)
	if errors.Is(err, store.ErrProfileNotFound) {
		return person{}, fmt.Errorf("%q is neither a birth date (%v) nor a saved profile", ref, perr)
	}
	if err != nil {
		return person{}, err
	}
	return person{p.Name, p.BirthData}, nil
}

// outputFormat reads the --json and --yaml flags of cmd.
func outputFormat(cmd *cobra.Command) string {
	if ok, _ := cmd.Flags().GetBool("json"); ok {
		return "json"
	}
	if ok, _ := cmd.Flags().GetBool("yaml"); ok {
		return "yaml"
	}
	return "text"
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "print JSON")
	cmd.Flags().Bool("yaml", false, "print YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
