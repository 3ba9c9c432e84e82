package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize yuanfen configuration",
	Long: `Write config.yaml to your config directory and create the profile
database.

Your own birth date is used whenever a command leaves out the first
person, e.g. 'yuanfen match <them>' or 'yuanfen hours'.

Example:
  yuanfen init --name Ann --birth "1990-06-15 14:00" --locale zh_CN`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initName   string
	initBirth  string
	initLocale string
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
	initCmd.Flags().StringVar(&initName, "name", "", "your name")
	initCmd.Flags().StringVar(&initBirth, "birth", "", "your birth date and hour")
	initCmd.Flags().StringVar(&initLocale, "locale", config.DefaultLocale, "date locale, e.g. en_US, zh_CN, de_DE")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := config.Path(configDir)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	if initBirth != "" {
		if _, err := bazi.ParseBirth(initBirth); err != nil {
			return fmt.Errorf("--birth: %w", err)
		}
	}

	if err := config.EnsureDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	cfg.Me = config.Person{Name: initName, Birth: initBirth}
	cfg.Locale = initLocale
	if err := config.SaveConfig(configDir, cfg); err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	if err := db.Close(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized yuanfen in %s\n\n", configDir)
	fmt.Fprintf(out, "  Created %s\n", config.FileName)
	fmt.Fprintf(out, "  Created %s\n", cfg.Database)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	if initBirth == "" {
		fmt.Fprintf(out, "  1. Set your birth date under 'me' in %s\n", path)
	} else {
		fmt.Fprintln(out, "  1. Run 'yuanfen chart' to see your Four Pillars")
	}
	fmt.Fprintln(out, "  2. Add people with 'yuanfen profiles add <name> <birth date>'")
	fmt.Fprintln(out, "  3. Run 'yuanfen profiles rank' or just 'yuanfen' for the TUI")

	return nil
}
