package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/yuanfen/internal/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI.

Views:
  1 Chart     Four Pillars for any birth date
  2 Match     Yuan Fen score and reading for two birth dates
  3 Profiles  saved profiles ranked against you
  4 Hours     today's element energy and auspicious hours
  5 Import    load profiles from a JSON Lines file
  6 Settings  the loaded configuration

Controls:
  Tab     Focus the menu
  ?       Help
  Esc     Quit from the menu`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	opts := tui.Options{Config: cfg, ConfigDir: getConfigDir()}

	db, err := openStore(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("profiles unavailable")
	} else {
		defer db.Close()
		opts.Profiles = db
		opts.Importer = db
	}

	p := tea.NewProgram(tui.NewApp(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
