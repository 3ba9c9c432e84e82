package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/config"
)

var settingsTabs = []string{"Me", "Matching", "Storage"}

// SettingsModel shows the loaded configuration.
type SettingsModel struct {
	config    *config.Config
	configDir string
	tab       int

	width  int
	height int
}

// NewSettingsModel creates the settings view.
func NewSettingsModel(cfg *config.Config, configDir string) SettingsModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return SettingsModel{config: cfg, configDir: configDir}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether keystrokes go to a text input.
func (m SettingsModel) Capturing() bool { return false }

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
		case "left", "h":
			m.tab = (m.tab + len(settingsTabs) - 1) % len(settingsTabs)
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Configuration"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Italic(true).Render("Config: " + config.Path(m.configDir)))
	b.WriteString("\n\n")

	var tabs []string
	for i, t := range settingsTabs {
		if i == m.tab {
			tabs = append(tabs, tabActiveStyle.Render(t))
		} else {
			tabs = append(tabs, tabStyle.Render(t))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", max(min(m.width-4, 60), 10))))
	b.WriteString("\n\n")

	switch m.tab {
	case 0:
		b.WriteString(m.renderMe())
	case 1:
		b.WriteString(m.row("Min score", fmt.Sprint(m.config.MinScore)))
		b.WriteString(m.row("Top", fmt.Sprint(m.config.Top)))
		b.WriteString(m.row("Concurrency", fmt.Sprint(m.config.Concurrency)))
	case 2:
		b.WriteString(m.row("Database", m.config.DatabasePath(m.configDir)))
		b.WriteString(m.row("Locale", m.config.Locale))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→: switch tabs • edit " + config.FileName + " to change"))
	return b.String()
}

func (m SettingsModel) renderMe() string {
	me := m.config.Me
	if me.Birth == "" {
		return helpStyle.Render("No birth date set. Run: yuanfen init") + "\n"
	}

	s := m.row("Name", me.Name) + m.row("Birth", me.Birth)
	birth, err := me.BirthData()
	if err != nil {
		return s + errorStyle.Render(err.Error()) + "\n"
	}
	c, err := bazi.NewChart(birth)
	if err != nil {
		return s + errorStyle.Render(err.Error()) + "\n"
	}
	dm := lipgloss.NewStyle().Foreground(ElementColor(c.DayMaster)).Bold(true).Render(c.DayMaster.String() + " " + c.DayMaster.Hanzi())
	return s + m.row("Day Master", dm) + m.row("Zodiac", c.Year.Animal.String())
}

func (m SettingsModel) row(label, value string) string {
	return labelStyle.Render(label) + rowStyle.Render(value) + "\n"
}
