// Package views provides the individual views of the TUI.
package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/bazi"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // hanzi, selection
	ColorMuted     = lipgloss.Color("#666666") // help text
	ColorSuccess   = lipgloss.Color("#a8e6cf")
	ColorText      = lipgloss.Color("#f1faee")
	ColorLabel     = lipgloss.Color("#a8dadc")
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBgAlt     = lipgloss.Color("#2d3436")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var elementColors = [...]lipgloss.Color{
	bazi.Wood:  lipgloss.Color("#6ab04c"),
	bazi.Fire:  lipgloss.Color("#eb4d4b"),
	bazi.Earth: lipgloss.Color("#c49a6c"),
	bazi.Metal: lipgloss.Color("#dfe6e9"),
	bazi.Water: lipgloss.Color("#4a69bd"),
}

var _ = [1]struct{}{}[len(elementColors)-bazi.NumElements]

// ElementColor is the display color of an element.
func ElementColor(e bazi.Element) lipgloss.Color { return elementColors[e] }

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(12)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	bigCharStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt)

	rowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(0, 2)
)

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	ti.Width = 32
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	return ti
}
