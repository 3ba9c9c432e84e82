// Package tui provides the interactive terminal UI for yuanfen.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/tui/views"
)

// Sidebar styles
var (
	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(views.ColorBorder).
			Padding(1, 1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(views.ColorPrimary).
				Background(views.ColorBg).
				Padding(0, 1).
				MarginBottom(1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(views.ColorMuted).
				Padding(0, 1)

	SidebarItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(views.ColorAccent).
				Background(views.ColorBgAlt).
				Padding(0, 1)

	SidebarHelpStyle = lipgloss.NewStyle().
				Foreground(views.ColorMuted).
				MarginTop(1).
				Padding(0, 1)
)

// Help overlay styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(views.ColorPrimary).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(views.ColorSecondary).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(views.ColorAccent).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(views.ColorText)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(views.ColorSecondary).
			Padding(1, 2).
			Width(52)
)

// ContentStyle pads the main content area.
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
