package tui

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/f3rmion/yuanfen/internal/report"
	"github.com/f3rmion/yuanfen/internal/tui/bigchar"
	"github.com/f3rmion/yuanfen/internal/tui/views"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewChart ViewType = iota
	ViewMatch
	ViewProfiles
	ViewHours
	ViewImport
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	Icon     string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// Options configures the app. Only Config is required.
type Options struct {
	Config    *config.Config
	ConfigDir string
	Profiles  views.CandidateSource
	Importer  views.Importer
	ImportDir string
	Now       func() time.Time
	Rand      *rand.Rand
}

// AppModel is the main TUI model
type AppModel struct {
	config *config.Config

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	chartView    views.ChartModel
	matchView    views.MatchModel
	profilesView views.ProfilesModel
	hoursView    views.HoursModel
	importView   views.ImportModel
	settingsView views.SettingsModel

	showHelp bool
}

// NewApp creates the TUI application
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32))
	}

	renderer := report.NewRenderer(cfg.Locale)
	cache := yuanfen.NewCache()

	var me *bazi.BirthData
	var meChart *bazi.Chart
	if b, err := cfg.Me.BirthData(); err == nil {
		if c, err := cache.Chart(b); err == nil {
			me, meChart = &b, &c
		}
	}

	menuItems := []MenuItem{
		{Label: "Chart", Icon: "柱", View: ViewChart, Shortcut: "1"},
		{Label: "Match", Icon: "缘", View: ViewMatch, Shortcut: "2"},
		{Label: "Profiles", Icon: "人", View: ViewProfiles, Shortcut: "3"},
		{Label: "Hours", Icon: "时", View: ViewHours, Shortcut: "4"},
		{Label: "Import", Icon: "入", View: ViewImport, Shortcut: "5"},
		{Label: "Settings", Icon: "設", View: ViewSettings, Shortcut: "6"},
	}

	return AppModel{
		config:       cfg,
		sidebarWidth: 18,
		currentView:  ViewChart,
		menuItems:    menuItems,

		chartView:    views.NewChartModel(renderer, bigchar.LoadSystem(), cfg.Me.Birth),
		matchView:    views.NewMatchModel(renderer, cache, rng, cfg.Me.Birth),
		profilesView: views.NewProfilesModel(opts.Profiles, yuanfen.NewRanker(cache, cfg.Concurrency), me),
		hoursView:    views.NewHoursModel(renderer, meChart, cfg.Me.Name, opts.Now),
		importView:   views.NewImportModel(opts.Importer, opts.ImportDir),
		settingsView: views.NewSettingsModel(cfg, opts.ConfigDir),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.profilesView.Load(), m.hoursView.Tick())
}

// capturing reports whether the active view takes plain keystrokes.
func (m AppModel) capturing() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewChart:
		return m.chartView.Capturing()
	case ViewMatch:
		return m.matchView.Capturing()
	case ViewProfiles:
		return m.profilesView.Capturing()
	case ViewHours:
		return m.hoursView.Capturing()
	case ViewImport:
		return m.importView.Capturing()
	default:
		return m.settingsView.Capturing()
	}
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		if !m.capturing() {
			switch key := msg.String(); key {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3", "4", "5", "6":
				m.switchTo(m.menuItems[key[0]-'1'].View)
				return m, nil
			}
		}

		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				m.switchTo(m.menuItems[m.selectedMenu].View)
				return m, nil
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.chartView.SetSize(contentWidth, contentHeight)
		m.matchView.SetSize(contentWidth, contentHeight)
		m.profilesView.SetSize(contentWidth, contentHeight)
		m.hoursView.SetSize(contentWidth, contentHeight)
		m.importView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case ViewSwitchMsg:
		m.switchTo(msg.View)
		return m, nil

	case views.ClearCopiedMsg:
		m.matchView, _ = m.matchView.Update(msg)
		return m, nil

	case views.ImportedMsg:
		var cmd tea.Cmd
		m.importView, cmd = m.importView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Result.Added > 0 {
			m.profilesView, cmd = m.profilesView.Update(views.ReloadMsg{})
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Background results go to their view regardless of focus.
	if _, ok := msg.(tea.KeyMsg); !ok {
		var cmd tea.Cmd
		m.profilesView, cmd = m.profilesView.Update(msg)
		cmds = append(cmds, cmd)
		m.hoursView, cmd = m.hoursView.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewChart:
		m.chartView, cmd = m.chartView.Update(msg)
	case ViewMatch:
		m.matchView, cmd = m.matchView.Update(msg)
	case ViewProfiles:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.profilesView, cmd = m.profilesView.Update(msg)
		}
	case ViewHours:
	case ViewImport:
		m.importView, cmd = m.importView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewChart:
		content = m.chartView.View()
	case ViewMatch:
		content = m.matchView.View()
	case ViewProfiles:
		content = m.profilesView.View()
	case ViewHours:
		content = m.hoursView.View()
	case ViewImport:
		content = m.importView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	mainContent := ContentStyle.
		Width(m.width - m.sidebarWidth - 4).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), mainContent)
}

func (m AppModel) renderSidebar() string {
	items := []string{SidebarTitleStyle.Render("  缘分 Yuan Fen  "), ""}

	for i, item := range m.menuItems {
		label := fmt.Sprintf("%s. %s %s", item.Shortcut, item.Icon, item.Label)

		style := SidebarItemStyle
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(views.ColorSecondary)
			}
		}
		items = append(items, style.Render(label))
	}

	used := len(items) + 4
	for i := 0; i < m.height-used-2; i++ {
		items = append(items, "")
	}
	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (m AppModel) renderHelp() string {
	key := func(k, desc string) string {
		return helpKeyStyle.Render(k) + helpDescStyle.Render(desc) + "\n"
	}

	text := helpTitleStyle.Render("Yuan Fen") + "\n\n"

	text += helpSectionStyle.Render("Global Keys") + "\n"
	text += key("1-6", "Switch views")
	text += key("tab/esc", "Focus the menu")
	text += key("?", "Show this help")
	text += key("q", "Quit")

	text += helpSectionStyle.Render("Chart") + "\n"
	text += key("enter", "Build chart")

	text += helpSectionStyle.Render("Match") + "\n"
	text += key("↑/↓", "Switch field")
	text += key("enter", "Compare")
	text += key("ctrl+r", "New reading")

	text += helpSectionStyle.Render("Profiles") + "\n"
	text += key("j/k ↑/↓", "Navigate")
	text += key("r", "Re-rank")

	text += helpSectionStyle.Render("Import") + "\n"
	text += key("enter", "Open folder or import file")
	text += key("backspace", "Parent folder")

	text += "\n" + lipgloss.NewStyle().
		Foreground(views.ColorMuted).
		Italic(true).
		Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(text))
}
