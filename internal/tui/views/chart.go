package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/report"
	"github.com/f3rmion/yuanfen/internal/tui/bigchar"
)

// ChartModel is the Four Pillars chart view.
type ChartModel struct {
	input    textinput.Model
	renderer *report.Renderer
	drawer   *bigchar.Drawer

	chart *bazi.Chart
	text  string
	err   error

	width  int
	height int
}

// NewChartModel creates the chart view. A non-empty birth is charted
// immediately.
func NewChartModel(r *report.Renderer, d *bigchar.Drawer, birth string) ChartModel {
	ti := newInput("Birth date, e.g. 1990-06-15 14:00")
	ti.Focus()

	m := ChartModel{input: ti, renderer: r, drawer: d}
	if birth != "" {
		m.input.SetValue(birth)
		m.compute()
	}
	return m
}

// SetSize updates the view dimensions.
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether keystrokes go to the text input.
func (m ChartModel) Capturing() bool { return m.input.Focused() }

// Chart returns the last computed chart, if any.
func (m ChartModel) Chart() (bazi.Chart, bool) {
	if m.chart == nil {
		return bazi.Chart{}, false
	}
	return *m.chart, true
}

// Update handles messages.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		m.compute()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChartModel) compute() {
	m.err = nil
	birth, err := bazi.ParseBirth(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	c, err := bazi.NewChart(birth)
	if err != nil {
		m.err = err
		return
	}
	text, err := m.renderer.Chart("", c)
	if err != nil {
		m.err = err
		return
	}
	m.chart = &c
	m.text = text
}

// View renders the chart view.
func (m ChartModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Four Pillars"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.chart != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Render(strings.TrimRight(m.text, "\n")), m.renderDayMaster()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: chart • tab: menu"))
	return b.String()
}

func (m ChartModel) renderDayMaster() string {
	stem := m.chart.Day.Stem
	style := bigCharStyle.Foreground(ElementColor(stem.Element()))

	art := m.drawer.Render(stem.Hanzi(), 16, 8)
	if art == "" {
		art = stem.Hanzi()
	}

	caption := subtitleStyle.Render(stem.String() + " " + stem.Element().String())
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(art), caption)
}
