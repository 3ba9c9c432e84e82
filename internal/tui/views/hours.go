package views

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/yuanfen/internal/auspicious"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/report"
)

type hoursTickMsg time.Time

// HoursModel shows today's insight and auspicious hours for the user's
// day master. It refreshes every minute.
type HoursModel struct {
	renderer *report.Renderer
	chart    *bazi.Chart
	name     string
	now      func() time.Time

	text string
	err  error

	width  int
	height int
}

// NewHoursModel creates the hours view. chart is nil when the user has not
// configured a birth date.
func NewHoursModel(r *report.Renderer, chart *bazi.Chart, name string, now func() time.Time) HoursModel {
	if now == nil {
		now = time.Now
	}
	m := HoursModel{renderer: r, chart: chart, name: name, now: now}
	m.refresh()
	return m
}

// SetSize updates the view dimensions.
func (m *HoursModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether keystrokes go to a text input.
func (m HoursModel) Capturing() bool { return false }

// Tick schedules the next refresh.
func (m HoursModel) Tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return hoursTickMsg(t) })
}

// Update handles messages.
func (m HoursModel) Update(msg tea.Msg) (HoursModel, tea.Cmd) {
	if _, ok := msg.(hoursTickMsg); ok {
		m.refresh()
		return m, m.Tick()
	}
	return m, nil
}

func (m *HoursModel) refresh() {
	if m.chart == nil {
		m.err = ErrNoSubject
		return
	}
	now := m.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	text, err := m.renderer.Insight(report.InsightData{
		Name:           m.name,
		Insight:        auspicious.Daily(*m.chart, day, auspicious.DayRand(day)),
		Recommendation: auspicious.Recommendation(m.chart.DayMaster, now.Hour()),
	})
	m.text, m.err = text, err
}

// View renders the hours view.
func (m HoursModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Auspicious Hours"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	now := auspicious.HourAt(m.now().Hour())
	b.WriteString(labelStyle.Render("Now") + now.Hanzi() + " " + now.Name() + " (" + now.Range() + ")")
	b.WriteString("\n\n")
	b.WriteString(boxStyle.BorderForeground(ElementColor(m.chart.DayMaster)).Render(strings.TrimRight(m.text, "\n")))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("refreshes every minute • tab: menu"))
	return b.String()
}
