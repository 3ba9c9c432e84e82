package views

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/clipboard"
	"github.com/f3rmion/yuanfen/internal/reading"
	"github.com/f3rmion/yuanfen/internal/report"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/f3rmion/yuanfen/internal/zodiac"
)

// ClearCopiedMsg hides the copy confirmation.
type ClearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearCopiedMsg{}
	})
}

// MatchModel compares two birth dates.
type MatchModel struct {
	inputs   [2]textinput.Model
	focus    int
	renderer *report.Renderer
	cache    *yuanfen.Cache
	rng      *rand.Rand

	score  *yuanfen.Score
	text   string
	err    error
	copied bool

	width  int
	height int
}

// NewMatchModel creates the match view. me prefills the first birth date.
func NewMatchModel(r *report.Renderer, cache *yuanfen.Cache, rng *rand.Rand, me string) MatchModel {
	m := MatchModel{
		inputs:   [2]textinput.Model{newInput("Your birth date"), newInput("Their birth date")},
		renderer: r,
		cache:    cache,
		rng:      rng,
	}
	m.inputs[0].SetValue(me)
	if me != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()
	return m
}

// SetSize updates the view dimensions.
func (m *MatchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether keystrokes go to a text input.
func (m MatchModel) Capturing() bool { return true }

// Update handles messages.
func (m MatchModel) Update(msg tea.Msg) (MatchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearCopiedMsg:
		m.copied = false
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.focus == 0 {
				m.setFocus(1)
				return m, nil
			}
			m.compute()
			return m, nil
		case "up", "down":
			m.setFocus(1 - m.focus)
			return m, nil
		case "ctrl+r":
			m.render()
			return m, nil
		case "ctrl+y":
			if m.text == "" {
				return m, nil
			}
			if err := clipboard.Write(m.text); err != nil {
				m.err = err
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *MatchModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *MatchModel) compute() {
	m.err = nil
	var births [2]bazi.BirthData
	for i, in := range m.inputs {
		b, err := bazi.ParseBirth(in.Value())
		if err != nil {
			m.err = err
			m.setFocus(i)
			return
		}
		births[i] = b
	}

	s, err := m.cache.Score(births[0], births[1])
	if err != nil {
		m.err = err
		return
	}
	m.score = &s
	m.render()
}

// render redraws the result with a fresh narrative reading.
func (m *MatchModel) render() {
	if m.score == nil {
		return
	}
	s := *m.score
	age := zodiac.CompareAges(s.Chart1.Birth.Year - s.Chart2.Birth.Year)

	text, err := m.renderer.Match(report.MatchData{
		Name1:   "You",
		Name2:   "Them",
		Score:   s,
		Reading: reading.Generate(s, m.rng),
		Age:     age.Note,
	})
	if err != nil {
		m.err = err
		return
	}
	m.text = text
}

// View renders the match view.
func (m MatchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Yuan Fen"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.copied {
		b.WriteString("\n")
		b.WriteString(copiedStyle.Render("✓ Copied!"))
		b.WriteString("\n")
	}

	if m.score != nil {
		b.WriteString("\n")
		b.WriteString(boxStyle.Foreground(tierColor(m.score.Tier)).Render(strings.TrimRight(m.text, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: switch field • enter: compare • ctrl+r: new reading • ctrl+y: copy • tab: menu"))
	return b.String()
}

func tierColor(t yuanfen.Tier) lipgloss.Color {
	switch t {
	case yuanfen.Excellent, yuanfen.VeryGood:
		return ColorSuccess
	case yuanfen.Good:
		return ColorAccent
	default:
		return ColorPrimary
	}
}
