package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/mattn/go-runewidth"
)

// View errors.
var (
	ErrNoSubject  = errors.New("no birth date configured; run yuanfen init")
	ErrNoProfiles = errors.New("no profile database")
)

// CandidateSource lists the saved profiles to rank.
type CandidateSource interface {
	Candidates(ctx context.Context, exclude string) ([]yuanfen.Candidate, error)
}

// ReloadMsg asks the profiles view to rank again.
type ReloadMsg struct{}

type rankedMsg struct {
	ranked []yuanfen.Ranked
	err    error
}

// ProfilesModel ranks saved profiles against the user's own birth date.
type ProfilesModel struct {
	source CandidateSource
	ranker *yuanfen.Ranker
	me     *bazi.BirthData

	ranked   []yuanfen.Ranked
	selected int
	loading  bool
	err      error

	width  int
	height int
}

// NewProfilesModel creates the profiles view. me is nil when the user has
// not configured a birth date.
func NewProfilesModel(source CandidateSource, ranker *yuanfen.Ranker, me *bazi.BirthData) ProfilesModel {
	m := ProfilesModel{source: source, ranker: ranker, me: me}
	switch {
	case me == nil:
		m.err = ErrNoSubject
	case source == nil:
		m.err = ErrNoProfiles
	default:
		m.loading = true
	}
	return m
}

// SetSize updates the view dimensions.
func (m *ProfilesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether keystrokes go to a text input.
func (m ProfilesModel) Capturing() bool { return false }

// Load ranks all profiles in the background. It returns nil when there is
// nothing to rank against.
func (m ProfilesModel) Load() tea.Cmd {
	if m.me == nil || m.source == nil {
		return nil
	}
	source, ranker, me := m.source, m.ranker, *m.me
	return func() tea.Msg {
		ctx := context.Background()
		cands, err := source.Candidates(ctx, "")
		if err != nil {
			return rankedMsg{err: err}
		}
		ranked, err := ranker.Rank(ctx, me, cands)
		return rankedMsg{ranked: ranked, err: err}
	}
}

// Selected returns the highlighted profile.
func (m ProfilesModel) Selected() (yuanfen.Ranked, bool) {
	if m.selected < 0 || m.selected >= len(m.ranked) {
		return yuanfen.Ranked{}, false
	}
	return m.ranked[m.selected], true
}

// Update handles messages.
func (m ProfilesModel) Update(msg tea.Msg) (ProfilesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rankedMsg:
		m.loading = false
		m.ranked = msg.ranked
		m.err = msg.err
		m.selected = min(m.selected, max(len(m.ranked)-1, 0))
		return m, nil

	case ReloadMsg:
		return m.reload()

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.ranked)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "g":
			m.selected = 0
		case "G":
			m.selected = max(len(m.ranked)-1, 0)
		case "r":
			return m.reload()
		}
	}
	return m, nil
}

func (m ProfilesModel) reload() (ProfilesModel, tea.Cmd) {
	cmd := m.Load()
	if cmd != nil {
		m.loading = true
	}
	return m, cmd
}

// View renders the profiles view.
func (m ProfilesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Profiles"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d ranked", len(m.ranked))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(loadingStyle.Render("Ranking profiles..."))
		b.WriteString("\n")
	case len(m.ranked) == 0 && m.err == nil:
		b.WriteString(helpStyle.Render("No profiles yet. Add some with: yuanfen profiles add"))
		b.WriteString("\n")
	}

	// Ranking still returns the valid profiles alongside a joined error.
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if len(m.ranked) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), "  ", m.renderDetail()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: navigate • r: reload • tab: menu"))
	return b.String()
}

func (m ProfilesModel) renderList() string {
	visible := max(m.height-8, 5)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(m.ranked))

	var rows []string
	for i := start; i < end; i++ {
		r := m.ranked[i]
		line := fmt.Sprintf("%3d  %s", r.Score.Total, runewidth.FillRight(runewidth.Truncate(r.Name, 18, "…"), 18))
		if i == m.selected {
			rows = append(rows, selectedStyle.Render(line))
		} else {
			rows = append(rows, rowStyle.Render(line))
		}
	}
	return strings.Join(rows, "\n")
}

func (m ProfilesModel) renderDetail() string {
	r, ok := m.Selected()
	if !ok {
		return ""
	}
	s := r.Score

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tierColor(s.Tier)).Render(s.Tier.Recommendation()))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Born") + r.Birth.String() + "\n")
	b.WriteString(labelStyle.Render("Zodiac") + fmt.Sprintf("%d  %s & %s", s.Breakdown.Zodiac, s.Zodiac.First, s.Zodiac.Second) + "\n")
	b.WriteString(labelStyle.Render("Element") + fmt.Sprintf("%d  %s", s.Breakdown.Element, s.Elements.Relation) + "\n")
	b.WriteString(labelStyle.Render("BaZi") + fmt.Sprintf("%d", s.Breakdown.BaZi) + "\n")
	b.WriteString(labelStyle.Render("Special") + fmt.Sprintf("%d", s.Breakdown.Special) + "\n")

	for _, str := range s.Strengths {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(ColorSuccess).Render("+ "+str))
	}
	for _, c := range s.Challenges {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(ColorPrimary).Render("- "+c))
	}

	return boxStyle.Width(max(m.width-32, 30)).Render(b.String())
}
