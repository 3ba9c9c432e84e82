// Package report renders charts, Yuan Fen scores and daily insights as
// plain text.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/f3rmion/yuanfen/internal/auspicious"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/pinyin"
	"github.com/f3rmion/yuanfen/internal/reading"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/f3rmion/yuanfen/internal/zodiac"
	"github.com/goodsign/monday"
	"github.com/mattn/go-runewidth"
)

// Template names.
const (
	ChartTemplate   = "chart"
	MatchTemplate   = "match"
	InsightTemplate = "insight"
)

// Renderer turns results into text using named templates.
type Renderer struct {
	locale    monday.Locale
	parser    *pinyin.Parser
	templates map[string]*template.Template
}

// NewRenderer creates a renderer with the default templates. Dates are
// formatted for locale, e.g. "en_US" or "zh_CN".
func NewRenderer(locale string) *Renderer {
	r := &Renderer{
		locale:    resolveLocale(locale),
		parser:    pinyin.NewParser(),
		templates: make(map[string]*template.Template),
	}
	for name, text := range defaultTemplates {
		r.templates[name] = template.Must(template.New(name).Funcs(r.funcs()).Parse(text))
	}
	return r
}

// Locale returns the resolved date locale.
func (r *Renderer) Locale() string { return string(r.locale) }

// SetTemplate replaces one of the named templates.
func (r *Renderer) SetTemplate(name, text string) error {
	t, err := template.New(name).Funcs(r.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	r.templates[name] = t
	return nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"date":  func(t time.Time) string { return formatDate(t, r.locale) },
		"lower": strings.ToLower,
		"join":  strings.Join,
		"bar": func(v float64) string {
			return strings.Repeat("█", int(v)) + strings.Repeat("▌", int(v*2)%2)
		},
		"pinyin": r.parser.Phrase,
		"pad":    func(s string, w int) string { return runewidth.FillRight(s, w) },
	}
}

// PillarRow is one pillar prepared for display.
type PillarRow struct {
	Label  string
	Pillar bazi.Pillar
	Pinyin string
	Hidden string
}

// ChartData is the input of the chart template.
type ChartData struct {
	Name       string
	Chart      bazi.Chart
	BirthDate  time.Time
	Pillars    []PillarRow
	Balance    []BalanceRow
	Weak       []bazi.Element
	Strengthen *bazi.Element
	Attributes bazi.Attributes
	Zodiac     zodiac.Traits
	Partners   []bazi.Animal
}

// BalanceRow is one element's weight in a chart.
type BalanceRow struct {
	Element bazi.Element
	Weight  float64
	Primary int
}

// BuildChartData prepares a chart for the chart template.
func (r *Renderer) BuildChartData(name string, c bazi.Chart) ChartData {
	d := ChartData{
		Name:       name,
		Chart:      c,
		BirthDate:  c.Birth.Time(),
		Weak:       c.WeakElements(),
		Attributes: c.DayMaster.Attributes(),
		Zodiac:     zodiac.TraitsOf(c.Year.Animal),
		Partners:   zodiac.Compatible(c.Year.Animal),
	}

	labels := [4]string{"Year", "Month", "Day", "Hour"}
	for i, p := range c.Pillars() {
		hidden := make([]string, len(p.HiddenStems))
		for j, h := range p.HiddenStems {
			hidden[j] = h.Hanzi()
		}
		d.Pillars = append(d.Pillars, PillarRow{
			Label:  labels[i],
			Pillar: p,
			Pinyin: r.parser.Pillar(p),
			Hidden: strings.Join(hidden, " "),
		})
	}

	for _, e := range bazi.Elements {
		d.Balance = append(d.Balance, BalanceRow{Element: e, Weight: c.Balance[e], Primary: c.Counts[e]})
	}
	if e, ok := c.ElementToStrengthen(); ok {
		d.Strengthen = &e
	}
	return d
}

// MatchData is the input of the match template.
type MatchData struct {
	Name1, Name2 string
	Score        yuanfen.Score
	Reading      reading.Reading
	Age          string
}

// InsightData is the input of the insight template.
type InsightData struct {
	Name           string
	Insight        auspicious.Insight
	Recommendation string
}

// Chart renders a chart.
func (r *Renderer) Chart(name string, c bazi.Chart) (string, error) {
	return r.execute(ChartTemplate, r.BuildChartData(name, c))
}

// Match renders a Yuan Fen score with its reading.
func (r *Renderer) Match(d MatchData) (string, error) {
	return r.execute(MatchTemplate, d)
}

// Insight renders a daily insight.
func (r *Renderer) Insight(d InsightData) (string, error) {
	return r.execute(InsightTemplate, d)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return strings.TrimSpace(buf.String()) + "\n", nil
}
