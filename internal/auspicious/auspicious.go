// Package auspicious finds favourable hours and daily element strength for a
// day master element.
package auspicious

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/f3rmion/yuanfen/internal/bazi"
)

// Hour is one of the twelve two-hour periods of the Chinese day.
type Hour struct {
	Branch bazi.Branch `json:"branch" yaml:"branch"`
	Start  int         `json:"start" yaml:"start"`
	End    int         `json:"end" yaml:"end"`
}

// Hours lists the double-hours starting with Zi, which spans midnight.
var Hours = func() [bazi.NumBranches]Hour {
	var hs [bazi.NumBranches]Hour
	for i := range hs {
		start := (23 + 2*i) % 24
		hs[i] = Hour{Branch: bazi.Branch(i), Start: start, End: (start + 2) % 24}
	}
	return hs
}()

// Name is the pinyin name of the hour, e.g. "Zi".
func (h Hour) Name() string { return h.Branch.String() }

// Hanzi is the Chinese name of the hour, e.g. 子时.
func (h Hour) Hanzi() string { return h.Branch.Hanzi() + "时" }

// Element is the element of the hour's branch.
func (h Hour) Element() bazi.Element { return h.Branch.Element() }

// Contains reports whether a clock hour (0-23) falls in h.
func (h Hour) Contains(hour int) bool {
	if h.Start > h.End {
		return hour >= h.Start || hour < h.End
	}
	return hour >= h.Start && hour < h.End
}

// Range formats the hour span, e.g. "11 PM - 1 AM".
func (h Hour) Range() string { return FormatRange(h.Start, h.End) }

// HourAt returns the double-hour containing a clock hour (0-23).
func HourAt(hour int) Hour {
	return Hours[bazi.HourBranch(hour)]
}

// Strength grades how well an hour suits an element.
type Strength int

const (
	Moderate Strength = iota
	Good
	Excellent
)

var strengthNames = [...]string{Moderate: "Moderate", Good: "Good", Excellent: "Excellent"}

func (s Strength) String() string { return strengthNames[s] }

// MarshalText encodes the strength by name.
func (s Strength) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Verdict is how an hour's element treats the user's element.
type Verdict struct {
	Auspicious bool
	Strength   Strength
	Reason     string
}

// Assess rates an hour element for a user element. Sharing the element or
// being generated by the hour is excellent, generating the hour is good.
func Assess(user, hour bazi.Element) Verdict {
	switch {
	case user == hour:
		return Verdict{true, Excellent, "Your element is strong during this hour"}
	case hour.Generates() == user:
		return Verdict{true, Excellent, "You receive natural support and energy"}
	case user.Generates() == hour:
		return Verdict{true, Good, "Your energy flows naturally and productively"}
	default:
		return Verdict{false, Moderate, "Neutral energy"}
	}
}

// Period is a time of day, as used to pick an activity.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
	Night
	numPeriods
)

var periodNames = [...]string{Morning: "Morning", Afternoon: "Afternoon", Evening: "Evening", Night: "Night"}

func (p Period) String() string { return periodNames[p] }

// PeriodOf returns the period of a clock hour.
func PeriodOf(hour int) Period {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// Time is an auspicious double-hour with what to do in it.
type Time struct {
	Hour     `yaml:",inline"`
	Element  bazi.Element `json:"element" yaml:"element"`
	Strength Strength     `json:"strength" yaml:"strength"`
	Activity string       `json:"activity" yaml:"activity"`
	Reason   string       `json:"reason" yaml:"reason"`
}

// MaxTimes is how many auspicious times Times returns at most.
const MaxTimes = 3

// wakingHour reports whether an hour starts between 6 AM and midnight.
func wakingHour(h Hour) bool { return h.Start >= 6 || h.Start == 23 }

// Times returns the best waking double-hours for a user element, excellent
// hours first. Within a strength the day order, starting at Zi, is kept.
func Times(user bazi.Element) []Time {
	var times []Time
	for _, h := range Hours {
		if !wakingHour(h) {
			continue
		}
		v := Assess(user, h.Element())
		if !v.Auspicious {
			continue
		}
		times = append(times, Time{
			Hour:     h,
			Element:  h.Element(),
			Strength: v.Strength,
			Activity: activityTemplates[user][PeriodOf(h.Start)],
			Reason:   v.Reason,
		})
	}
	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Strength > times[j].Strength
	})
	if len(times) > MaxTimes {
		times = times[:MaxTimes]
	}
	return times
}

// Current returns the auspicious time containing a clock hour, if any.
func Current(user bazi.Element, hour int) (Time, bool) {
	for _, t := range Times(user) {
		if t.Contains(hour) {
			return t, true
		}
	}
	return Time{}, false
}

// Next returns the first auspicious time, in Times order, that starts after
// a clock hour. When none is left today the first one is returned.
func Next(user bazi.Element, hour int) (Time, bool) {
	times := Times(user)
	for _, t := range times {
		if t.Start > hour {
			return t, true
		}
	}
	if len(times) > 0 {
		return times[0], true
	}
	return Time{}, false
}

// Recommendation is a one-line suggestion for a clock hour.
func Recommendation(user bazi.Element, hour int) string {
	if t, ok := Current(user, hour); ok {
		return fmt.Sprintf("Right now is %s for: %s", strings.ToLower(t.Strength.String()), t.Activity)
	}
	if t, ok := Next(user, hour); ok {
		return "Next favorable period: " + t.Range()
	}
	return "Stay open to possibilities throughout the day"
}

// FormatRange formats a span of clock hours, e.g. "9 AM - 11 AM".
func FormatRange(start, end int) string {
	if start == 23 && end == 1 {
		return "11 PM - 1 AM"
	}
	return formatHour(start) + " - " + formatHour(end)
}

func formatHour(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// Phase is the approximate lunar phase, taken from the day of the month.
type Phase int

const (
	NewMoon Phase = iota
	Waxing
	FullMoon
	Waning
	numPhases
)

var phaseNames = [...]string{NewMoon: "New Moon", Waxing: "Waxing", FullMoon: "Full Moon", Waning: "Waning"}

func (p Phase) String() string { return phaseNames[p] }

// PhaseOf maps a day of the month to a phase in weekly steps.
func PhaseOf(day int) Phase {
	switch {
	case day >= 1 && day <= 7:
		return NewMoon
	case day >= 8 && day <= 14:
		return Waxing
	case day >= 15 && day <= 21:
		return FullMoon
	default:
		return Waning
	}
}

var phaseBoost = [numPhases]float64{NewMoon: 10, Waxing: 15, FullMoon: 20, Waning: 12}

// ElementStrength rates a user element on a date, 0-100. The base of 50 is
// raised by the lunar phase, scaled by the element's phase modifier and then
// by a weekday factor between 0.9 and 1.1.
func ElementStrength(user bazi.Element, date time.Time) int {
	phase := PhaseOf(date.Day())
	strength := (50 + phaseBoost[phase]) * phaseModifiers[phase][user]
	strength *= 0.9 + float64(int(date.Weekday())%5)*0.05
	return int(math.Max(0, math.Min(100, math.Round(strength))))
}

// ActivitiesFor returns the social activities suited to an element.
func ActivitiesFor(e bazi.Element) Activities { return elementActivities[e] }

// Insights returns the daily insight texts of an element.
func Insights(e bazi.Element) []string { return dailyInsights[e] }

// Insight is the daily outlook for a chart.
type Insight struct {
	Date          time.Time    `json:"date" yaml:"date"`
	Element       bazi.Element `json:"element" yaml:"element"`
	Strength      int          `json:"strength" yaml:"strength"`
	Text          string       `json:"text" yaml:"text"`
	Favorable     []string     `json:"favorable" yaml:"favorable"`
	Communication string       `json:"communication" yaml:"communication"`
	Energy        string       `json:"energy" yaml:"energy"`
	Times         []Time       `json:"times" yaml:"times"`
}

// DayRand returns a generator seeded by the calendar date, so a daily
// insight drawn with it stays the same all day.
func DayRand(date time.Time) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(date.Year()), uint64(date.YearDay())))
}

// Daily returns the insight for a chart's day master on a date. The text is
// drawn with rng; a nil rng takes the first one.
func Daily(chart bazi.Chart, date time.Time, rng *rand.Rand) Insight {
	e := chart.DayMaster
	texts := dailyInsights[e]
	text := texts[0]
	if rng != nil {
		text = texts[rng.IntN(len(texts))]
	}
	acts := elementActivities[e]
	return Insight{
		Date:          date,
		Element:       e,
		Strength:      ElementStrength(e, date),
		Text:          text,
		Favorable:     acts.Favorable,
		Communication: acts.Communication,
		Energy:        acts.Energy,
		Times:         Times(e),
	}
}
