package bazi

import (
	"fmt"

	"github.com/f3rmion/yuanfen/internal/calendar"
)

// Solar-term approximations. The year turns on February 4 and each solar
// month on the 6th of its Gregorian month. True solar terms drift by a day
// or two between years; these cutoffs are fixed on purpose.
const (
	YearBoundaryMonth = 2
	YearBoundaryDay   = 4
	MonthBoundaryDay  = 6
)

// Pillar is one stem/branch pair with its derived attributes.
type Pillar struct {
	Stem          Stem     `json:"stem" yaml:"stem"`
	Branch        Branch   `json:"branch" yaml:"branch"`
	StemElement   Element  `json:"stem_element" yaml:"stem_element"`
	BranchElement Element  `json:"branch_element" yaml:"branch_element"`
	Polarity      Polarity `json:"polarity" yaml:"polarity"`
	Animal        Animal   `json:"animal" yaml:"animal"`
	HiddenStems   []Stem   `json:"hidden_stems" yaml:"hidden_stems"`
}

// NewPillar builds the pillar for a stem and branch.
func NewPillar(s Stem, b Branch) Pillar {
	hidden := make([]Stem, len(b.HiddenStems()))
	copy(hidden, b.HiddenStems())

	return Pillar{
		Stem:          s,
		Branch:        b,
		StemElement:   s.Element(),
		BranchElement: b.Element(),
		Polarity:      s.Polarity(),
		Animal:        b.Animal(),
		HiddenStems:   hidden,
	}
}

// Hanzi returns the two-character name of the pillar, e.g. 庚午.
func (p Pillar) Hanzi() string {
	return p.Stem.Hanzi() + p.Branch.Hanzi()
}

func (p Pillar) String() string {
	return fmt.Sprintf("%s %s", p.Stem, p.Branch)
}

// YearPillar returns the year pillar for a date. Dates before February 4
// belong to the previous year.
func YearPillar(year, month, day int) (Pillar, error) {
	if _, err := calendar.ToJDN(year, month, day); err != nil {
		return Pillar{}, err
	}
	return yearPillar(year, month, day), nil
}

// MonthPillar returns the month pillar for a date.
func MonthPillar(year, month, day int) (Pillar, error) {
	if _, err := calendar.ToJDN(year, month, day); err != nil {
		return Pillar{}, err
	}
	return monthPillar(yearPillar(year, month, day).Stem, month, day), nil
}

// DayPillar returns the day pillar for a date.
func DayPillar(year, month, day int) (Pillar, error) {
	jdn, err := calendar.ToJDN(year, month, day)
	if err != nil {
		return Pillar{}, err
	}
	return dayPillar(jdn), nil
}

// HourPillar returns the hour pillar for an hour on a day with the given
// day stem. Hour 23 opens the Zi hour of the same day.
func HourPillar(dayStem Stem, hour int) (Pillar, error) {
	if hour < 0 || hour > 23 {
		return Pillar{}, fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	return hourPillar(dayStem, hour), nil
}

// ChineseYear returns the year whose pillar applies to the date.
func ChineseYear(year, month, day int) int {
	if month < YearBoundaryMonth || (month == YearBoundaryMonth && day < YearBoundaryDay) {
		return year - 1
	}
	return year
}

func yearPillar(year, month, day int) Pillar {
	y := ChineseYear(year, month, day)
	s := Stem(calendar.FloorMod(y-ReferenceYear, NumStems))
	b := Branch(calendar.FloorMod(y-ReferenceYear, NumBranches))
	return NewPillar(s, b)
}

// MonthBranch returns the branch of the solar month containing the date.
// Every month shifts at MonthBoundaryDay, January included, so January 1-5
// are the tail of the Zi month (December 6 to January 5) rather than Chou.
func MonthBranch(month, day int) Branch {
	idx := month - 1
	if day < MonthBoundaryDay {
		idx = calendar.FloorMod(idx-1, 12)
	}
	return monthBranches[idx]
}

func monthPillar(yearStem Stem, month, day int) Pillar {
	b := MonthBranch(month, day)
	offset := calendar.FloorMod(int(b)-int(BranchYin), NumBranches)
	s := Stem((int(tigerMonthStems[yearStem]) + offset) % NumStems)
	return NewPillar(s, b)
}

func dayPillar(jdn int) Pillar {
	return NewPillar(StemBranch(CycleDay(jdn)))
}

// HourBranch returns the branch of the double-hour containing hour.
func HourBranch(hour int) Branch {
	if hour == 23 {
		return BranchZi
	}
	return Branch((hour + 1) / 2)
}

func hourPillar(dayStem Stem, hour int) Pillar {
	b := HourBranch(hour)
	s := Stem((int(ratHourStems[dayStem]) + int(b)) % NumStems)
	return NewPillar(s, b)
}
