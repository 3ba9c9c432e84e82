package bazi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/f3rmion/yuanfen/internal/calendar"
)

// ErrInvalidHour is returned for an hour outside 0-23.
var ErrInvalidHour = errors.New("invalid hour")

// DefaultHour is used when a parsed birth time carries no clock time.
const DefaultHour = 12

// BirthData is a local civil birth date and hour. No timezone adjustment is
// applied.
type BirthData struct {
	Year  int `json:"year" yaml:"year" db:"year"`
	Month int `json:"month" yaml:"month" db:"month"`
	Day   int `json:"day" yaml:"day" db:"day"`
	Hour  int `json:"hour" yaml:"hour" db:"hour"`
}

// Date returns the calendar date part.
func (b BirthData) Date() calendar.Date {
	return calendar.Date{Year: b.Year, Month: b.Month, Day: b.Day}
}

// Validate checks the date and the hour.
func (b BirthData) Validate() error {
	if err := b.Date().Validate(); err != nil {
		return err
	}
	if b.Hour < 0 || b.Hour > 23 {
		return fmt.Errorf("%w: %d", ErrInvalidHour, b.Hour)
	}
	return nil
}

func (b BirthData) String() string {
	return fmt.Sprintf("%s %02d:00", b.Date(), b.Hour)
}

// Time returns the birth moment as a UTC time.Time. Years outside the range
// of time.Time are not representable.
func (b BirthData) Time() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, b.Hour, 0, 0, 0, time.UTC)
}

// ParseBirth parses a free-form birth date such as "1990-05-15 14:30" or
// "May 15, 1990 14:00". Without a clock time the hour is DefaultHour.
func ParseBirth(s string) (BirthData, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BirthData{}, fmt.Errorf("%w: empty birth date", calendar.ErrInvalidDate)
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return BirthData{}, fmt.Errorf("%w: parsing %q: %v", calendar.ErrInvalidDate, s, err)
	}

	hour := t.Hour()
	if !hasClock(s) {
		hour = DefaultHour
	}

	b := BirthData{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), Hour: hour}
	return b, b.Validate()
}

func hasClock(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(s, ":") || strings.HasSuffix(lower, "am") || strings.HasSuffix(lower, "pm")
}
