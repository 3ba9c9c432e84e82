// Package calendar converts proleptic Gregorian dates to and from Julian Day Numbers.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned for a month outside 1-12 or a day that does not
// exist in the given month.
var ErrInvalidDate = errors.New("invalid date")

// J2000 is the Julian Day Number of 2000-01-01.
const J2000 = 2451545

// Date is a proleptic Gregorian calendar date. Year may be zero or negative.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate reports ErrInvalidDate when the date does not exist.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: %s has no day %d", ErrInvalidDate, time.Month(d.Month), d.Day)
	}
	return nil
}

// IsLeapYear applies the Gregorian leap rule to any year.
func IsLeapYear(year int) bool {
	return floorMod(year, 4) == 0 && (floorMod(year, 100) != 0 || floorMod(year, 400) == 0)
}

// DaysInMonth returns the length of month in year. Month must be 1-12.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// ToJDN validates the date and returns its Julian Day Number.
func ToJDN(year, month, day int) (int, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d.JDN(), nil
}

// JDN returns the Julian Day Number of d. January and February count as
// months 13 and 14 of the previous year. The date is assumed valid.
func (d Date) JDN() int {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3

	return d.Day + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// FromJDN is the inverse of Date.JDN.
func FromJDN(jdn int) Date {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	return Date{
		Day:   e - floorDiv(153*m+2, 5) + 1,
		Month: m + 3 - 12*floorDiv(m, 10),
		Year:  100*b + d - 4800 + floorDiv(m, 10),
	}
}

// DayOfWeek returns JDN mod 7, where 0 is Monday and 6 is Sunday.
func DayOfWeek(jdn int) int {
	return floorMod(jdn, 7)
}

// Weekday converts a JDN to a time.Weekday (Sunday = 0).
func Weekday(jdn int) time.Weekday {
	return time.Weekday((DayOfWeek(jdn) + 1) % 7)
}

// FloorMod returns a mod n in [0, n) for positive n.
func FloorMod(a, n int) int {
	return floorMod(a, n)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
