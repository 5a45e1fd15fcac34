package schema

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by the statistics feed
const DateLayout = "2006-01-02"

// Date - a calendar date in YYYY-MM-DD form. The zero value means unset.
type Date string

// ParseDate validates s and returns it as a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t.Format(DateLayout)), nil
}

// DateOf truncates t to its calendar date in UTC
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d == ""
}

// Time returns midnight UTC of the date, or the zero time for an unset or malformed date
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays moves the date by n calendar days
func (d Date) AddDays(n int) Date {
	if d.IsZero() {
		return d
	}
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is chronologically before o
func (d Date) Before(o Date) bool {
	return d < o
}

func (d Date) String() string {
	return string(d)
}
