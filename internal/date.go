package internal

import (
	"time"
)

// DateLayout is the wire representation of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day, it carries no time of day nor location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location, discarding the time of day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a yyyy-MM-dd literal.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, WrapErrorf(err, ErrorCodeInvalidArgument, "invalid date %q", s)
	}

	return DateOf(t), nil
}

// String returns the yyyy-MM-dd representation.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
