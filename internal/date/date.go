package date

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day component. The zero value is
// not a usable date; construct values through New, FromTime, Parse or Today.
type Date struct {
	t time.Time
}

// New builds a Date for the given year, month and day. Out-of-range values
// are normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the current calendar day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads an ISO-8601 calendar date (2006-01-02).
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// String renders the date as ISO-8601 (2006-01-02).
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// Time exposes the underlying midnight-UTC instant.
func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths returns the date n months later, clamping the day to the length
// of the target month (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return New(first.Year(), first.Month(), day)
}

// SubtractMonths returns the date n months earlier, with the same clamping
// as AddMonths.
func (d Date) SubtractMonths(n int) Date {
	return d.AddMonths(-n)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return New(d.Year(), d.Month(), 1)
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return New(d.Year(), d.Month(), daysIn(d.Year(), d.Month()))
}

// Compare orders two dates: -1 if d is earlier, 0 if the same day, 1 if later.
func (d Date) Compare(o Date) int {
	switch {
	case d.t.Before(o.t):
		return -1
	case d.t.After(o.t):
		return 1
	}
	return 0
}

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d falls strictly after o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// IsSameDay reports whether both values name the same calendar day.
func (d Date) IsSameDay(o Date) bool { return d.t.Equal(o.t) }

// IsSameMonth reports whether both values fall in the same month of the
// same year.
func (d Date) IsSameMonth(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month()
}

// DayOfWeek returns the weekday as 0..6 with 0 = Sunday.
func (d Date) DayOfWeek() int { return int(d.t.Weekday()) }

// DaysUntil counts the calendar days from d to o (negative when o is earlier).
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
