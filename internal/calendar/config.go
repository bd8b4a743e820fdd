// Package calendar computes the month grids and navigation state behind a
// calendar view: which dates tile each visible month (including the lead
// and trail days borrowed from neighboring months), how paging moves the
// window, and how individual dates classify against bounds, predicates and
// the current selection.
package calendar

import (
	"errors"

	"github.com/davren/calgrid/internal/date"
)

var (
	// ErrInvalidWeekStart indicates WeekStartsOn is outside 0..6.
	ErrInvalidWeekStart = errors.New("week start must be between 0 (Sunday) and 6 (Saturday)")
	// ErrInvalidMonthCount indicates NumberOfMonths is below 1.
	ErrInvalidMonthCount = errors.New("number of months must be at least 1")
)

// Matcher classifies a single date. Matchers are supplied by the caller;
// a nil matcher is treated as never matching.
type Matcher func(date.Date) bool

// Config carries the immutable settings of a Controller. Changing any of
// them requires constructing a new Controller.
type Config struct {
	// WeekStartsOn is the weekday each grid row begins on, 0 = Sunday.
	WeekStartsOn int
	// FixedWeeks pads every grid to six full weeks.
	FixedWeeks bool
	// NumberOfMonths is how many consecutive months are visible at once.
	NumberOfMonths int
	// PagedNavigation makes NextPage/PrevPage step by a full window of
	// months instead of a single month.
	PagedNavigation bool
	// MinValue and MaxValue bound navigation and disable out-of-range
	// dates. Nil means unbounded on that side.
	MinValue *date.Date
	MaxValue *date.Date
}

// Validate rejects caller bugs up front so grid building never has to.
func (c Config) Validate() error {
	if c.WeekStartsOn < 0 || c.WeekStartsOn > 6 {
		return ErrInvalidWeekStart
	}
	if c.NumberOfMonths < 1 {
		return ErrInvalidMonthCount
	}
	return nil
}
