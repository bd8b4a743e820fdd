// Package lunar derives the secondary label shown beneath a Gregorian day:
// the solar term when one falls on that day, the lunar month name on the
// first lunar day, and the lunar day name otherwise.
package lunar

import (
	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"

	"github.com/davren/calgrid/internal/date"
)

// Gregorian year range the upstream library supports.
const (
	MinSupportedYear = 1900
	MaxSupportedYear = 3000
)

// Supported reports whether a lunar label can be computed for d.
func Supported(d date.Date) bool {
	return d.Year() >= MinSupportedYear && d.Year() <= MaxSupportedYear
}

// Label returns the secondary label for d, or "" outside the supported
// range.
func Label(d date.Date) string {
	if !Supported(d) {
		return ""
	}
	cal := calendarlib.BySolar(
		int64(d.Year()),
		int64(d.Month()),
		int64(d.Day()),
		12, 0, 0,
	)
	if st := cal.Solar.CurrentSolarterm; st != nil {
		day := d.Time()
		if st.IsInDay(&day) {
			return st.Alias()
		}
	}
	if cal.Lunar.DayAlias() == "初一" {
		return cal.Lunar.MonthAlias()
	}
	return cal.Lunar.DayAlias()
}
