// Package locale supplies month, year and weekday labels for the handful of
// languages the calendar ships with. Tags are resolved with the x/text
// matcher so region variants (en-GB, zh-CN, es-MX) pick up their base
// language, and anything unsupported falls back to English.
package locale

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/davren/calgrid/internal/date"
)

// WeekdayFormat selects the verbosity of weekday labels.
type WeekdayFormat int

const (
	WeekdayNarrow WeekdayFormat = iota
	WeekdayShort
	WeekdayLong
)

// Formatter renders locale-aware labels for calendar dates.
type Formatter interface {
	MonthName(d date.Date) string
	YearLabel(d date.Date) string
	WeekdayName(d date.Date, format WeekdayFormat) string
	Tag() language.Tag
}

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Chinese,
	language.French,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// New resolves tag against the supported set and returns a Formatter bound
// to the best match. Unparseable or unsupported tags resolve to English.
func New(tag string) Formatter {
	parsed, err := language.Parse(tag)
	if err != nil {
		parsed = language.English
	}
	_, idx, _ := matcher.Match(parsed)
	return &formatter{tag: supported[idx], names: tables[idx]}
}

type formatter struct {
	tag   language.Tag
	names nameTable
}

func (f *formatter) Tag() language.Tag { return f.tag }

func (f *formatter) MonthName(d date.Date) string {
	return f.names.months[int(d.Month())-1]
}

func (f *formatter) YearLabel(d date.Date) string {
	return strconv.Itoa(d.Year()) + f.names.yearSuffix
}

func (f *formatter) WeekdayName(d date.Date, format WeekdayFormat) string {
	idx := d.DayOfWeek()
	switch format {
	case WeekdayLong:
		return f.names.long[idx]
	case WeekdayShort:
		return f.names.short[idx]
	default:
		return f.names.narrow[idx]
	}
}
