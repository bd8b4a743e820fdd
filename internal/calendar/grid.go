package calendar

import "github.com/davren/calgrid/internal/date"

// fixedWeekDays is the grid length under FixedWeeks: six full weeks.
const fixedWeekDays = 6 * 7

// MonthGrid is one visible month flattened into whole weeks. Month is the
// canonical first-of-month value; Dates runs from the first day of the week
// containing the 1st through the last day of the week containing the month
// end, one entry per calendar day.
type MonthGrid struct {
	Month date.Date
	Dates []date.Date
}

// Weeks splits the flat date list into rows of seven.
func (g MonthGrid) Weeks() [][]date.Date {
	weeks := make([][]date.Date, 0, len(g.Dates)/7)
	for i := 0; i+7 <= len(g.Dates); i += 7 {
		weeks = append(weeks, g.Dates[i:i+7])
	}
	return weeks
}

// BuildMonths produces the grids for cfg.NumberOfMonths consecutive months
// starting at reference's month. Bounds (MinValue/MaxValue) never influence
// grid shape; out-of-range dates are still present and are only flagged by
// the date-state queries.
func BuildMonths(reference date.Date, cfg Config) []MonthGrid {
	grids := make([]MonthGrid, 0, cfg.NumberOfMonths)
	first := reference.StartOfMonth()
	for i := 0; i < cfg.NumberOfMonths; i++ {
		grids = append(grids, buildMonth(first.AddMonths(i), cfg))
	}
	return grids
}

func buildMonth(month date.Date, cfg Config) MonthGrid {
	first := month
	for first.DayOfWeek() != cfg.WeekStartsOn {
		first = first.AddDays(-1)
	}

	weekEnd := (cfg.WeekStartsOn + 6) % 7
	last := month.EndOfMonth()
	for last.DayOfWeek() != weekEnd {
		last = last.AddDays(1)
	}

	total := first.DaysUntil(last) + 1
	dates := make([]date.Date, 0, max(total, fixedWeekDays))
	for d := first; !d.After(last); d = d.AddDays(1) {
		dates = append(dates, d)
	}

	// Fixed weeks only ever extend the trailing edge; a month that already
	// spans six weeks is left alone.
	if cfg.FixedWeeks {
		for len(dates) < fixedWeekDays {
			dates = append(dates, dates[len(dates)-1].AddDays(1))
		}
	}

	return MonthGrid{Month: month, Dates: dates}
}
