package calendar

import (
	"testing"
	"time"

	"github.com/davren/calgrid/internal/date"
)

func mustController(t *testing.T, ref date.Date, cfg Config, opts ...Option) *Controller {
	t.Helper()
	c, err := New(ref, cfg, opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func checkContiguous(t *testing.T, g MonthGrid) {
	t.Helper()
	if len(g.Dates)%7 != 0 {
		t.Fatalf("grid for %v has %d dates, not a multiple of 7", g.Month, len(g.Dates))
	}
	for i := 1; i < len(g.Dates); i++ {
		if !g.Dates[i].IsSameDay(g.Dates[i-1].AddDays(1)) {
			t.Fatalf("grid for %v is not contiguous at index %d: %v -> %v",
				g.Month, i, g.Dates[i-1], g.Dates[i])
		}
	}
}

func TestBuildMonthExactlyFourWeeks(t *testing.T) {
	// February 2015 starts on a Sunday and has 28 days, so a Sunday-start
	// grid needs no lead or trail days at all.
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1}
	grids := BuildMonths(date.New(2015, time.February, 10), cfg)
	if len(grids) != 1 {
		t.Fatalf("expected 1 grid, got %d", len(grids))
	}
	g := grids[0]
	checkContiguous(t, g)
	if len(g.Dates) != 28 {
		t.Fatalf("expected 28 dates, got %d", len(g.Dates))
	}
	if !g.Dates[0].IsSameDay(date.New(2015, time.February, 1)) {
		t.Fatalf("first visible date = %v, want 2015-02-01", g.Dates[0])
	}
	if !g.Dates[27].IsSameDay(date.New(2015, time.February, 28)) {
		t.Fatalf("last visible date = %v, want 2015-02-28", g.Dates[27])
	}
}

func TestBuildMonthLeadAndTrailDays(t *testing.T) {
	// February 2023 starts on a Wednesday: the grid borrows the end of
	// January and the start of March to complete its weeks.
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1}
	g := BuildMonths(date.New(2023, time.February, 1), cfg)[0]
	checkContiguous(t, g)
	if len(g.Dates) != 35 {
		t.Fatalf("expected 35 dates, got %d", len(g.Dates))
	}
	if !g.Dates[0].IsSameDay(date.New(2023, time.January, 29)) {
		t.Fatalf("first visible date = %v, want 2023-01-29", g.Dates[0])
	}
	if !g.Dates[34].IsSameDay(date.New(2023, time.March, 4)) {
		t.Fatalf("last visible date = %v, want 2023-03-04", g.Dates[34])
	}
}

func TestBuildMonthRespectsWeekStart(t *testing.T) {
	cfg := Config{WeekStartsOn: 1, NumberOfMonths: 1} // Monday
	g := BuildMonths(date.New(2024, time.June, 15), cfg)[0]
	checkContiguous(t, g)
	if g.Dates[0].DayOfWeek() != 1 {
		t.Fatalf("grid starts on weekday %d, want Monday", g.Dates[0].DayOfWeek())
	}
	if last := g.Dates[len(g.Dates)-1]; last.DayOfWeek() != 0 {
		t.Fatalf("grid ends on weekday %d, want Sunday", last.DayOfWeek())
	}
	if len(g.Dates) != 35 {
		t.Fatalf("expected 35 dates, got %d", len(g.Dates))
	}
}

func TestFixedWeeksPadsToSixWeeks(t *testing.T) {
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1, FixedWeeks: true}
	g := BuildMonths(date.New(2015, time.February, 1), cfg)[0]
	checkContiguous(t, g)
	if len(g.Dates) != 42 {
		t.Fatalf("fixed weeks grid has %d dates, want 42", len(g.Dates))
	}
	// Padding extends the trailing edge only.
	if !g.Dates[0].IsSameDay(date.New(2015, time.February, 1)) {
		t.Fatalf("fixed weeks moved the leading edge to %v", g.Dates[0])
	}
	if !g.Dates[41].IsSameDay(date.New(2015, time.March, 14)) {
		t.Fatalf("last padded date = %v, want 2015-03-14", g.Dates[41])
	}
}

func TestFixedWeeksLeavesSixWeekMonthAlone(t *testing.T) {
	// June 2024 naturally spans six Sunday-start weeks.
	base := Config{WeekStartsOn: 0, NumberOfMonths: 1}
	natural := BuildMonths(date.New(2024, time.June, 1), base)[0]
	if len(natural.Dates) != 42 {
		t.Fatalf("natural June 2024 grid has %d dates, want 42", len(natural.Dates))
	}

	fixed := base
	fixed.FixedWeeks = true
	padded := BuildMonths(date.New(2024, time.June, 1), fixed)[0]
	if len(padded.Dates) != 42 {
		t.Fatalf("fixed weeks changed a six-week month to %d dates", len(padded.Dates))
	}
	if !padded.Dates[41].IsSameDay(natural.Dates[41]) {
		t.Fatalf("fixed weeks moved the trailing edge of a six-week month")
	}
}

func TestBuildMonthsWindowIsContiguousByMonth(t *testing.T) {
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 3}
	grids := BuildMonths(date.New(2024, time.November, 20), cfg)
	if len(grids) != 3 {
		t.Fatalf("expected 3 grids, got %d", len(grids))
	}
	for i, g := range grids {
		checkContiguous(t, g)
		if g.Month.Day() != 1 {
			t.Fatalf("grid %d month anchor is not first-of-month: %v", i, g.Month)
		}
		if i > 0 && !g.Month.IsSameDay(grids[i-1].Month.AddMonths(1)) {
			t.Fatalf("grid %d month %v does not follow %v", i, g.Month, grids[i-1].Month)
		}
	}
	if !grids[2].Month.IsSameDay(date.New(2025, time.January, 1)) {
		t.Fatalf("third month = %v, want 2025-01-01", grids[2].Month)
	}
}

func TestBuilderIgnoresBounds(t *testing.T) {
	min := date.New(2024, time.June, 10)
	max := date.New(2024, time.June, 20)
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1, MinValue: &min, MaxValue: &max}
	g := BuildMonths(date.New(2024, time.June, 15), cfg)[0]
	if !g.Dates[0].Before(min) {
		t.Fatalf("expected out-of-range lead days to remain in the grid")
	}
	if !g.Dates[len(g.Dates)-1].After(max) {
		t.Fatalf("expected out-of-range trail days to remain in the grid")
	}
}

func TestWeeksSplitsIntoRowsOfSeven(t *testing.T) {
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1}
	g := BuildMonths(date.New(2023, time.February, 1), cfg)[0]
	weeks := g.Weeks()
	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}
	for i, week := range weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has %d days", i, len(week))
		}
	}
}

func TestConfigValidation(t *testing.T) {
	if err := (Config{WeekStartsOn: 7, NumberOfMonths: 1}).Validate(); err != ErrInvalidWeekStart {
		t.Fatalf("expected ErrInvalidWeekStart, got %v", err)
	}
	if err := (Config{WeekStartsOn: 0, NumberOfMonths: 0}).Validate(); err != ErrInvalidMonthCount {
		t.Fatalf("expected ErrInvalidMonthCount, got %v", err)
	}
	if _, err := New(date.New(2024, time.June, 1), Config{WeekStartsOn: -1, NumberOfMonths: 1}); err == nil {
		t.Fatalf("New accepted an invalid config")
	}
}
