package calendar

import (
	"testing"
	"time"

	"github.com/davren/calgrid/internal/date"
)

func TestIsDateDisabledByBoundsAndMatcher(t *testing.T) {
	min := date.New(2024, time.June, 10)
	max := date.New(2024, time.June, 20)
	weekends := func(d date.Date) bool {
		dow := d.DayOfWeek()
		return dow == 0 || dow == 6
	}
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1, MinValue: &min, MaxValue: &max}
	c := mustController(t, date.New(2024, time.June, 1), cfg, WithDisabledMatcher(weekends))

	tests := []struct {
		d    date.Date
		want bool
	}{
		{date.New(2024, time.June, 9), true},   // before min (and a Sunday)
		{date.New(2024, time.June, 10), false}, // min itself, a Monday
		{date.New(2024, time.June, 15), true},  // in range but Saturday
		{date.New(2024, time.June, 18), false}, // in range, Tuesday
		{date.New(2024, time.June, 20), false}, // max itself, Thursday
		{date.New(2024, time.June, 21), true},  // after max
	}
	for _, tt := range tests {
		if got := c.IsDateDisabled(tt.d); got != tt.want {
			t.Errorf("IsDateDisabled(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestGloballyDisabledCalendarDisablesEveryDate(t *testing.T) {
	c := mustController(t, date.New(2024, time.June, 1),
		Config{WeekStartsOn: 0, NumberOfMonths: 1}, WithDisabled(true))
	if !c.IsDateDisabled(date.New(2024, time.June, 12)) {
		t.Fatalf("expected every date disabled on a disabled calendar")
	}
}

func TestIsDateUnavailableIgnoresBounds(t *testing.T) {
	max := date.New(2024, time.June, 20)
	thirteenth := func(d date.Date) bool { return d.Day() == 13 }
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1, MaxValue: &max}
	c := mustController(t, date.New(2024, time.June, 1), cfg, WithUnavailableMatcher(thirteenth))

	if !c.IsDateUnavailable(date.New(2024, time.June, 13)) {
		t.Fatalf("expected the matcher to mark June 13 unavailable")
	}
	// Past max: disabled, but not unavailable.
	if c.IsDateUnavailable(date.New(2024, time.June, 25)) {
		t.Fatalf("bounds must not leak into unavailability")
	}
}

func TestIsDateSelected(t *testing.T) {
	single := date.New(2024, time.June, 12)
	c := mustController(t, date.New(2024, time.June, 1),
		Config{WeekStartsOn: 0, NumberOfMonths: 1}, WithSelectedDate(single))

	if !c.IsDateSelected(date.New(2024, time.June, 12)) {
		t.Fatalf("expected same-day match for the single selection")
	}
	if c.IsDateSelected(date.New(2024, time.June, 13)) {
		t.Fatalf("unexpected selection match")
	}

	c.SetSelectedDate(nil)
	c.SetSelectedDates([]date.Date{
		date.New(2024, time.June, 1),
		date.New(2024, time.June, 2),
	})
	if !c.IsDateSelected(date.New(2024, time.June, 2)) {
		t.Fatalf("expected set member to be selected")
	}
	if c.IsDateSelected(single) {
		t.Fatalf("cleared single selection still matches")
	}
}

func TestIsInvalidSelection(t *testing.T) {
	min := date.New(2024, time.June, 10)
	cfg := Config{WeekStartsOn: 0, NumberOfMonths: 1, MinValue: &min}

	c := mustController(t, date.New(2024, time.June, 1), cfg)
	if c.IsInvalidSelection() {
		t.Fatalf("empty selection must be valid")
	}

	c.SetSelectedDates([]date.Date{
		date.New(2024, time.June, 15),
		date.New(2024, time.June, 5), // before min
	})
	if !c.IsInvalidSelection() {
		t.Fatalf("expected invalid selection when a member is out of range")
	}

	c.SetSelectedDates([]date.Date{date.New(2024, time.June, 15)})
	if c.IsInvalidSelection() {
		t.Fatalf("in-range selection flagged invalid")
	}

	bad := date.New(2024, time.June, 3)
	c.SetSelectedDates(nil)
	c.SetSelectedDate(&bad)
	if !c.IsInvalidSelection() {
		t.Fatalf("expected invalid selection for a single out-of-range date")
	}
}

func TestPredicatePanicsPropagate(t *testing.T) {
	boom := func(date.Date) bool { panic("matcher exploded") }
	c := mustController(t, date.New(2024, time.June, 1),
		Config{WeekStartsOn: 0, NumberOfMonths: 1}, WithDisabledMatcher(boom))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected the matcher failure to propagate")
		}
	}()
	c.IsDateDisabled(date.New(2024, time.June, 1))
}
