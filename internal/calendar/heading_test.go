package calendar

import (
	"testing"
	"time"

	"github.com/davren/calgrid/internal/date"
	"github.com/davren/calgrid/internal/locale"
)

func TestHeadingLabelSingleMonth(t *testing.T) {
	c := mustController(t, date.New(2024, time.June, 1), Config{WeekStartsOn: 0, NumberOfMonths: 1})
	if got := c.HeadingLabel(locale.New("en")); got != "June 2024" {
		t.Fatalf("heading = %q, want \"June 2024\"", got)
	}
}

func TestHeadingLabelSameYearRange(t *testing.T) {
	c := mustController(t, date.New(2024, time.June, 1), Config{WeekStartsOn: 0, NumberOfMonths: 2})
	if got := c.HeadingLabel(locale.New("en")); got != "June - July 2024" {
		t.Fatalf("heading = %q, want \"June - July 2024\"", got)
	}
}

func TestHeadingLabelCrossYearRange(t *testing.T) {
	c := mustController(t, date.New(2024, time.December, 1), Config{WeekStartsOn: 0, NumberOfMonths: 2})
	if got := c.HeadingLabel(locale.New("en")); got != "December 2024 - January 2025" {
		t.Fatalf("heading = %q, want \"December 2024 - January 2025\"", got)
	}
}

func TestHeadingLabelEmptyWindow(t *testing.T) {
	if got := HeadingLabel(nil, locale.New("en")); got != "" {
		t.Fatalf("heading for empty window = %q, want empty", got)
	}
}

func TestHeadingLabelFollowsLocale(t *testing.T) {
	c := mustController(t, date.New(2024, time.June, 1), Config{WeekStartsOn: 0, NumberOfMonths: 1})
	if got := c.HeadingLabel(locale.New("zh-CN")); got != "六月 2024年" {
		t.Fatalf("zh heading = %q, want \"六月 2024年\"", got)
	}
	// A locale switch is a plain recomputation, nothing is cached.
	if got := c.HeadingLabel(locale.New("fr")); got != "juin 2024" {
		t.Fatalf("fr heading = %q, want \"juin 2024\"", got)
	}
}
