package calendar

import (
	"fmt"

	"github.com/davren/calgrid/internal/locale"
)

// HeadingLabel renders the label for the visible month range: "June 2024"
// for a single month, "June - July 2024" within one year, and
// "December 2024 - January 2025" across a year boundary.
func HeadingLabel(window []MonthGrid, f locale.Formatter) string {
	if len(window) == 0 {
		return ""
	}
	first := window[0].Month
	if len(window) == 1 {
		return fmt.Sprintf("%s %s", f.MonthName(first), f.YearLabel(first))
	}
	last := window[len(window)-1].Month
	if first.Year() == last.Year() {
		return fmt.Sprintf("%s - %s %s", f.MonthName(first), f.MonthName(last), f.YearLabel(first))
	}
	return fmt.Sprintf("%s %s - %s %s",
		f.MonthName(first), f.YearLabel(first),
		f.MonthName(last), f.YearLabel(last))
}

// HeadingLabel renders the label for the controller's current window.
func (c *Controller) HeadingLabel(f locale.Formatter) string {
	return HeadingLabel(c.window, f)
}
