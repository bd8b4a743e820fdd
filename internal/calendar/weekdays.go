package calendar

import "github.com/davren/calgrid/internal/locale"

// WeekdayLabels formats the seven column headers from the first week of the
// first visible grid, which by construction starts on WeekStartsOn. An
// empty window yields nil.
func WeekdayLabels(window []MonthGrid, f locale.Formatter, format locale.WeekdayFormat) []string {
	if len(window) == 0 || len(window[0].Dates) < 7 {
		return nil
	}
	labels := make([]string, 7)
	for i, d := range window[0].Dates[:7] {
		labels[i] = f.WeekdayName(d, format)
	}
	return labels
}

// WeekdayLabels formats the column headers for the controller's window.
func (c *Controller) WeekdayLabels(f locale.Formatter, format locale.WeekdayFormat) []string {
	return WeekdayLabels(c.window, f, format)
}
