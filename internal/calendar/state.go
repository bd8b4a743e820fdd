package calendar

import "github.com/davren/calgrid/internal/date"

// IsDateDisabled reports whether d cannot be selected: the caller's
// disabled predicate matched, the whole calendar is disabled, or d lies
// outside the configured bounds.
func (c *Controller) IsDateDisabled(d date.Date) bool {
	if c.disabledFn(d) || c.disabled {
		return true
	}
	if c.cfg.MaxValue != nil && d.After(*c.cfg.MaxValue) {
		return true
	}
	if c.cfg.MinValue != nil && d.Before(*c.cfg.MinValue) {
		return true
	}
	return false
}

// IsDateUnavailable reports whether the caller's unavailable predicate
// matches d. Bounds play no part here.
func (c *Controller) IsDateUnavailable(d date.Date) bool {
	return c.unavailable(d)
}

// IsDateSelected reports whether d matches the single selection or any
// member of the selection set, compared by calendar day.
func (c *Controller) IsDateSelected(d date.Date) bool {
	if c.selected != nil && c.selected.IsSameDay(d) {
		return true
	}
	for _, s := range c.selectedSet {
		if s.IsSameDay(d) {
			return true
		}
	}
	return false
}

// IsInvalidSelection reports whether any selected date is disabled or
// unavailable. An empty selection is valid by definition.
func (c *Controller) IsInvalidSelection() bool {
	if c.selected != nil && c.dateInvalid(*c.selected) {
		return true
	}
	for _, s := range c.selectedSet {
		if c.dateInvalid(s) {
			return true
		}
	}
	return false
}

func (c *Controller) dateInvalid(d date.Date) bool {
	return c.IsDateDisabled(d) || c.IsDateUnavailable(d)
}
