package calendar

import "github.com/davren/calgrid/internal/date"

// Controller owns the visible window and the reference cursor, and exposes
// the queries and commands a calendar view needs. It is not safe for
// concurrent mutation; single-writer access is the expected discipline.
//
// Every rebuild replaces the window wholesale, so the grid invariants hold
// at every point an observer can look.
type Controller struct {
	cfg    Config
	window []MonthGrid
	cursor date.Date

	disabled    bool
	selected    *date.Date
	selectedSet []date.Date
	disabledFn  Matcher
	unavailable Matcher
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithDisabled disables the whole calendar: every date reports disabled and
// both navigation directions report disabled.
func WithDisabled(disabled bool) Option {
	return func(c *Controller) { c.disabled = disabled }
}

// WithDisabledMatcher installs the caller's disabled predicate.
func WithDisabledMatcher(m Matcher) Option {
	return func(c *Controller) {
		if m != nil {
			c.disabledFn = m
		}
	}
}

// WithUnavailableMatcher installs the caller's unavailable predicate.
func WithUnavailableMatcher(m Matcher) Option {
	return func(c *Controller) {
		if m != nil {
			c.unavailable = m
		}
	}
}

// WithSelectedDate seeds the single selection.
func WithSelectedDate(d date.Date) Option {
	return func(c *Controller) { c.selected = &d }
}

// WithSelectedDates seeds the multi-selection set.
func WithSelectedDates(ds []date.Date) Option {
	return func(c *Controller) { c.SetSelectedDates(ds) }
}

func neverMatch(date.Date) bool { return false }

// New validates cfg and builds the initial window anchored at reference.
func New(reference date.Date, cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:         cfg,
		cursor:      reference,
		disabledFn:  neverMatch,
		unavailable: neverMatch,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.window = BuildMonths(reference, cfg)
	return c, nil
}

// Config returns the immutable configuration.
func (c *Controller) Config() Config { return c.cfg }

// VisibleMonths returns the current window. Callers must treat it as
// read-only; it is replaced, never mutated, on navigation.
func (c *Controller) VisibleMonths() []MonthGrid { return c.window }

// Cursor returns the reference date anchoring the window.
func (c *Controller) Cursor() date.Date { return c.cursor }

func (c *Controller) pageStep() int {
	if c.cfg.PagedNavigation {
		return c.cfg.NumberOfMonths
	}
	return 1
}

// NextPage advances the window by one page and moves the cursor to the
// start of the new first visible month. Calling it while IsNextDisabled
// reports true still produces a consistent window; the disabled flag is
// advisory for the UI layer.
func (c *Controller) NextPage() {
	c.rebuild(c.window[0].Month.AddMonths(c.pageStep()))
}

// PrevPage retreats the window by one page. Like NextPage it moves the
// cursor to the start of the new first visible month.
func (c *Controller) PrevPage() {
	c.rebuild(c.window[0].Month.SubtractMonths(c.pageStep()))
}

func (c *Controller) rebuild(reference date.Date) {
	c.window = BuildMonths(reference, c.cfg)
	c.cursor = c.window[0].Month
}

// OnCursorChanged reacts to an externally driven cursor move. The window is
// rebuilt only when the new cursor's month differs from the old one, so
// same-month jitter stays cheap.
func (c *Controller) OnCursorChanged(d date.Date) {
	rebuild := !d.IsSameMonth(c.cursor)
	c.cursor = d
	if rebuild {
		c.window = BuildMonths(d, c.cfg)
	}
}

// IsNextDisabled reports whether advancing would start past MaxValue.
func (c *Controller) IsNextDisabled() bool {
	if c.disabled {
		return true
	}
	if c.cfg.MaxValue == nil || len(c.window) == 0 {
		return false
	}
	nextStart := c.window[len(c.window)-1].Month.AddMonths(1).StartOfMonth()
	return nextStart.After(*c.cfg.MaxValue)
}

// IsPrevDisabled reports whether retreating would end before MinValue.
func (c *Controller) IsPrevDisabled() bool {
	if c.disabled {
		return true
	}
	if c.cfg.MinValue == nil || len(c.window) == 0 {
		return false
	}
	prevEnd := c.window[0].Month.SubtractMonths(1).EndOfMonth()
	return prevEnd.Before(*c.cfg.MinValue)
}

// IsOutsideVisibleView reports whether d's month matches none of the
// currently visible months.
func (c *Controller) IsOutsideVisibleView(d date.Date) bool {
	for _, g := range c.window {
		if d.IsSameMonth(g.Month) {
			return false
		}
	}
	return true
}

// SetSelectedDate replaces the single selection; nil clears it. Selection
// is caller-owned state, the controller only classifies against it.
func (c *Controller) SetSelectedDate(d *date.Date) {
	if d == nil {
		c.selected = nil
		return
	}
	v := *d
	c.selected = &v
}

// SetSelectedDates replaces the multi-selection set with a copy.
func (c *Controller) SetSelectedDates(ds []date.Date) {
	if len(ds) == 0 {
		c.selectedSet = nil
		return
	}
	c.selectedSet = append([]date.Date(nil), ds...)
}

// SetDisabled toggles the whole-calendar disabled flag.
func (c *Controller) SetDisabled(disabled bool) { c.disabled = disabled }
