// Package marks loads caller-maintained date annotations from a JSON file:
// days that should be unavailable (booked, blocked) or disabled outright,
// each with an optional label. The set feeds the calendar's predicate hooks
// so the core never knows where the data came from.
package marks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davren/calgrid/internal/calendar"
	"github.com/davren/calgrid/internal/date"
)

// Entry is one annotated day in the file.
type Entry struct {
	Date        string `json:"date"`
	Label       string `json:"label,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
	Unavailable bool   `json:"unavailable,omitempty"`
}

type mark struct {
	label       string
	disabled    bool
	unavailable bool
}

// Set is an indexed collection of marks keyed by calendar day.
type Set struct {
	byDay map[string]mark
}

// LoadFile reads and indexes a marks file. Entries with an unparseable
// date are rejected rather than skipped, since a silently ignored block
// date defeats the point of the file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read marks file: %w", err)
	}
	return Parse(data)
}

// Parse indexes marks from raw JSON.
func Parse(data []byte) (*Set, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse marks JSON: %w", err)
	}

	s := &Set{byDay: make(map[string]mark, len(entries))}
	for i, e := range entries {
		d, err := date.Parse(e.Date)
		if err != nil {
			return nil, fmt.Errorf("marks entry %d: %w", i, err)
		}
		s.byDay[d.String()] = mark{
			label:       e.Label,
			disabled:    e.Disabled,
			unavailable: e.Unavailable,
		}
	}
	return s, nil
}

// Len returns the number of marked days.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byDay)
}

// Label returns the annotation text for d, if any.
func (s *Set) Label(d date.Date) string {
	if s == nil {
		return ""
	}
	return s.byDay[d.String()].label
}

// DisabledMatcher returns a predicate matching days marked disabled.
func (s *Set) DisabledMatcher() calendar.Matcher {
	return func(d date.Date) bool {
		return s != nil && s.byDay[d.String()].disabled
	}
}

// UnavailableMatcher returns a predicate matching days marked unavailable.
func (s *Set) UnavailableMatcher() calendar.Matcher {
	return func(d date.Date) bool {
		return s != nil && s.byDay[d.String()].unavailable
	}
}
