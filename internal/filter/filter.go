// Package filter narrows a fixture list down to one team and/or one date.
//
// Both criteria are plain substring tests against the fixture's printed line,
// so a team token of "L1" keeps every line mentioning L1 and a date token of
// "Nov" keeps every November fixture.
//
// Example usage:
//
//	f, err := filter.ParseArgs([]string{"08-Nov", "L1"})
//	if err != nil {
//	    return err
//	}
//	kept := f.Apply(fixtures)
package filter

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

// Filter holds the optional team and date tokens. An empty token matches
// everything.
type Filter struct {
	Team string `json:"team,omitempty"`
	Date string `json:"date,omitempty"`
}

// NewFilter creates a filter from the given tokens; either may be empty.
func NewFilter(team, date string) *Filter {
	return &Filter{Team: team, Date: date}
}

// IsEmpty reports whether the filter would keep every fixture.
func (f *Filter) IsEmpty() bool {
	return f.Team == "" && f.Date == ""
}

// MatchesLine reports whether a printed fixture line contains every
// non-empty token.
func (f *Filter) MatchesLine(line string) bool {
	if f.Team != "" && !strings.Contains(line, f.Team) {
		return false
	}
	if f.Date != "" && !strings.Contains(line, f.Date) {
		return false
	}
	return true
}

// Matches tests the fixture's printed line.
func (f *Filter) Matches(fx fixture.Fixture) bool {
	return f.MatchesLine(fx.Line())
}

// Apply returns the matching fixtures in their original order. The input
// slice is never modified.
func (f *Filter) Apply(fixtures []fixture.Fixture) []fixture.Fixture {
	kept := make([]fixture.Fixture, 0, len(fixtures))
	for _, fx := range fixtures {
		if f.Matches(fx) {
			kept = append(kept, fx)
		}
	}
	return kept
}

// String returns a human-readable description of the active tokens.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.Team != "" {
		parts = append(parts, fmt.Sprintf("Team: %s", f.Team))
	}
	if f.Date != "" {
		parts = append(parts, fmt.Sprintf("Date: %s", f.Date))
	}
	return strings.Join(parts, " | ")
}
