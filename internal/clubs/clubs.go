// Package clubs collects the opposing clubs from a season's fixtures, so the
// club knows whom to contact about umpiring arrangements.
package clubs

import (
	"sort"

	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

// Result holds the clubs found in a fixture list.
type Result struct {
	// All lists one club per counted fixture, in fixture order, duplicates
	// included.
	All []string `json:"all"`
	// Unique is the set of distinct club names.
	Unique map[string]struct{} `json:"-"`
	// Sorted is the distinct club names in alphabetical order.
	Sorted []string `json:"sorted"`
}

// ClubName strips the trailing team-number suffix (the last two characters,
// e.g. " 2") from an opposition name.
func ClubName(opposition string) string {
	if len(opposition) < 2 {
		return ""
	}
	return opposition[:len(opposition)-2]
}

// Aggregate derives the club of every fixture not played by excludeTeam and
// reduces them to a sorted, deduplicated list.
func Aggregate(fixtures []fixture.Fixture, excludeTeam string) *Result {
	result := &Result{
		All:    make([]string, 0, len(fixtures)),
		Unique: make(map[string]struct{}),
	}

	for _, f := range fixtures {
		if f.Team == excludeTeam {
			continue
		}
		club := ClubName(f.Opposition)
		result.All = append(result.All, club)
		result.Unique[club] = struct{}{}
	}

	result.Sorted = make([]string, 0, len(result.Unique))
	for club := range result.Unique {
		result.Sorted = append(result.Sorted, club)
	}
	sort.Strings(result.Sorted)

	return result
}
