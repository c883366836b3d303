package schedule

import (
	"sort"

	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

// SortOrder represents how a fixture list is ordered
type SortOrder string

const (
	// SortNone keeps feed order.
	SortNone SortOrder = "none"
	// SortByTeam is used for a single day: L1-L3 first, then M1-M5.
	SortByTeam SortOrder = "team"
	// SortByDate is used for a whole month: by date, then team within a date.
	SortByDate SortOrder = "date"
)

// OrderFor picks the sort order implied by a date filter token.
func OrderFor(dateToken string) SortOrder {
	switch {
	case dateToken == "":
		return SortNone
	case dateToken[0] >= '0' && dateToken[0] <= '9':
		return SortByTeam
	default:
		return SortByDate
	}
}

// Sort returns a sorted copy of fixtures. Sorting is stable, so fixtures with
// equal keys keep their feed order.
func Sort(fixtures []fixture.Fixture, order SortOrder) []fixture.Fixture {
	sorted := make([]fixture.Fixture, len(fixtures))
	copy(sorted, fixtures)

	switch order {
	case SortByTeam:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Team < sorted[j].Team
		})
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			if !sorted[i].Day.Equal(sorted[j].Day) {
				return sorted[i].Day.Before(sorted[j].Day)
			}
			return sorted[i].Team < sorted[j].Team
		})
	}

	return sorted
}
