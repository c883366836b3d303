package fixture

import "fmt"

// Line renders the fixture in the printable format, e.g.
//
//	20-Sep   L1 vs Haverhill Ladies 1, Long Road, 10:30 start , 2 umpires needed
//
// The layout is fixed; consumers diff it.
func (f Fixture) Line() string {
	return fmt.Sprintf("%s   %s vs %s, %s, %s start , %s needed",
		f.Date, f.Team, f.Opposition, f.Venue, f.Start, UmpireCount(f.UmpiresNeeded))
}

// UmpireCount returns "1 umpire" or "N umpires".
func UmpireCount(n int) string {
	if n == 1 {
		return "1 umpire"
	}
	return fmt.Sprintf("%d umpires", n)
}
