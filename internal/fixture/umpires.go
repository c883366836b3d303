package fixture

import "strings"

// TopMensTeam provides its own umpires and is left out of the opposing club
// list.
const TopMensTeam = "M1"

// Clubs that send one umpire to every fixture, home or away.
var singleUmpireClubs = []string{"St Ives", "Cambridge City"}

// UmpiresNeeded estimates how many umpires the club must provide. Rule order
// matters: single-umpire clubs take precedence over side and team.
func UmpiresNeeded(team string, isAway bool, opposition string) int {
	for _, club := range singleUmpireClubs {
		if strings.Contains(opposition, club) {
			return 1
		}
	}

	if isAway {
		return 0
	}
	if team == TopMensTeam {
		return 0
	}
	return 2
}
