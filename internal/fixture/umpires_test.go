package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUmpiresNeeded(t *testing.T) {
	tests := []struct {
		name       string
		team       string
		isAway     bool
		opposition string
		want       int
	}{
		{"home fixture", "L1", false, "Haverhill Ladies 1", 2},
		{"away fixture", "L1", true, "Haverhill Ladies 1", 0},
		{"top men's team at home", TopMensTeam, false, "Ipswich 1", 0},
		{"St Ives at home", "L2", false, "St Ives 2", 1},
		{"St Ives away outranks away rule", "L2", true, "St Ives 2", 1},
		{"Cambridge City against top team", TopMensTeam, false, "Cambridge City 1", 1},
		{"Cambridge City away", "M4", true, "Cambridge City 5", 1},
		{"substring match", "M3", false, "Old St Ives Vets", 1},
		{"case sensitive", "M3", false, "st ives 2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UmpiresNeeded(tt.team, tt.isAway, tt.opposition))
		})
	}
}

func TestLine_UmpireWording(t *testing.T) {
	f := Fixture{
		Date:       "08-Nov",
		Team:       "M2",
		Opposition: "St Ives 1",
		Venue:      "St Catz",
		Start:      "12:00",
	}

	for n, want := range map[int]string{
		0: "08-Nov   M2 vs St Ives 1, St Catz, 12:00 start , 0 umpires needed",
		1: "08-Nov   M2 vs St Ives 1, St Catz, 12:00 start , 1 umpire needed",
		2: "08-Nov   M2 vs St Ives 1, St Catz, 12:00 start , 2 umpires needed",
	} {
		f.UmpiresNeeded = n
		assert.Equal(t, want, f.Line())
	}
}
