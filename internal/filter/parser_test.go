package filter

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantTeam string
		wantDate string
		wantErr  bool
	}{
		{name: "no arguments", args: nil},
		{name: "team only", args: []string{"L1"}, wantTeam: "L1"},
		{name: "day only", args: []string{"08-Nov"}, wantDate: "08-Nov"},
		{name: "month only", args: []string{"Nov"}, wantDate: "Nov"},
		{name: "date then team", args: []string{"08-Nov", "M3"}, wantTeam: "M3", wantDate: "08-Nov"},
		{name: "team then date", args: []string{"M3", "Sep"}, wantTeam: "M3", wantDate: "Sep"},
		{name: "last team wins", args: []string{"L1", "L2"}, wantTeam: "L2"},
		{name: "blank argument ignored", args: []string{" ", "L1"}, wantTeam: "L1"},
		{name: "lowercase month", args: []string{"nov"}, wantErr: true},
		{name: "single digit day", args: []string{"8-Nov"}, wantErr: true},
		{name: "full month name", args: []string{"November"}, wantErr: true},
		{name: "not a team", args: []string{"X1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTeam, got.Team)
			assert.Equal(t, tt.wantDate, got.Date)
		})
	}
}

func TestIsTeamToken(t *testing.T) {
	for token, want := range map[string]bool{
		"L1":  true,
		"M5":  true,
		"M10": true,
		"L":   false,
		"LX":  false,
		"l1":  false,
		"X1":  false,
		"Nov": false,
	} {
		assert.Equal(t, want, IsTeamToken(token), token)
	}
}
