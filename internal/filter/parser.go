package filter

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

var ErrInvalidDate = errors.New("invalid date filter")

var datePattern = regexp.MustCompile(`^(\d{2}-)?(` + strings.Join(fixture.MonthAbbrevs(), "|") + `)$`)

// ParseArgs classifies positional command-line arguments. An argument whose
// first character is M or L and whose second is a digit is the team token;
// anything else is the date token. When several arguments of the same kind
// are given, the last one wins.
//
// Date tokens must be "DD-Mon" (e.g. "08-Nov") or "Mon" (e.g. "Nov").
func ParseArgs(args []string) (*Filter, error) {
	f := NewFilter("", "")

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if IsTeamToken(arg) {
			f.Team = arg
			continue
		}
		if !datePattern.MatchString(arg) {
			return nil, errors.Wrapf(ErrInvalidDate, "%q (use 'DD-Mon' such as '08-Nov', or 'Mon' such as 'Nov')", arg)
		}
		f.Date = arg
	}

	return f, nil
}

// IsTeamToken reports whether s looks like a team code such as "L1" or "M3".
func IsTeamToken(s string) bool {
	return len(s) >= 2 && (s[0] == 'M' || s[0] == 'L') && s[1] >= '0' && s[1] <= '9'
}
