// Package fixture derives hockey fixtures from parsed calendar event blocks.
//
// A fixture's summary line carries the side tag, the club's own team code and
// the opposition, e.g.
//
//	SUMMARY:[H] L1 vs Haverhill Ladies 1
//
// Dates and times come from DTSTART/DTEND, which may be either timed
// (VALUE=DATE-TIME) or date-only (VALUE=DATE). Date-only fixtures have
// unknown start and end times, rendered as "??:??".
package fixture

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/hockey-fixtures/internal/feed"
)

// Fixture is a single scheduled match for one of the club's teams.
type Fixture struct {
	Date          string    `json:"date"`
	Day           time.Time `json:"day"`
	Team          string    `json:"team"`
	Opposition    string    `json:"opposition"`
	IsAway        bool      `json:"is_away"`
	Venue         string    `json:"venue"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	UmpiresNeeded int       `json:"umpires_needed"`
	UID           string    `json:"uid,omitempty"`
}

var (
	// ErrExtraction marks every error returned by Extract.
	ErrExtraction = errors.New("fixture extraction failed")

	ErrTeam       = errors.New("unable to ascertain team")
	ErrOpposition = errors.New("unable to ascertain opposition")
	ErrDate       = errors.New("unable to ascertain month/date")
	ErrMonth      = errors.New("unable to ascertain month abbreviation")
	ErrStart      = errors.New("unable to ascertain start time and it is not unknown")
	ErrEnd        = errors.New("unable to ascertain end time and it is not unknown")
)

// [H|A] TEAM SEPARATOR OPPOSITION...
var summaryPattern = regexp.MustCompile(`^\[([HA])\]\s?(\w*)\s?(\S*)\s?(.*)$`)

var stampPattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(?:T(\d{2})(\d{2}))?`)

// stamp is a DTSTART or DTEND value split into its textual parts.
type stamp struct {
	raw              string
	year, month, day string
	hour, minute     string
	timed            bool
	missingClock     bool // DATE-TIME value without a time part
}

func (s stamp) clock() string {
	if !s.timed {
		return UnknownTime
	}
	return s.hour + ":" + s.minute
}

// Extract derives a Fixture from one event block. Fields are recovered in a
// fixed order (side, team, opposition, date, start, end, venue) and the first
// unrecoverable field is reported; the error is marked with ErrExtraction.
func Extract(block *feed.Block) (Fixture, error) {
	summary, ok := block.Get("SUMMARY")
	if !ok {
		return Fixture{}, fail(ErrTeam, "no SUMMARY property")
	}

	m := summaryPattern.FindStringSubmatch(strings.TrimSpace(summary.Value))
	if m == nil || m[2] == "" {
		return Fixture{}, fail(ErrTeam, "summary %q", summary.Value)
	}
	isAway := m[1] == "A"
	team := m[2]

	opposition := strings.TrimRightFunc(m[4], unicode.IsSpace)
	if opposition == "" {
		return Fixture{}, fail(ErrOpposition, "summary %q", summary.Value)
	}

	start, ok := readStamp(block, "DTSTART")
	if !ok {
		return Fixture{}, fail(ErrDate, "no usable DTSTART")
	}

	monthName, ok := MonthAbbrev(start.month)
	if !ok {
		return Fixture{}, fail(ErrMonth, "month %q", start.month)
	}

	day, err := time.Parse("20060102", start.year+start.month+start.day)
	if err != nil {
		return Fixture{}, fail(ErrDate, "DTSTART date %s%s%s", start.year, start.month, start.day)
	}

	if start.missingClock {
		return Fixture{}, fail(ErrStart, "DTSTART %q", start.raw)
	}

	end, ok := readStamp(block, "DTEND")
	if !ok || end.missingClock {
		return Fixture{}, fail(ErrEnd, "no usable DTEND")
	}

	f := Fixture{
		Date:       start.day + "-" + monthName,
		Day:        day,
		Team:       team,
		Opposition: opposition,
		IsAway:     isAway,
		Venue:      extractVenue(block, isAway),
		Start:      start.clock(),
		End:        end.clock(),
	}
	f.UmpiresNeeded = UmpiresNeeded(f.Team, f.IsAway, f.Opposition)

	if uid, ok := block.Get("UID"); ok {
		f.UID = strings.TrimSpace(uid.Value)
	}

	return f, nil
}

// readStamp reads a timed or date-only timestamp property. Without an
// explicit VALUE parameter the presence of a time part decides the form.
func readStamp(block *feed.Block, name string) (stamp, bool) {
	prop, ok := block.Get(name)
	if !ok {
		return stamp{}, false
	}

	m := stampPattern.FindStringSubmatch(strings.TrimSpace(prop.Value))
	if m == nil {
		return stamp{}, false
	}
	s := stamp{raw: prop.Value, year: m[1], month: m[2], day: m[3], hour: m[4], minute: m[5]}

	switch strings.ToUpper(prop.Param("VALUE")) {
	case "DATE-TIME":
		s.timed = true
		s.missingClock = s.hour == ""
	case "DATE":
		s.timed = false
	case "":
		s.timed = s.hour != ""
	default:
		return stamp{}, false
	}

	return s, true
}

// extractVenue never fails: away fixtures are "Away", a missing or empty
// LOCATION is "TBD", and the raw name up to the first escape is aliased.
func extractVenue(block *feed.Block, isAway bool) string {
	if isAway {
		return AwayVenue
	}

	location, ok := block.Get("LOCATION")
	if !ok {
		return UnknownVenue
	}

	raw, _, _ := strings.Cut(location.Value, `\`)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownVenue
	}

	return VenueAlias(raw)
}

func fail(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Mark(sentinel, ErrExtraction), format, args...)
}
