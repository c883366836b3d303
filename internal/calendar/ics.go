// Package calendar exports fixtures as an iCalendar feed.
//
// Exported events use the same SUMMARY layout as the club feed
// ("[H] L1 vs Haverhill Ladies 1"), so an exported file can be read back by
// this tool. Times are floating local times, as in the source feed.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

const productID = "-//Hockey Fixtures//hockey-fixtures//EN"

// GenerateID creates a deterministic ID for a fixture without a feed UID.
func GenerateID(f fixture.Fixture) string {
	h := sha1.New()
	h.Write([]byte(f.Day.Format("20060102") + "|" + f.Team + "|" + f.Opposition))
	return fmt.Sprintf("%x@hockey-fixtures", h.Sum(nil))
}

// GenerateICS renders fixtures as a single calendar named name.
func GenerateICS(fixtures []fixture.Fixture, name string, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, f := range fixtures {
		uid := f.UID
		if uid == "" {
			uid = GenerateID(f)
		}

		evt := cal.AddEvent(uid)
		evt.SetDtStampTime(now.UTC())
		evt.SetSummary(summary(f))
		evt.SetLocation(f.Venue)
		evt.SetDescription(fmt.Sprintf("%s needed", fixture.UmpireCount(f.UmpiresNeeded)))
		setTimes(evt, f)
	}

	return cal.Serialize()
}

func summary(f fixture.Fixture) string {
	side := "H"
	if f.IsAway {
		side = "A"
	}
	return fmt.Sprintf("[%s] %s vs %s", side, f.Team, f.Opposition)
}

// setTimes writes DTSTART/DTEND. Fixtures with unknown times become all-day
// events; a timed fixture whose end time is unknown gets its start as end.
func setTimes(evt *ics.VEvent, f fixture.Fixture) {
	start, ok := clock(f.Day, f.Start)
	if !ok {
		evt.SetProperty(ics.ComponentPropertyDtStart, f.Day.Format("20060102"), ics.WithValue(string(ics.ValueDataTypeDate)))
		evt.SetProperty(ics.ComponentPropertyDtEnd, f.Day.AddDate(0, 0, 1).Format("20060102"), ics.WithValue(string(ics.ValueDataTypeDate)))
		return
	}

	end, ok := clock(f.Day, f.End)
	if !ok || end.Before(start) {
		end = start
	}

	evt.SetProperty(ics.ComponentPropertyDtStart, start.Format("20060102T150405"), ics.WithValue(string(ics.ValueDataTypeDateTime)))
	evt.SetProperty(ics.ComponentPropertyDtEnd, end.Format("20060102T150405"), ics.WithValue(string(ics.ValueDataTypeDateTime)))
}

func clock(day time.Time, hhmm string) (time.Time, bool) {
	if hhmm == fixture.UnknownTime || strings.TrimSpace(hhmm) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), true
}
