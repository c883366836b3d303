package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/hockey-fixtures/internal/calendar"
	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// Separator divides the fixture lines from the club list in text output.
const Separator = "***********************"

// Valid reports whether f is a supported format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatICS:
		return true
	}
	return false
}

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt  time.Time         `json:"checked_at"`
	URL        string            `json:"url"`
	TeamFilter string            `json:"team_filter,omitempty"`
	DateFilter string            `json:"date_filter,omitempty"`
	Fixtures   []fixture.Fixture `json:"fixtures"`
	Lines      []string          `json:"lines"`
	Clubs      []string          `json:"clubs"`
	Opponents  []string          `json:"opponents,omitempty"`
	Skipped    int               `json:"skipped"`
	Truncated  bool              `json:"truncated"`

	CalendarName string `json:"-"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(result.Fixtures, result.CalendarName, result.CheckedAt))
		return err
	default:
		return errors.Newf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	data, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeText outputs the fixture lines, then the opposing clubs.
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if len(result.Lines) == 0 {
		fmt.Fprintln(w, "No fixtures found.")
	}
	for _, line := range result.Lines {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, "Opposing clubs:")
	for _, club := range result.Clubs {
		fmt.Fprintln(w, club)
	}

	if verbose {
		fmt.Fprintf(w, "\nOpponents by fixture (%d):\n", len(result.Opponents))
		for _, club := range result.Opponents {
			fmt.Fprintf(w, "  %s\n", club)
		}
		if result.Skipped > 0 {
			fmt.Fprintf(w, "\nSkipped %d invalid event(s)\n", result.Skipped)
		}
		if result.Truncated {
			fmt.Fprintln(w, "Feed truncated at the block limit")
		}
	}

	return nil
}
