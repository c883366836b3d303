// Package cli implements the command-line interface for hockey-fixtures.
//
// The root command takes up to two positional arguments, a date ("08-Nov" or
// "Nov") and a team ("L1", "M3"), in either order. It fetches the club's
// fixture feed (or reads it from --file), runs the schedule pipeline and
// writes the retained fixtures and the opposing club list as text, JSON or
// iCalendar.
package cli
