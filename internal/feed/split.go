// Package feed splits a raw iCalendar fixture feed into event blocks and
// parses each block into a structured record.
//
// The splitter is deliberately text-based: it scans for BEGIN:VEVENT and
// END:VEVENT markers instead of parsing the whole calendar, so a feed with a
// broken header or trailing junk still yields every well-formed block.
package feed

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	StartMarker = "BEGIN:VEVENT"
	EndMarker   = "END:VEVENT"

	// DefaultBlockLimit bounds the number of blocks read from a single feed.
	DefaultBlockLimit = 1000
)

var (
	ErrUnterminatedBlock = errors.New("unterminated event block")
	ErrInvalidLimit      = errors.New("block limit must be positive")
)

// SplitResult holds the raw blocks found in a feed, in document order.
type SplitResult struct {
	Blocks []string
	// Truncated is set when the limit was reached while further start
	// markers remained in the feed.
	Truncated bool
}

// Split returns the raw text of every event block in text. Each block starts
// at its BEGIN:VEVENT marker and stops just before the matching END:VEVENT.
func Split(text string, limit int) (*SplitResult, error) {
	if limit <= 0 {
		return nil, errors.Wrapf(ErrInvalidLimit, "limit %d", limit)
	}

	result := &SplitResult{Blocks: make([]string, 0)}
	index := 0

	for {
		start := strings.Index(text[index:], StartMarker)
		if start == -1 {
			return result, nil
		}
		start += index

		if len(result.Blocks) == limit {
			result.Truncated = true
			return result, nil
		}

		end := strings.Index(text[start:], EndMarker)
		if end == -1 {
			return nil, errors.Wrapf(ErrUnterminatedBlock, "block %d at offset %d", len(result.Blocks)+1, start)
		}
		end += start

		result.Blocks = append(result.Blocks, text[start:end])
		index = end + len(EndMarker)
	}
}
