// Package schedule runs the fixture pipeline over a raw feed: split the feed
// into blocks, extract one fixture per block, then filter and sort the
// printable list while collecting opposing clubs from the unfiltered list.
package schedule

import (
	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/hockey-fixtures/internal/clubs"
	"github.com/pfrederiksen/hockey-fixtures/internal/feed"
	"github.com/pfrederiksen/hockey-fixtures/internal/filter"
	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
	"github.com/pfrederiksen/hockey-fixtures/internal/logger"
)

// Options controls a pipeline run.
type Options struct {
	Filter *filter.Filter
	// BlockLimit caps the number of event blocks read from the feed.
	BlockLimit int
	// SkipInvalid logs and skips blocks that cannot be turned into a
	// fixture instead of failing the run.
	SkipInvalid bool
	// ExcludeTeam is left out of the opposing club list.
	ExcludeTeam string
}

// DefaultOptions returns strict options with no filtering.
func DefaultOptions() Options {
	return Options{
		Filter:      filter.NewFilter("", ""),
		BlockLimit:  feed.DefaultBlockLimit,
		ExcludeTeam: fixture.TopMensTeam,
	}
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Fixtures are the retained fixtures, filtered and sorted.
	Fixtures []fixture.Fixture
	// All holds every extracted fixture in feed order.
	All       []fixture.Fixture
	Clubs     *clubs.Result
	Order     SortOrder
	Skipped   int
	Truncated bool
}

// Lines renders the retained fixtures.
func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Fixtures))
	for _, f := range r.Fixtures {
		lines = append(lines, f.Line())
	}
	return lines
}

// Run processes the full text of a feed.
func Run(text string, opts Options) (*Result, error) {
	if opts.Filter == nil {
		opts.Filter = filter.NewFilter("", "")
	}

	split, err := feed.Split(text, opts.BlockLimit)
	if err != nil {
		return nil, errors.Wrap(err, "splitting feed")
	}
	if split.Truncated {
		logger.Warn("Stopping at block limit, remaining fixtures ignored", logger.Fields{
			"limit": opts.BlockLimit,
		})
	}

	result := &Result{
		All:       make([]fixture.Fixture, 0, len(split.Blocks)),
		Truncated: split.Truncated,
	}

	for i, raw := range split.Blocks {
		f, err := fixture.Extract(feed.ParseBlock(raw))
		if err != nil {
			if opts.SkipInvalid && errors.Is(err, fixture.ErrExtraction) {
				logger.Warn("Skipping invalid fixture", logger.Fields{
					"block":  i + 1,
					"reason": err.Error(),
				})
				result.Skipped++
				continue
			}
			return nil, errors.Wrapf(err, "block %d", i+1)
		}
		result.All = append(result.All, f)
	}

	logger.Debug("Extracted fixtures", logger.Fields{
		"blocks":   len(split.Blocks),
		"fixtures": len(result.All),
		"skipped":  result.Skipped,
	})

	result.Clubs = clubs.Aggregate(result.All, opts.ExcludeTeam)
	result.Order = OrderFor(opts.Filter.Date)
	result.Fixtures = Sort(opts.Filter.Apply(result.All), result.Order)

	return result, nil
}
