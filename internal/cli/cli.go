package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/hockey-fixtures/internal/config"
	"github.com/pfrederiksen/hockey-fixtures/internal/filter"
	"github.com/pfrederiksen/hockey-fixtures/internal/fixture"
	"github.com/pfrederiksen/hockey-fixtures/internal/logger"
	"github.com/pfrederiksen/hockey-fixtures/internal/schedule"
	"github.com/pfrederiksen/hockey-fixtures/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const defaultCalendarName = "Hockey Fixtures"

// options holds the command-line flags of one command instance.
type options struct {
	url          string
	file         string
	format       string
	calendarName string
	maxBlocks    int
	timeout      time.Duration
	skipInvalid  bool
	verbose      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hockey-fixtures [date] [team]",
		Short: "List the club's hockey fixtures and umpiring needs",
		Long: `A CLI tool that reads the club's fixture calendar and prints one line per
fixture with its venue, start time and the number of umpires the club must
provide, followed by the list of opposing clubs.

A date argument is either a day ("08-Nov") or a month ("Nov"); a team
argument is a team code such as "L1" or "M3". Both are optional.`,
		Example: `  hockey-fixtures 08-Nov
  hockey-fixtures Nov L1
  hockey-fixtures --file matches.ics --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", config.DefaultFeedURL, "Fixture feed URL (or a page linking to it)")
	cmd.Flags().StringVar(&opts.file, "file", "", "Read the feed from a file instead of the network ('-' for stdin)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json or ics")
	cmd.Flags().StringVar(&opts.calendarName, "calendar-name", defaultCalendarName, "Calendar name for ics output")
	cmd.Flags().IntVar(&opts.maxBlocks, "max-blocks", 0, "Maximum number of events read from the feed")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", scraper.Timeout, "HTTP timeout")
	cmd.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "Skip events that are not fixtures instead of failing")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging and output")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, args []string, opts *options) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if !format.Valid() {
		return errors.Newf("invalid format: %s (must be 'text', 'json' or 'ics')", opts.format)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg, opts); err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	defer logger.Sync()

	f, err := filter.ParseArgs(args)
	if err != nil {
		return err
	}

	source := cfg.FeedURL
	if opts.file != "" {
		source = opts.file
	}
	logger.Info("Parsing feed", logger.Fields{
		"source": source,
		"filter": f.String(),
	})

	text, err := readFeed(cmd.Context(), cmd.InOrStdin(), opts.file, cfg)
	if err != nil {
		return err
	}

	res, err := schedule.Run(text, schedule.Options{
		Filter:      f,
		BlockLimit:  cfg.MaxBlocks,
		SkipInvalid: cfg.SkipInvalid,
		ExcludeTeam: fixture.TopMensTeam,
	})
	if err != nil {
		return err
	}

	result := &OutputResult{
		CheckedAt:    time.Now().UTC(),
		URL:          source,
		TeamFilter:   f.Team,
		DateFilter:   f.Date,
		Fixtures:     res.Fixtures,
		Lines:        res.Lines(),
		Clubs:        res.Clubs.Sorted,
		Opponents:    res.Clubs.All,
		Skipped:      res.Skipped,
		Truncated:    res.Truncated,
		CalendarName: opts.calendarName,
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, opts.verbose); err != nil {
		return errors.Wrap(err, "writing output")
	}

	return nil
}

// applyFlags overrides environment configuration with flags the user set
// explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) error {
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.FeedURL = strings.TrimSpace(opts.url)
	}
	if flags.Changed("max-blocks") {
		cfg.MaxBlocks = opts.maxBlocks
	}
	if flags.Changed("timeout") {
		cfg.HTTPTimeout = opts.timeout
	}
	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid = opts.skipInvalid
	}
	return cfg.Validate()
}

// readFeed returns the feed text from a file, stdin or the network.
func readFeed(ctx context.Context, stdin io.Reader, file string, cfg config.Config) (string, error) {
	switch file {
	case "":
		text, err := scraper.New(cfg.FeedURL, cfg.HTTPTimeout).FetchFeed(ctx)
		if err != nil {
			return "", errors.Wrap(err, "fetching feed")
		}
		return text, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", file)
		}
		return string(data), nil
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
