// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/pfrederiksen/hockey-fixtures/internal/feed"
	"github.com/pfrederiksen/hockey-fixtures/internal/logger"
)

const DefaultFeedURL = "http://www.cambridgesouthhockeyclub.co.uk/matches/cshc_matches.ics"

// Config stores runtime configuration for the CLI.
type Config struct {
	FeedURL     string        `validate:"required,url"`
	MaxBlocks   int           `validate:"min=1"`
	HTTPTimeout time.Duration `validate:"gt=0"`
	SkipInvalid bool
	LogLevel    logger.Level `validate:"oneof=DEBUG INFO WARN ERROR"`
}

var validate = validator.New()

// Load reads HOCKEY_* environment variables, falling back to defaults.
func Load() (Config, error) {
	maxBlocks, err := getEnvAsInt("HOCKEY_MAX_BLOCKS", feed.DefaultBlockLimit)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse HOCKEY_MAX_BLOCKS")
	}

	timeout, err := time.ParseDuration(getEnv("HOCKEY_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse HOCKEY_HTTP_TIMEOUT")
	}

	skipInvalid, err := strconv.ParseBool(getEnv("HOCKEY_SKIP_INVALID", "false"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse HOCKEY_SKIP_INVALID")
	}

	cfg := Config{
		FeedURL:     strings.TrimSpace(getEnv("HOCKEY_FEED_URL", DefaultFeedURL)),
		MaxBlocks:   maxBlocks,
		HTTPTimeout: timeout,
		SkipInvalid: skipInvalid,
		LogLevel:    logger.ParseLevel(getEnv("HOCKEY_LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints; it is also used after command-line
// overrides are applied.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
