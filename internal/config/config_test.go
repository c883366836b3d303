package config

import (
	"testing"
	"time"

	"github.com/pfrederiksen/hockey-fixtures/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOCKEY_FEED_URL",
		"HOCKEY_MAX_BLOCKS",
		"HOCKEY_HTTP_TIMEOUT",
		"HOCKEY_SKIP_INVALID",
		"HOCKEY_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, 1000, cfg.MaxBlocks)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.SkipInvalid)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOCKEY_FEED_URL", "https://example.com/matches.ics")
	t.Setenv("HOCKEY_MAX_BLOCKS", "50")
	t.Setenv("HOCKEY_HTTP_TIMEOUT", "5s")
	t.Setenv("HOCKEY_SKIP_INVALID", "true")
	t.Setenv("HOCKEY_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/matches.ics", cfg.FeedURL)
	assert.Equal(t, 50, cfg.MaxBlocks)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.SkipInvalid)
	assert.Equal(t, logger.LevelWarn, cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"max blocks not a number", "HOCKEY_MAX_BLOCKS", "many"},
		{"max blocks zero", "HOCKEY_MAX_BLOCKS", "0"},
		{"timeout not a duration", "HOCKEY_HTTP_TIMEOUT", "soon"},
		{"timeout negative", "HOCKEY_HTTP_TIMEOUT", "-1s"},
		{"skip invalid not a bool", "HOCKEY_SKIP_INVALID", "maybe"},
		{"feed url not a url", "HOCKEY_FEED_URL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{
		FeedURL:     DefaultFeedURL,
		MaxBlocks:   1,
		HTTPTimeout: time.Second,
		LogLevel:    logger.LevelDebug,
	}
	require.NoError(t, cfg.Validate())

	cfg.MaxBlocks = -5
	assert.Error(t, cfg.Validate())
}
