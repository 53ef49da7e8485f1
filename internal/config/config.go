// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr         string
	LogLevel         slog.Level
	JournalPath      string
	DefaultDeck      string
	ChromePath       string
	AnthropicAPIKey  string
	AnthropicModel   string
	ComposerEnabled  bool
	InterpretTimeout time.Duration
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:         envOr("HTTP_ADDR", ":8080"),
		JournalPath:      envOr("JOURNAL_PATH", "data/readings.db"),
		DefaultDeck:      envOr("DEFAULT_DECK", "rider_waite"),
		ChromePath:       os.Getenv("CHROME_PATH"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   envOr("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		InterpretTimeout: 45 * time.Second,
	}

	if v := os.Getenv("INTERPRET_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INTERPRET_TIMEOUT %q: %w", v, err)
		}
		c.InterpretTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	switch strings.ToLower(envOr("COMPOSER", "deterministic")) {
	case "deterministic":
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return Config{}, fmt.Errorf("ANTHROPIC_API_KEY is required when COMPOSER=anthropic")
		}
		c.ComposerEnabled = true
	default:
		return Config{}, fmt.Errorf("invalid COMPOSER %q (want deterministic or anthropic)", os.Getenv("COMPOSER"))
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
