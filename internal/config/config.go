// Package config loads runtime settings from the environment with sane
// defaults for a one-shot run.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Config file paths
	SourcesPath string
	LexiconPath string

	// Collection policy
	MaxHeadlines   int           // cap of unique headlines kept per source
	RequestTimeout time.Duration // per-request HTTP timeout
	FetchInterval  time.Duration // minimum spacing between outbound fetches

	// Chart output, empty disables rendering
	ChartPath string

	// Optional Telegram delivery of the combined summary
	TelegramToken  string
	TelegramChatID string
	NotifyAttempts int
	NotifyDelay    time.Duration

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		SourcesPath:    "configs/sources.yaml",
		LexiconPath:    "configs/lexicon.yaml",
		MaxHeadlines:   12,
		RequestTimeout: 10 * time.Second,
		FetchInterval:  500 * time.Millisecond,
		ChartPath:      "sentiment.png",
		NotifyAttempts: 3,
		NotifyDelay:    2 * time.Second,
	}

	// Load from environment
	cfg.SourcesPath = getEnvOrDefault("SOURCES_CONFIG_PATH", cfg.SourcesPath)
	cfg.LexiconPath = getEnvOrDefault("LEXICON_CONFIG_PATH", cfg.LexiconPath)
	cfg.MaxHeadlines = getEnvIntOrDefault("MAX_HEADLINES", cfg.MaxHeadlines)
	cfg.ChartPath = getEnvOrDefault("CHART_PATH", cfg.ChartPath)

	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("FETCH_INTERVAL_MS", 0); v > 0 {
		cfg.FetchInterval = time.Duration(v) * time.Millisecond
	}

	if os.Getenv("NO_CHART") == "true" {
		cfg.ChartPath = ""
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	if v := getEnvIntOrDefault("NOTIFY_ATTEMPTS", 0); v > 0 {
		cfg.NotifyAttempts = v
	}
	if v := getEnvIntOrDefault("NOTIFY_DELAY_SECONDS", 0); v > 0 {
		cfg.NotifyDelay = time.Duration(v) * time.Second
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.MaxHeadlines <= 0 {
		return fmt.Errorf("MAX_HEADLINES must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == "") {
		return fmt.Errorf("TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}
