package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	// Loads a local .env file into the environment when present.
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	HTTPAddr      string
	LogLevel      slog.Level
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	LLMTimeout    time.Duration
	DailyLimit    int
	LimitTimezone string
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:   envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:    30 * time.Second,
		DailyLimit:    50,
		LimitTimezone: envOr("LIMIT_TIMEZONE", "Asia/Tokyo"),
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	if v := os.Getenv("DAILY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid DAILY_LIMIT %q", v)
		}
		c.DailyLimit = n
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY is required")
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
