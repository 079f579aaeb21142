package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	LogLevel     slog.Level
	RatesFile    string // empty: built-in 2025 table
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodySize  int
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		LogLevel:     ParseLevel(getenv("LOG_LEVEL", "info")),
		RatesFile:    getenv("RATES_FILE", ""),
		ReadTimeout:  parseDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: parseDuration("WRITE_TIMEOUT", 5*time.Second),
		MaxBodySize:  parseInt("MAX_BODY_SIZE", 1<<20),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(env string, def time.Duration) time.Duration {
	if v := os.Getenv(env); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseInt(env string, def int) int {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
