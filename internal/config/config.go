package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds process settings read from the environment.
type Config struct {
	Addr            string
	ServiceName     string
	LogFormat       string
	LogLevel        string
	TracingEnabled  bool
	MetricsEnabled  bool
	LogsEnabled     bool
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		ServiceName:     "go-chi-calculator",
		LogFormat:       LogFormatJSON,
		LogLevel:        "info",
		TracingEnabled:  true,
		MetricsEnabled:  true,
		LogsEnabled:     false,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads .env (when present) and then the process environment on top of
// the defaults. Variables already set in the process win over .env.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("HTTP_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("OTEL_SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		switch v {
		case LogFormatJSON, LogFormatConsole:
			cfg.LogFormat = v
		default:
			return Config{}, fmt.Errorf("LOG_FORMAT: unsupported value %q", v)
		}
	}

	var err error
	if cfg.TracingEnabled, err = boolVar(lookup, "OTEL_TRACES_ENABLED", cfg.TracingEnabled); err != nil {
		return Config{}, err
	}
	if cfg.MetricsEnabled, err = boolVar(lookup, "OTEL_METRICS_ENABLED", cfg.MetricsEnabled); err != nil {
		return Config{}, err
	}
	if cfg.LogsEnabled, err = boolVar(lookup, "OTEL_LOGS_ENABLED", cfg.LogsEnabled); err != nil {
		return Config{}, err
	}

	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func boolVar(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}
