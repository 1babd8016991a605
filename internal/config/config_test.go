package config

import (
	"testing"
	"time"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapLookup(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != Default() {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(mapLookup(map[string]string{
		"HTTP_ADDR":            ":9090",
		"OTEL_SERVICE_NAME":    "calc-test",
		"LOG_FORMAT":           "console",
		"LOG_LEVEL":            "debug",
		"OTEL_TRACES_ENABLED":  "false",
		"OTEL_METRICS_ENABLED": "0",
		"OTEL_LOGS_ENABLED":    "true",
		"SHUTDOWN_TIMEOUT":     "2s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		Addr:            ":9090",
		ServiceName:     "calc-test",
		LogFormat:       LogFormatConsole,
		LogLevel:        "debug",
		TracingEnabled:  false,
		MetricsEnabled:  false,
		LogsEnabled:     true,
		ShutdownTimeout: 2 * time.Second,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"log format":       {"LOG_FORMAT": "xml"},
		"bool":             {"OTEL_TRACES_ENABLED": "maybe"},
		"shutdown timeout": {"SHUTDOWN_TIMEOUT": "soon"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(mapLookup(env)); err == nil {
				t.Fatalf("expected error for %v", env)
			}
		})
	}
}
