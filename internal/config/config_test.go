package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"HTTP_ADDR", "CORS_ALLOWED_ORIGINS", "DEFAULT_PAGE_LIMIT", "SHUTDOWN_TIMEOUT",
	"METRICS_PATH", "LOG_LEVEL", "LOG_FORMAT", "BOT_TOKEN",
}

// clearEnv unsets keys for the duration of the test and restores them afterwards
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		original, ok := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.DefaultPageLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.BotEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://words.example.com")
	t.Setenv("DEFAULT_PAGE_LIMIT", "25")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://localhost:3000", "https://words.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 25, cfg.DefaultPageLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.BotEnabled())
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t, allKeys...)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:7000\nDEFAULT_PAGE_LIMIT=5\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("DEFAULT_PAGE_LIMIT")
	})

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, 5, cfg.DefaultPageLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{name: "zero page limit", key: "DEFAULT_PAGE_LIMIT", value: "0", expected: "DEFAULT_PAGE_LIMIT"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "loud", expected: "LOG_LEVEL"},
		{name: "bad origin", key: "CORS_ALLOWED_ORIGINS", value: "not a url", expected: "CORS_ALLOWED_ORIGINS"},
		{name: "metrics path without slash", key: "METRICS_PATH", value: "metrics", expected: "METRICS_PATH"},
		{name: "bad address", key: "HTTP_ADDR", value: "localhost", expected: "HTTP_ADDR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, allKeys...)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "single", input: []string{"a"}, expected: []string{"a"}},
		{name: "comma separated", input: []string{"a, b ,c"}, expected: []string{"a", "b", "c"}},
		{name: "blanks dropped", input: []string{" ", "a,,b"}, expected: []string{"a", "b"}},
		{name: "empty", input: nil, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitList(tt.input))
		})
	}
}
