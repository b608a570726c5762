package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr           string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS" validate:"dive,url"`
	DefaultPageLimit   int           `mapstructure:"DEFAULT_PAGE_LIMIT" validate:"min=1,max=1000"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	MetricsPath        string        `mapstructure:"METRICS_PATH" validate:"required,startswith=/"`
	LogLevel           string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat          string        `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	BotToken           string        `mapstructure:"BOT_TOKEN"`
}

var defaults = map[string]any{
	"HTTP_ADDR":            "0.0.0.0:8000",
	"CORS_ALLOWED_ORIGINS": "http://localhost:3000",
	"DEFAULT_PAGE_LIMIT":   10,
	"SHUTDOWN_TIMEOUT":     "10s",
	"METRICS_PATH":         "/metrics",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"BOT_TOKEN":            "",
}

// Load reads configuration from environment variables.
// envFiles are loaded first; a missing file is ignored.
func Load(envFiles ...string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.CORSAllowedOrigins = splitList(cfg.CORSAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", envName(fe.StructField()), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
}

// BotEnabled reports whether the Telegram front-end should start
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

// splitList flattens comma-separated entries and drops blanks
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func envName(field string) string {
	switch field {
	case "HTTPAddr":
		return "HTTP_ADDR"
	case "CORSAllowedOrigins":
		return "CORS_ALLOWED_ORIGINS"
	case "DefaultPageLimit":
		return "DEFAULT_PAGE_LIMIT"
	case "ShutdownTimeout":
		return "SHUTDOWN_TIMEOUT"
	case "MetricsPath":
		return "METRICS_PATH"
	case "LogLevel":
		return "LOG_LEVEL"
	case "LogFormat":
		return "LOG_FORMAT"
	default:
		return field
	}
}
