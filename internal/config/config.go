// Package config loads and validates service configuration from the
// environment and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds service configuration loaded from the environment.
type Config struct {
	// Port is the HTTP listen port.
	Port int `mapstructure:"PORT"`
	// DatabasePath is the SQLite file (or ":memory:").
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// Env is the application environment ("development", "production").
	Env string `mapstructure:"APP_ENV"`
	// ReportTopCategories caps the category distribution; 0 disables the cap.
	ReportTopCategories int `mapstructure:"REPORT_TOP_CATEGORIES"`
	// RiverMaxWorkers bounds concurrent notification jobs.
	RiverMaxWorkers int `mapstructure:"RIVER_MAX_WORKERS"`

	OTelServiceName    string `mapstructure:"OTEL_SERVICE_NAME"`
	OTelServiceVersion string `mapstructure:"OTEL_SERVICE_VERSION"`
	OTelEnvironment    string `mapstructure:"OTEL_ENVIRONMENT"`
	// OTelExporter is "stdout", "otlp" or "none".
	OTelExporter string `mapstructure:"OTEL_EXPORTER"`
	// OTelInsecure disables TLS for the otlp exporter.
	OTelInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment. Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("DATABASE_PATH", "localbook.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("REPORT_TOP_CATEGORIES", 6)
	v.SetDefault("RIVER_MAX_WORKERS", 2)
	v.SetDefault("OTEL_SERVICE_NAME", "localbook")
	v.SetDefault("OTEL_SERVICE_VERSION", "0.1.0")
	v.SetDefault("OTEL_ENVIRONMENT", "development")
	v.SetDefault("OTEL_EXPORTER", "stdout")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT must be between 1 and 65535, got %d", c.Port)
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("config: DATABASE_PATH must be set")
	}
	if c.ReportTopCategories < 0 {
		return errors.New("config: REPORT_TOP_CATEGORIES must not be negative")
	}
	if c.RiverMaxWorkers <= 0 {
		return errors.New("config: RIVER_MAX_WORKERS must be positive")
	}
	switch c.OTelExporter {
	case "stdout", "otlp", "none":
	default:
		return fmt.Errorf("config: OTEL_EXPORTER must be stdout, otlp or none, got %q", c.OTelExporter)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
