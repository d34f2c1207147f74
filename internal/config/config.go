// Package config loads runtime configuration from the environment and the
// engineering defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/golca/internal/classify"
	"github.com/alexiusacademia/golca/internal/results"
)

// ErrInvalidConfig is wrapped by every environment validation error.
var ErrInvalidConfig = xerrors.Message("invalid configuration")

type Config struct {
	Env      string
	LogLevel string

	// Results store: an EnergyPlus SQLite file or a JSON entry list
	ResultsPath   string
	ResultsReport string

	DefaultsFile string
	SpanMethod   string
}

// Load loads configuration from environment variables. In development it
// first reads a .env file when one exists.
func Load() (Config, error) {
	if getEnv("GOLCA_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:           getEnv("GOLCA_ENV", "development"),
		LogLevel:      strings.ToLower(getEnv("GOLCA_LOG_LEVEL", "")),
		ResultsPath:   getEnv("GOLCA_RESULTS_PATH", ""),
		ResultsReport: getEnv("GOLCA_RESULTS_REPORT", results.EnvelopeSummary),
		DefaultsFile:  getEnv("GOLCA_DEFAULTS_FILE", ""),
		SpanMethod:    getEnv("GOLCA_SPAN_METHOD", "vertex"),
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return Config{}, xerrors.New(fmt.Sprintf("GOLCA_LOG_LEVEL must be debug, info, warn or error, got %q", cfg.LogLevel), ErrInvalidConfig)
	}
	switch cfg.SpanMethod {
	case "vertex", "bbox", "bounding-box":
	default:
		return Config{}, xerrors.New(fmt.Sprintf("GOLCA_SPAN_METHOD must be vertex or bbox, got %q", cfg.SpanMethod), ErrInvalidConfig)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Defaults returns the built-in engineering defaults overlaid with the
// configured defaults file, if any.
func (c Config) Defaults() (classify.Defaults, error) {
	if c.DefaultsFile == "" {
		return classify.NewDefaults(), nil
	}
	return LoadDefaults(c.DefaultsFile)
}

// LoadDefaults overlays the YAML file at path on the built-in defaults.
// Keys missing from the file keep their built-in values.
func LoadDefaults(path string) (classify.Defaults, error) {
	d := classify.NewDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return d, xerrors.New("reading defaults file", err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, xerrors.New("parsing defaults file", err)
	}
	if err := d.Validate(); err != nil {
		return d, xerrors.New(path, err)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
