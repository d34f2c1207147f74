package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/golca/internal/classify"
	"github.com/alexiusacademia/golca/internal/lca"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GOLCA_ENV", "test")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Env != "test" || cfg.SpanMethod != "vertex" || cfg.ResultsReport != "EnvelopeSummary" {
			t.Errorf("Load() = %+v", cfg)
		}
		if cfg.IsDevelopment() || cfg.IsProduction() {
			t.Error("test env reported as development or production")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("GOLCA_ENV", "production")
		t.Setenv("GOLCA_LOG_LEVEL", "WARN")
		t.Setenv("GOLCA_RESULTS_PATH", "eplusout.sql")
		t.Setenv("GOLCA_SPAN_METHOD", "bbox")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !cfg.IsProduction() || cfg.LogLevel != "warn" || cfg.ResultsPath != "eplusout.sql" || cfg.SpanMethod != "bbox" {
			t.Errorf("Load() = %+v", cfg)
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("GOLCA_ENV", "test")
		t.Setenv("GOLCA_LOG_LEVEL", "loud")
		_, err := Load()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("invalid span method", func(t *testing.T) {
		t.Setenv("GOLCA_ENV", "test")
		t.Setenv("GOLCA_SPAN_METHOD", "hull")
		_, err := Load()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
		}
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Run("overlay", func(t *testing.T) {
		path := writeFile(t, `
compressive_strength: FC_4000_5000_PSI
reinforcement: REBAR_NO_5
sip_skin_allowance: 1.0
spray:
  urethane_high_density: 6.5
rigid_bands:
  - {min: 0.1, material: RIGID_EPS}
  - {min: 5, material: RIGID_XPS}
`)
		d, err := LoadDefaults(path)
		if err != nil {
			t.Fatalf("LoadDefaults() error = %v", err)
		}
		if d.CompressiveStrength != lca.Fc4000To5000 || d.Reinforcement != lca.RebarNo5 {
			t.Errorf("mass defaults = %v, %v", d.CompressiveStrength, d.Reinforcement)
		}
		if d.SIPSkinAllowance != 1.0 {
			t.Errorf("SIPSkinAllowance = %v", d.SIPSkinAllowance)
		}
		if d.Spray.UrethaneHighDensity != 6.5 || d.Spray.UrethaneLowDensity != 3.7 {
			t.Errorf("Spray = %+v", d.Spray)
		}
		if len(d.RigidBands) != 2 || d.RigidBands.Classify(4.8) != lca.RigidEPS {
			t.Errorf("RigidBands = %+v", d.RigidBands)
		}
		if d.ComplianceRPerInch != 5 || len(d.CavityBands) != 3 {
			t.Error("unset keys lost their built-in values")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeFile(t, "rigid_bands:\n  - {min: 5, material: RIGID_XPS}\n  - {min: 1, material: RIGID_EPS}\n")
		if _, err := LoadDefaults(path); err == nil {
			t.Error("LoadDefaults() accepted descending bands")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "sip_skin_allowance: [")
		if _, err := LoadDefaults(path); err == nil {
			t.Error("LoadDefaults() accepted malformed YAML")
		}
	})

	t.Run("no file configured", func(t *testing.T) {
		d, err := Config{}.Defaults()
		if err != nil {
			t.Fatal(err)
		}
		if d.SIPSkinAllowance != classify.NewDefaults().SIPSkinAllowance {
			t.Errorf("Defaults() = %+v", d)
		}
	})
}
