package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/tweeny/internal/tween"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.Easing != "linear" {
		t.Errorf("expected easing linear, got %s", cfg.Easing)
	}
	if cfg.Duration() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.Duration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Easing = "easeOutQuad"
	cfg.From = tween.Props{"x": 1}
	cfg.To = tween.Props{"x": 2}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Easing != "easeOutQuad" || loaded.To["x"] != 2 {
		t.Errorf("unexpected config %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "duration_ms: 250\nto:\n  x: 10\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != DefaultFPS || cfg.Easing != DefaultEasing {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
	if cfg.DurationMs != 250 || cfg.To["x"] != 10 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("fps: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"huge fps", func(c *Config) { c.FPS = 2_000_000_000 }},
		{"zero duration", func(c *Config) { c.DurationMs = 0 }},
		{"empty easing", func(c *Config) { c.Easing = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 60
	d := cfg.Defaults()

	if d.FPS != 60 || d.Easing != "linear" || d.Duration != 500*time.Millisecond {
		t.Errorf("unexpected defaults %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("defaults from a valid config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("slide")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.To["x"] != 320 {
		t.Errorf("expected x 320, got %v", cfg.To["x"])
	}

	cfg.To["x"] = 1
	if Presets["slide"].To["x"] != 320 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TWEENY_FPS", "60")
	t.Setenv("TWEENY_EASING", "easeInSine")
	t.Setenv("TWEENY_DURATION_MS", "900")
	t.Setenv("TWEENY_DATA_DIR", "/tmp/runs")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	cfg := DefaultConfig()
	cfg.ApplyEnv(e)
	if cfg.FPS != 60 || cfg.Easing != "easeInSine" || cfg.DurationMs != 900 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if e.DataDirOr(DefaultDataDir) != "/tmp/runs" {
		t.Errorf("unexpected data dir %s", e.DataDirOr(DefaultDataDir))
	}
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("TWEENY_FPS", "fast")

	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric fps")
	}
}

func TestApplyEnvUnsetKeepsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyEnv(Env{})

	if cfg.FPS != DefaultFPS || cfg.Easing != DefaultEasing || cfg.DurationMs != DefaultDurationMs {
		t.Errorf("empty env should not change config: %+v", cfg)
	}
	if (Env{}).DataDirOr("x") != "x" {
		t.Error("expected fallback data dir")
	}
}
