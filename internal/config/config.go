package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/tweeny/internal/tween"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = tween.DefaultFPS
	DefaultEasing     = tween.DefaultEasing
	DefaultDurationMs = 500
	DefaultDataDir    = ".tweeny"
)

var ErrInvalidConfig = errors.New("config: invalid run config")

// Config describes one tween run.
type Config struct {
	FPS        int         `yaml:"fps"`
	Easing     string      `yaml:"easing"`
	DurationMs int         `yaml:"duration_ms"`
	From       tween.Props `yaml:"from"`
	To         tween.Props `yaml:"to"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:        DefaultFPS,
		Easing:     DefaultEasing,
		DurationMs: DefaultDurationMs,
		From:       tween.Props{},
		To:         tween.Props{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.FPS > tween.MaxFPS {
		return fmt.Errorf("%w: fps must be at most %d, got %d", ErrInvalidConfig, tween.MaxFPS, c.FPS)
	}
	if c.DurationMs <= 0 {
		return fmt.Errorf("%w: duration_ms must be positive, got %d", ErrInvalidConfig, c.DurationMs)
	}
	if c.Easing == "" {
		return fmt.Errorf("%w: easing is empty", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// Defaults returns the engine defaults this run asks for.
func (c *Config) Defaults() tween.Defaults {
	return tween.Defaults{
		FPS:      c.FPS,
		Easing:   c.Easing,
		Duration: c.Duration(),
	}
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.From = c.From.Clone()
	cp.To = c.To.Clone()
	return &cp
}
