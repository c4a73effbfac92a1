package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the TWEENY_* overrides. Zero values mean unset.
type Env struct {
	FPS        int    `env:"TWEENY_FPS"`
	Easing     string `env:"TWEENY_EASING"`
	DurationMs int    `env:"TWEENY_DURATION_MS"`
	DataDir    string `env:"TWEENY_DATA_DIR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overrides the config fields that are set in e.
func (c *Config) ApplyEnv(e Env) {
	if e.FPS > 0 {
		c.FPS = e.FPS
	}
	if e.Easing != "" {
		c.Easing = e.Easing
	}
	if e.DurationMs > 0 {
		c.DurationMs = e.DurationMs
	}
}

func (e Env) DataDirOr(fallback string) string {
	if e.DataDir != "" {
		return e.DataDir
	}
	return fallback
}
