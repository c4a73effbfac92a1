package tween

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/tweeny/internal/easing"
)

const (
	DefaultFPS      = 30
	DefaultEasing   = easing.NameLinear
	DefaultDuration = 500 * time.Millisecond

	// MaxFPS keeps the tick interval at one millisecond or more.
	MaxFPS = 1000
)

var ErrInvalidDefaults = errors.New("tween: invalid defaults")

// Defaults are copied into every session when it is created. Changing them
// never affects a session already running.
type Defaults struct {
	FPS      int
	Easing   string
	Duration time.Duration
}

func StandardDefaults() Defaults {
	return Defaults{
		FPS:      DefaultFPS,
		Easing:   DefaultEasing,
		Duration: DefaultDuration,
	}
}

func (d Defaults) Validate() error {
	if d.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidDefaults, d.FPS)
	}
	if d.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be at most %d, got %d", ErrInvalidDefaults, MaxFPS, d.FPS)
	}
	if d.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidDefaults, d.Duration)
	}
	if d.Easing == "" {
		return fmt.Errorf("%w: easing name is empty", ErrInvalidDefaults)
	}
	return nil
}

// Interval is the time between two ticks.
func (d Defaults) Interval() time.Duration {
	return time.Second / time.Duration(d.FPS)
}

// withFallbacks replaces unset or invalid fields with the standard values.
func (d Defaults) withFallbacks() Defaults {
	std := StandardDefaults()
	if d.FPS <= 0 || d.FPS > MaxFPS {
		d.FPS = std.FPS
	}
	if d.Duration <= 0 {
		d.Duration = std.Duration
	}
	if d.Easing == "" {
		d.Easing = std.Easing
	}
	return d
}
