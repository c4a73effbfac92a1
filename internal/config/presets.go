package config

import (
	"sort"

	"github.com/san-kum/tweeny/internal/tween"
)

var Presets = map[string]*Config{
	"fade-in": {
		FPS: 30, Easing: "easeInQuad", DurationMs: 400,
		From: tween.Props{"opacity": 0}, To: tween.Props{"opacity": 1},
	},
	"slide": {
		FPS: 60, Easing: "easeInOutCubic", DurationMs: 800,
		From: tween.Props{"x": 0, "y": 0}, To: tween.Props{"x": 320, "y": 40},
	},
	"bounce-drop": {
		FPS: 60, Easing: "easeOutBounce", DurationMs: 1200,
		From: tween.Props{"y": 0}, To: tween.Props{"y": 100},
	},
	"spring-pop": {
		FPS: 60, Easing: "spring", DurationMs: 1500,
		From: tween.Props{"scale": 0.2}, To: tween.Props{"scale": 1},
	},
	"overshoot": {
		FPS: 30, Easing: "easeOutBack", DurationMs: 600,
		From: tween.Props{"x": 0, "rotation": 0}, To: tween.Props{"x": 50, "rotation": 90},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
