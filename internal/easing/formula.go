package easing

import "github.com/tanema/gween/ease"

// Formula maps elapsed time to an interpolated value. elapsed and duration
// are in milliseconds, start is the initial value and delta the total change.
type Formula func(elapsed, start, delta, duration float64) float64

const (
	NameLinear = "linear"
	NameSpring = "spring"
)

// Linear applies no easing and no acceleration.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// FromTween adapts a gween easing function. gween computes in float32, so
// results carry about seven significant digits.
func FromTween(f ease.TweenFunc) Formula {
	return func(t, b, c, d float64) float64 {
		return float64(f(float32(t), float32(b), float32(c), float32(d)))
	}
}

// builtins lists every formula a new Registry starts with.
func builtins() map[string]Formula {
	families := map[string][4]ease.TweenFunc{
		"Quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad, ease.OutInQuad},
		"Cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic, ease.OutInCubic},
		"Quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart, ease.OutInQuart},
		"Quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint, ease.OutInQuint},
		"Sine":    {ease.InSine, ease.OutSine, ease.InOutSine, ease.OutInSine},
		"Expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo, ease.OutInExpo},
		"Circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc, ease.OutInCirc},
		"Elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic, ease.OutInElastic},
		"Back":    {ease.InBack, ease.OutBack, ease.InOutBack, ease.OutInBack},
		"Bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce, ease.OutInBounce},
	}

	formulas := map[string]Formula{
		NameLinear: Linear,
		NameSpring: NewSpring(DefaultSpringFrequency, DefaultSpringDamping),
	}
	for family, fs := range families {
		formulas["easeIn"+family] = FromTween(fs[0])
		formulas["easeOut"+family] = FromTween(fs[1])
		formulas["easeInOut"+family] = FromTween(fs[2])
		formulas["easeOutIn"+family] = FromTween(fs[3])
	}
	return formulas
}
