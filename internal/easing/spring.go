package easing

import "github.com/charmbracelet/harmonica"

const (
	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 0.5

	springFPS = 60
)

// NewSpring returns a Formula that follows a damped spring released from
// start toward start+delta. The spring is replayed frame by frame from rest
// at 60 fps, so the same elapsed time always yields the same value. duration
// does not shape the curve; an under-damped spring may still be moving when
// the tween ends and snaps to its target.
func NewSpring(frequency, damping float64) Formula {
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping)
	frameMs := 1000.0 / springFPS

	return func(t, b, c, d float64) float64 {
		frames := int(t / frameMs)
		pos, vel := b, 0.0
		target := b + c
		for i := 0; i < frames; i++ {
			pos, vel = spring.Update(pos, vel, target)
		}
		return pos
	}
}
