// Package tween moves a set of numeric properties toward target values over
// time.
//
// An [Engine] holds the defaults (frame rate, easing and duration), the
// formula registry and the clock and scheduler that drive ticks. Each call to
// [Engine.Tween] or [Engine.TweenWithOptions] starts a [Session]:
//
//	subject := tween.Props{"x": 0}
//	s := engine.Tween(subject, tween.Props{"x": 100}, 200*time.Millisecond, "easeOutQuad")
//	<-s.Done()
//	// subject["x"] == 100
//
// Every tick the session writes eased values into the subject for each key
// present in both the subject and the target, then calls the step callback.
// Once the duration has elapsed it snaps the subject to the target and calls
// the completion callback. [Session.Stop] ends a session early.
//
// # Thread Safety
//
// A Session serializes its own ticks and Stop calls. With [clock.System]
// ticks run on timer goroutines, so code outside the callbacks should read
// the subject through [Session.Snapshot] rather than the live map.
package tween
