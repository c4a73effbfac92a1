package tween

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tweeny/internal/clock"
)

var _ = Describe("Session", func() {
	var (
		clk       *clock.Manual
		engine    *Engine
		steps     int
		completes int
		subject   Props
		target    Props
	)

	start := func(easingName string, duration time.Duration) *Session {
		return engine.TweenWithOptions(Options{
			Subject:    subject,
			Target:     target,
			Duration:   duration,
			Easing:     easingName,
			OnStep:     func(Props) { steps++ },
			OnComplete: func(Props) { completes++ },
		})
	}

	BeforeEach(func() {
		clk = clock.NewManual(epoch)
		engine = NewEngine(
			WithClock(clk),
			WithScheduler(clk),
			WithDefaults(Defaults{FPS: 100, Easing: "linear", Duration: 100 * time.Millisecond}),
		)
		steps, completes = 0, 0
		subject = Props{"x": 0}
		target = Props{"x": 100}
	})

	Context("when the duration elapses", func() {
		It("lands exactly on the target and completes once", func() {
			s := start("linear", 100*time.Millisecond)
			clk.Advance(time.Second)

			Expect(subject["x"]).To(Equal(100.0))
			Expect(completes).To(Equal(1))
			Expect(s.State()).To(Equal(Stopped))
			Expect(s.Done()).To(BeClosed())
			Expect(s.Progress()).To(Equal(1.0))
			Expect(s.Completed()).To(BeTrue())
			Expect(clk.Pending()).To(BeZero())
		})

		It("steps once per frame before the end", func() {
			start("linear", 100*time.Millisecond)
			clk.Advance(time.Second)

			Expect(steps).To(Equal(9))
		})

		It("works at the standard frame rate", func() {
			engine = NewEngine(WithClock(clk), WithScheduler(clk))
			start("linear", 100*time.Millisecond)
			clk.Advance(time.Second)

			Expect(subject["x"]).To(Equal(100.0))
			Expect(steps).To(Equal(3))
			Expect(completes).To(Equal(1))
		})

		It("lands on the target for every easing", func() {
			for _, name := range engine.Registry().Names() {
				subject = Props{"x": 3}
				target = Props{"x": -7}
				start(name, 250*time.Millisecond)
				clk.Advance(time.Second)
				Expect(subject["x"]).To(Equal(-7.0), name)
			}
		})
	})

	Context("with linear easing", func() {
		It("is halfway at half the duration", func() {
			s := start("linear", 100*time.Millisecond)
			clk.Advance(50 * time.Millisecond)

			Expect(subject["x"]).To(BeNumerically("~", 50, 1e-9))
			Expect(s.Progress()).To(BeNumerically("~", 0.5, 1e-9))
		})

		It("interpolates from the initial snapshot, not the live value", func() {
			start("linear", 100*time.Millisecond)
			clk.Advance(10 * time.Millisecond)
			subject["x"] = 999

			clk.Advance(10 * time.Millisecond)
			Expect(subject["x"]).To(BeNumerically("~", 20, 1e-9))
		})
	})

	Context("when stopped without snapping", func() {
		It("freezes the subject and never completes", func() {
			s := start("linear", 100*time.Millisecond)
			clk.Advance(50 * time.Millisecond)
			s.Stop(false)
			frozen := subject.Clone()

			clk.Advance(time.Second)

			Expect(subject).To(Equal(frozen))
			Expect(subject["x"]).To(BeNumerically("~", 50, 1e-9))
			Expect(completes).To(BeZero())
			Expect(s.Completed()).To(BeFalse())
			Expect(s.State()).To(Equal(Stopped))
			Expect(s.Done()).To(BeClosed())
			Expect(s.Progress()).To(BeNumerically("~", 0.5, 1e-9))
			Expect(clk.Pending()).To(BeZero())
		})
	})

	Context("when stopped with snapping", func() {
		It("copies every target property and completes once", func() {
			subject = Props{"x": 0, "only_subject": 5}
			target = Props{"x": 100, "only_target": 9}
			s := start("linear", 100*time.Millisecond)
			clk.Advance(30 * time.Millisecond)

			s.Stop(true)

			Expect(subject).To(Equal(Props{"x": 100, "only_subject": 5, "only_target": 9}))
			Expect(completes).To(Equal(1))
		})
	})

	Context("when Stop is called twice", func() {
		It("completes only once", func() {
			s := start("linear", 100*time.Millisecond)
			s.Stop(true)
			s.Stop(true)

			Expect(completes).To(Equal(1))
			Expect(subject["x"]).To(Equal(100.0))
		})

		It("keeps the first outcome", func() {
			s := start("linear", 100*time.Millisecond)
			clk.Advance(20 * time.Millisecond)
			s.Stop(false)
			s.Stop(true)

			Expect(completes).To(BeZero())
			Expect(subject["x"]).To(BeNumerically("~", 20, 1e-9))
		})

		It("tolerates a stop after natural expiry", func() {
			s := start("linear", 100*time.Millisecond)
			clk.Advance(time.Second)
			s.Stop(true)

			Expect(completes).To(Equal(1))
		})
	})

	Context("with properties on one side only", func() {
		It("leaves them alone during ticks", func() {
			subject = Props{"x": 0, "only_subject": 5}
			target = Props{"x": 100, "only_target": 9}
			start("linear", 100*time.Millisecond)
			clk.Advance(50 * time.Millisecond)

			Expect(subject["only_subject"]).To(Equal(5.0))
			Expect(subject).NotTo(HaveKey("only_target"))
		})

		It("adds target-only properties on completion", func() {
			subject = Props{"x": 0}
			target = Props{"x": 100, "only_target": 9}
			start("linear", 100*time.Millisecond)
			clk.Advance(time.Second)

			Expect(subject).To(HaveKeyWithValue("only_target", 9.0))
		})
	})

	Context("with an unregistered easing name", func() {
		It("matches linear tick for tick", func() {
			bogusSubject := Props{"x": 0}
			linearSubject := Props{"x": 0}
			engine.Tween(bogusSubject, Props{"x": 100}, 100*time.Millisecond, "bogus")
			engine.Tween(linearSubject, Props{"x": 100}, 100*time.Millisecond, "linear")

			for i := 0; i < 12; i++ {
				clk.Advance(10 * time.Millisecond)
				Expect(bogusSubject).To(Equal(linearSubject))
			}
		})
	})

	Context("when callbacks stop the session", func() {
		It("allows Stop from the step callback", func() {
			var s *Session
			s = engine.TweenWithOptions(Options{
				Subject:    subject,
				Target:     target,
				Duration:   100 * time.Millisecond,
				OnStep:     func(Props) { steps++; s.Stop(false) },
				OnComplete: func(Props) { completes++ },
			})
			clk.Advance(time.Second)

			Expect(steps).To(Equal(1))
			Expect(completes).To(BeZero())
			Expect(subject["x"]).To(BeNumerically("~", 10, 1e-9))
			Expect(clk.Pending()).To(BeZero())
		})

		It("allows Stop from the completion callback", func() {
			var s *Session
			s = engine.TweenWithOptions(Options{
				Subject:    subject,
				Target:     target,
				Duration:   100 * time.Millisecond,
				OnComplete: func(Props) { completes++; s.Stop(true) },
			})
			clk.Advance(time.Second)

			Expect(completes).To(Equal(1))
			Expect(s.Done()).To(BeClosed())
		})
	})

	It("passes the live subject to callbacks", func() {
		var seen Props
		s := engine.TweenWithOptions(Options{
			Subject:    subject,
			Target:     target,
			OnComplete: func(p Props) { seen = p },
		})
		clk.Advance(time.Second)

		seen["marker"] = 1
		Expect(s.Get()).To(HaveKey("marker"))
	})

	It("returns copies from Snapshot", func() {
		s := start("linear", 100*time.Millisecond)
		snap := s.Snapshot()
		snap["x"] = 42

		Expect(s.Get()["x"]).To(Equal(0.0))
	})
})
