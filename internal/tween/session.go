package tween

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/san-kum/tweeny/internal/clock"
	"github.com/san-kum/tweeny/internal/easing"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session is one tween in flight. It cannot be restarted once stopped.
type Session struct {
	mu sync.Mutex

	subject  Props
	snapshot Props
	target   Props

	duration time.Duration
	formula  easing.Formula
	interval time.Duration
	start    time.Time
	end      time.Time

	clock   clock.Clock
	sched   clock.Scheduler
	pending clock.Timer

	state     State
	completed bool

	onStep     func(Props)
	onComplete func(Props)
	logger     *log.Logger
	done       chan struct{}
}

func (s *Session) begin(easingName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = s.clock.Now()
	s.pending = s.sched.AfterFunc(s.interval, s.tick)
	s.logger.Printf("session start: %d props, %v, %s", len(s.subject), s.duration, easingName)
}

func (s *Session) tick() {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}

	elapsed := s.clock.Now().Sub(s.start)
	if elapsed >= s.duration {
		s.mu.Unlock()
		s.Stop(true)
		return
	}

	s.interpolate(elapsed)
	s.mu.Unlock()

	s.onStep(s.subject)

	s.mu.Lock()
	if s.state == Running {
		s.pending = s.sched.AfterFunc(s.interval, s.tick)
	}
	s.mu.Unlock()
}

// interpolate must be called with s.mu held.
func (s *Session) interpolate(elapsed time.Duration) {
	t := millis(elapsed)
	d := millis(s.duration)
	for k := range s.subject {
		to, ok := s.target[k]
		if !ok {
			continue
		}
		from := s.snapshot[k]
		s.subject[k] = s.formula(t, from, to-from, d)
	}
}

// Stop cancels the pending tick and ends the session. With snapToEnd the
// subject takes every target value and the completion callback runs. Only
// the first call has an effect; it is safe to call from within callbacks.
func (s *Session) Stop(snapToEnd bool) {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	if s.state == Stopped {
		s.mu.Unlock()
		return
	}
	s.state = Stopped
	s.end = s.clock.Now()
	if snapToEnd {
		s.subject.CopyFrom(s.target)
		s.completed = true
	}
	s.logger.Printf("session stop: completed=%t after %v", snapToEnd, s.end.Sub(s.start))
	s.mu.Unlock()

	if snapToEnd {
		s.onComplete(s.subject)
	}
	close(s.done)
}

// Get returns the live subject, not a copy.
func (s *Session) Get() Props {
	return s.subject
}

// Snapshot returns a copy of the subject taken between ticks.
func (s *Session) Snapshot() Props {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject.Clone()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed once the session has stopped and any completion callback
// has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Progress reports the elapsed fraction of the duration in [0, 1]. A session
// stopped without snapping keeps the fraction it had reached.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return 1
	}
	now := s.end
	if s.state == Running {
		now = s.clock.Now()
	}
	p := float64(now.Sub(s.start)) / float64(s.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Completed reports whether the session ended on its target, either by
// running out its duration or through Stop(true).
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *Session) Duration() time.Duration {
	return s.duration
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
