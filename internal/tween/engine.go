package tween

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/san-kum/tweeny/internal/clock"
	"github.com/san-kum/tweeny/internal/easing"
)

// Engine creates sessions. It is safe for concurrent use.
type Engine struct {
	mu       sync.RWMutex
	defaults Defaults
	registry *easing.Registry
	clock    clock.Clock
	sched    clock.Scheduler
	logger   *log.Logger
}

type EngineOption func(*Engine)

// WithDefaults sets the engine defaults. Unset or non-positive fields keep
// their standard values.
func WithDefaults(d Defaults) EngineOption {
	return func(e *Engine) { e.defaults = d.withFallbacks() }
}

// WithRegistry sets the formula registry. A nil registry is ignored.
func WithRegistry(r *easing.Registry) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

func WithClock(c clock.Clock) EngineOption {
	return func(e *Engine) { e.clock = c }
}

func WithScheduler(s clock.Scheduler) EngineOption {
	return func(e *Engine) { e.sched = s }
}

func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns an engine on the system clock with the standard
// defaults, a fresh formula registry and a silent logger.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		defaults: StandardDefaults(),
		registry: easing.NewRegistry(),
		clock:    clock.System{},
		sched:    clock.System{},
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Defaults() Defaults {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.defaults
}

// SetDefaults replaces the defaults used by sessions created afterward.
func (e *Engine) SetDefaults(d Defaults) error {
	if err := d.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.defaults = d
	return nil
}

func (e *Engine) Registry() *easing.Registry {
	return e.registry
}

// Options configures a session started by TweenWithOptions.
type Options struct {
	// Subject is mutated in place. nil starts from an empty set.
	Subject Props
	Target  Props
	// Duration <= 0 uses the engine default.
	Duration time.Duration
	// Easing names a registered formula. Empty uses the engine default and
	// unknown names fall back to linear.
	Easing     string
	OnStep     func(subject Props)
	OnComplete func(subject Props)
}

// Tween starts a session moving subject toward target. A zero duration or
// an empty easing name takes the engine default.
func (e *Engine) Tween(subject, target Props, duration time.Duration, easingName string) *Session {
	return e.TweenWithOptions(Options{
		Subject:  subject,
		Target:   target,
		Duration: duration,
		Easing:   easingName,
	})
}

// TweenWithOptions starts a session from opts. The first tick is scheduled
// before it returns.
func (e *Engine) TweenWithOptions(opts Options) *Session {
	d := e.Defaults()

	if opts.Subject == nil {
		opts.Subject = Props{}
	}
	if opts.Target == nil {
		opts.Target = Props{}
	}
	if opts.Duration <= 0 {
		opts.Duration = d.Duration
	}
	if opts.Easing == "" {
		opts.Easing = d.Easing
	}
	if opts.OnStep == nil {
		opts.OnStep = func(Props) {}
	}
	if opts.OnComplete == nil {
		opts.OnComplete = func(Props) {}
	}

	formula, ok := e.registry.Lookup(opts.Easing)
	if !ok {
		e.logger.Printf("unknown easing %q, using %s", opts.Easing, easing.NameLinear)
		formula = easing.Linear
	}

	s := &Session{
		subject:    opts.Subject,
		snapshot:   opts.Subject.Clone(),
		target:     opts.Target,
		duration:   opts.Duration,
		formula:    formula,
		interval:   d.Interval(),
		clock:      e.clock,
		sched:      e.sched,
		onStep:     opts.OnStep,
		onComplete: opts.OnComplete,
		logger:     e.logger,
		done:       make(chan struct{}),
	}
	s.begin(opts.Easing)
	return s
}

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine() })

// DefaultEngine returns the process-wide engine used by Tween and
// TweenWithOptions.
func DefaultEngine() *Engine {
	return defaultEngine()
}

func Tween(subject, target Props, duration time.Duration, easingName string) *Session {
	return DefaultEngine().Tween(subject, target, duration, easingName)
}

func TweenWithOptions(opts Options) *Session {
	return DefaultEngine().TweenWithOptions(opts)
}
