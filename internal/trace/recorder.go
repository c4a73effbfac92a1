// Package trace records the values a session passes through.
package trace

import (
	"sort"
	"sync"
	"time"

	"github.com/san-kum/tweeny/internal/clock"
	"github.com/san-kum/tweeny/internal/tween"
)

// Frame is the subject as observed at one tick.
type Frame struct {
	Elapsed time.Duration
	Values  tween.Props
}

// Recorder collects frames. Its Observe method fits Options.OnStep and
// Options.OnComplete.
type Recorder struct {
	mu     sync.Mutex
	clock  clock.Clock
	start  time.Time
	frames []Frame
}

func NewRecorder(clk clock.Clock) *Recorder {
	return &Recorder{clock: clk, frames: make([]Frame, 0, 64)}
}

// Start resets the recorder and marks time zero.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start = r.clock.Now()
	r.frames = r.frames[:0]
}

func (r *Recorder) Observe(subject tween.Props) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame{
		Elapsed: r.clock.Now().Sub(r.start),
		Values:  subject.Clone(),
	})
}

func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Keys returns every property name seen in any frame, sorted.
func (r *Recorder) Keys() []string {
	return Keys(r.Frames())
}

// Series returns the values of one property across frames. Frames that lack
// the property repeat the previous value.
func (r *Recorder) Series(key string) []float64 {
	return Series(r.Frames(), key)
}

func Keys(frames []Frame) []string {
	seen := make(map[string]struct{})
	for _, f := range frames {
		for k := range f.Values {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Series(frames []Frame, key string) []float64 {
	out := make([]float64, 0, len(frames))
	last := 0.0
	for _, f := range frames {
		if v, ok := f.Values[key]; ok {
			last = v
		}
		out = append(out, last)
	}
	return out
}
