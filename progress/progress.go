package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/schedsim/internal/clock"
)

// Delta represents an incremental counter change emitted by the scheduler.
type Delta struct {
	Dispatched int
	Cycles     int
	Preempted  int
	Finished   int
	Skipped    int
	Idle       int
}

// Counters is a read-only view of the tracker.
type Counters struct {
	RunID     string
	Algorithm string
	StartedAt time.Time

	Dispatched int
	Cycles     int
	Preempted  int
	Finished   int
	Skipped    int
	Idle       int
}

// Progress keeps aggregated counters for one run. It is safe for concurrent use.
type Progress struct {
	counters Counters
	mux      sync.Mutex
	onChange func(Counters)
}

// Update applies the supplied delta. The onChange callback, if any, is
// invoked with a copy of the counters outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.counters.Dispatched += d.Dispatched
	p.counters.Cycles += d.Cycles
	p.counters.Preempted += d.Preempted
	p.counters.Finished += d.Finished
	p.counters.Skipped += d.Skipped
	p.counters.Idle += d.Idle
	snapshot := p.counters
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters.
func (p *Progress) Snapshot() Counters {
	if p == nil {
		return Counters{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.counters
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables the callback.
func (p *Progress) OnChange(cb func(Counters)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, runID, algorithm string, onChange func(Counters)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		counters: Counters{RunID: runID, Algorithm: algorithm, StartedAt: clock.Now()},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
