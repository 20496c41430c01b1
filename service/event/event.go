package event

import (
	"time"

	"github.com/viant/schedsim/internal/clock"
	"github.com/viant/schedsim/model/process"
)

// Kind identifies what happened in a simulation run
type Kind string

const (
	KindStart    Kind = "start"    // run accepted, before the first decision point
	KindDispatch Kind = "dispatch" // process selected for a slot
	KindStep     Kind = "step"     // one cycle executed
	KindPreempt  Kind = "preempt"  // quantum exhausted, process returned to the queue tail
	KindSkip     Kind = "skip"     // stale rotation queue head discarded
	KindFinish   Kind = "finish"   // process ran out of work
	KindIdle     Kind = "idle"     // decision point without a candidate
	KindComplete Kind = "complete" // run ended
)

// Context identifies the run an event belongs to
type Context struct {
	RunID     string `json:"runID"`
	Algorithm string `json:"algorithm"`
}

// Event is a structured trace record emitted by the scheduler
type Event struct {
	Context   *Context         `json:"context"`
	Kind      Kind             `json:"kind"`
	Cycle     int              `json:"cycle"`
	Dispatch  int              `json:"dispatch,omitempty"`
	PID       int              `json:"pid,omitempty"`
	Name      string           `json:"name,omitempty"`
	Remaining int              `json:"remaining"`
	State     process.State    `json:"state,omitempty"`
	Snapshot  []process.Status `json:"snapshot,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewEvent creates an event of the given kind
func NewEvent(context *Context, kind Kind, cycle int) *Event {
	return &Event{
		Context:   context,
		Kind:      kind,
		Cycle:     cycle,
		CreatedAt: clock.Now(),
	}
}

// WithProcess copies the identifying fields of p onto the event
func (e *Event) WithProcess(p *process.Process) *Event {
	if p == nil {
		return e
	}
	e.PID = p.ID
	e.Name = p.Name
	e.Remaining = p.Remaining
	e.State = p.State
	return e
}
