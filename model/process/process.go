package process

import (
	"fmt"
	"time"
)

// Process represents one simulated unit of work
type Process struct {
	ID        int       `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Remaining int       `json:"remaining" yaml:"remaining"`
	Memory    int       `json:"memory" yaml:"memory"`
	Priority  int       `json:"priority" yaml:"priority"`
	Arrival   int       `json:"arrival" yaml:"arrival"`
	State     State     `json:"state" yaml:"state"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Attributes holds the generated, caller-policy part of a new process
type Attributes struct {
	Cycles   int
	Memory   int
	Priority int
}

// New creates a ready process
func New(id int, name string, arrival int, attrs Attributes, now time.Time) *Process {
	return &Process{
		ID:        id,
		Name:      name,
		Remaining: attrs.Cycles,
		Memory:    attrs.Memory,
		Priority:  attrs.Priority,
		Arrival:   arrival,
		State:     StateReady,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetState updates the process state
func (p *Process) SetState(state State, now time.Time) {
	p.State = state
	p.UpdatedAt = now
}

// Consume runs the process for a single cycle; it returns true once no work is left.
func (p *Process) Consume(now time.Time) bool {
	if p.Remaining > 0 {
		p.Remaining--
	}
	p.UpdatedAt = now
	if p.Remaining == 0 {
		p.State = StateFinished
		return true
	}
	return false
}

// Terminate forces the process into the finished state with no remaining work
func (p *Process) Terminate(now time.Time) {
	p.Remaining = 0
	p.SetState(StateFinished, now)
}

// Clone returns a detached copy
func (p *Process) Clone() *Process {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}

// CopyFrom copies mutable fields from other, identity is preserved
func (p *Process) CopyFrom(other *Process) {
	if other == nil {
		return
	}
	p.Name = other.Name
	p.Remaining = other.Remaining
	p.Memory = other.Memory
	p.Priority = other.Priority
	p.State = other.State
	p.UpdatedAt = other.UpdatedAt
}

// Status returns the compact state snapshot of the process
func (p *Process) Status() Status {
	return Status{ID: p.ID, State: p.State, Remaining: p.Remaining}
}

func (p *Process) String() string {
	return fmt.Sprintf("%d: %s, cpu: %d, mem: %d, prio: %d, state: %s", p.ID, p.Name, p.Remaining, p.Memory, p.Priority, p.State)
}

// Status is a point-in-time view of a process used by trace snapshots
type Status struct {
	ID        int   `json:"id"`
	State     State `json:"state"`
	Remaining int   `json:"remaining"`
}

func (s Status) String() string {
	return fmt.Sprintf("%d:%s(CPU=%d)", s.ID, s.State.Short(), s.Remaining)
}
