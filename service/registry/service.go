package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/schedsim/internal/clock"
	"github.com/viant/schedsim/internal/ctxlog"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/dao/process/memory"
)

// Service is the process registry
type Service struct {
	processDAO  dao.Service[int, process.Process]
	generator   Generator
	mux         sync.Mutex
	nextID      int
	nextArrival int
}

// Create registers a new ready process named name
func (s *Service) Create(ctx context.Context, name string) (*process.Process, error) {
	attrs := s.generator.Generate(name)
	if attrs.Cycles < 1 {
		return nil, fmt.Errorf("generator produced non-positive cpu cycles %d for %q", attrs.Cycles, name)
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	aProcess := process.New(s.nextID, name, s.nextArrival, attrs, clock.Now())
	if err := s.processDAO.Save(ctx, aProcess); err != nil {
		return nil, fmt.Errorf("failed to save process: %w", err)
	}
	s.nextID++
	s.nextArrival++
	ctxlog.FromContext(ctx).Debug("process created", "pid", aProcess.ID, "name", name,
		"cycles", attrs.Cycles, "memory", attrs.Memory, "priority", attrs.Priority)
	return aProcess.Clone(), nil
}

// List returns copies of all processes ordered by ascending id, optionally filtered by state
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*process.Process, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	processes, err := s.processDAO.List(ctx, parameters...)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	ret := make([]*process.Process, 0, len(processes))
	for _, p := range processes {
		ret = append(ret, p.Clone())
	}
	return ret, nil
}

// Lookup returns a copy of the process with the given id
func (s *Service) Lookup(ctx context.Context, pid int) (*process.Process, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	aProcess, err := s.load(ctx, pid)
	if err != nil {
		return nil, err
	}
	return aProcess.Clone(), nil
}

// Block moves a ready or running process to blocked
func (s *Service) Block(ctx context.Context, pid int) (*process.Process, error) {
	return s.transition(ctx, pid, "block", func(p *process.Process) bool {
		if p.State == process.StateBlocked || p.State.IsTerminal() {
			return false
		}
		p.SetState(process.StateBlocked, clock.Now())
		return true
	})
}

// Unblock moves a blocked process back to ready
func (s *Service) Unblock(ctx context.Context, pid int) (*process.Process, error) {
	return s.transition(ctx, pid, "unblock", func(p *process.Process) bool {
		if p.State != process.StateBlocked {
			return false
		}
		p.SetState(process.StateReady, clock.Now())
		return true
	})
}

// Kill forces any non-finished process to finished with no remaining cycles
func (s *Service) Kill(ctx context.Context, pid int) (*process.Process, error) {
	return s.transition(ctx, pid, "kill", func(p *process.Process) bool {
		if p.State.IsTerminal() {
			return false
		}
		p.Terminate(clock.Now())
		return true
	})
}

// Update runs fn under the registry lock with the live processes ordered by id.
// Changes made by fn are saved back to the store.
func (s *Service) Update(ctx context.Context, fn func(processes []*process.Process) error) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	processes, err := s.processDAO.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}
	if err = fn(processes); err != nil {
		return err
	}
	for _, p := range processes {
		if err = s.processDAO.Save(ctx, p); err != nil {
			return fmt.Errorf("failed to save process %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *Service) transition(ctx context.Context, pid int, op string, apply func(p *process.Process) bool) (*process.Process, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	aProcess, err := s.load(ctx, pid)
	if err != nil {
		return nil, err
	}
	from := aProcess.State
	if !apply(aProcess) {
		return nil, &TransitionError{PID: pid, Op: op, From: from}
	}
	if err = s.processDAO.Save(ctx, aProcess); err != nil {
		return nil, fmt.Errorf("failed to save process %d: %w", pid, err)
	}
	ctxlog.FromContext(ctx).Debug("process state changed", "pid", pid, "op", op, "from", from, "to", aProcess.State)
	return aProcess.Clone(), nil
}

func (s *Service) load(ctx context.Context, pid int) (*process.Process, error) {
	aProcess, err := s.processDAO.Load(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("process %d: %w", pid, ErrNotFound)
	}
	return aProcess, nil
}

// New creates an empty registry; ids and arrival numbers start at 1.
func New(options ...Option) *Service {
	ret := &Service{nextID: 1, nextArrival: 1}
	for _, opt := range options {
		opt(ret)
	}
	if ret.processDAO == nil {
		ret.processDAO = memory.New()
	}
	if ret.generator == nil {
		ret.generator, _ = NewRandom(DefaultRanges(), 0)
	}
	return ret
}
