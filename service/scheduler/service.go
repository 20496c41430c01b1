package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/viant/schedsim/internal/clock"
	"github.com/viant/schedsim/internal/ctxlog"
	"github.com/viant/schedsim/internal/idgen"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/progress"
	"github.com/viant/schedsim/service/event"
	"github.com/viant/schedsim/tracing"
)

// Config represents scheduler configuration
type Config struct {
	// Quantum is the round-robin time slice in cycles
	Quantum int
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{Quantum: DefaultQuantum}
}

// Registry is the process store the scheduler drives
type Registry interface {
	// Update runs fn with the live processes ordered by id under the registry lock
	Update(ctx context.Context, fn func(processes []*process.Process) error) error
}

// Service is the scheduling engine
type Service struct {
	config     Config
	registry   Registry
	listeners  []event.Listener
	onProgress func(progress.Counters)
	running    atomic.Bool
}

// run holds the state of one simulation
type run struct {
	context   *event.Context
	policy    policy
	publisher *event.Publisher
	report    *Report
	cycle     int
}

// Run executes the named algorithm until no ready or running process remains.
// Extra listeners receive this run's events after the ones configured on the service.
func (s *Service) Run(ctx context.Context, name string, listeners ...event.Listener) (report *Report, err error) {
	algorithm, err := Parse(name)
	if err != nil {
		return nil, err
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer s.running.Store(false)

	runID := idgen.New()
	ctx, span := tracing.StartSpan(ctx, "scheduler.Run")
	span.WithAttributes(map[string]string{"run.id": runID, "algorithm": algorithm.String()})
	defer func() { tracing.EndSpan(span, err) }()
	ctx, tracker := progress.WithNewTracker(ctx, runID, algorithm.String(), s.onProgress)

	r := &run{
		context:   &event.Context{RunID: runID, Algorithm: algorithm.String()},
		policy:    newPolicy(algorithm, s.config.Quantum),
		publisher: event.NewPublisher(append(append([]event.Listener{}, s.listeners...), listeners...)...),
		report:    newReport(runID, algorithm, s.config.Quantum),
	}
	logger := ctxlog.FromContext(ctx).With("run", runID, "algorithm", algorithm)
	logger.Debug("run started")

	if err = s.registry.Update(ctx, func(processes []*process.Process) error {
		r.policy.start(processes)
		r.report.admit(processes, 0)
		return nil
	}); err != nil {
		return nil, err
	}
	r.publisher.Publish(event.NewEvent(r.context, event.KindStart, 0))

	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		selected, slot, done, err := s.decide(ctx, r)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if err = s.dispatch(ctx, r, selected, slot); err != nil {
			return nil, err
		}
	}

	r.report.Counters = tracker.Snapshot()
	r.report.summarize()
	r.publisher.Publish(event.NewEvent(r.context, event.KindComplete, r.cycle))
	span.WithInt("cycles", r.cycle).WithInt("dispatches", r.report.Dispatches)
	logger.Debug("run completed", "cycles", r.cycle, "dispatches", r.report.Dispatches, "preemptions", r.report.Preemptions)
	return r.report, nil
}

// decide picks the next process; done is set once nothing can make progress
func (s *Service) decide(ctx context.Context, r *run) (selected *process.Process, slot int, done bool, err error) {
	var skipped []*event.Event
	var idle *event.Event
	err = s.registry.Update(ctx, func(processes []*process.Process) error {
		if !anyRunnable(processes) {
			if anyBlocked(processes) {
				idle = event.NewEvent(r.context, event.KindIdle, r.cycle)
			}
			done = true
			return nil
		}
		r.report.admit(processes, r.cycle)
		candidate, length, stale := r.policy.next(processes)
		for _, pid := range stale {
			e := event.NewEvent(r.context, event.KindSkip, r.cycle)
			e.PID = pid
			skipped = append(skipped, e)
		}
		if candidate == nil {
			idle = event.NewEvent(r.context, event.KindIdle, r.cycle)
			done = true
			return nil
		}
		selected, slot = candidate.Clone(), length
		return nil
	})
	if err != nil {
		return nil, 0, false, err
	}
	for _, e := range skipped {
		progress.UpdateCtx(ctx, progress.Delta{Skipped: 1})
		r.publisher.Publish(e)
	}
	if idle != nil {
		progress.UpdateCtx(ctx, progress.Delta{Idle: 1})
		r.publisher.Publish(idle)
	}
	return selected, slot, done, nil
}

// dispatch runs selected for up to slot cycles
func (s *Service) dispatch(ctx context.Context, r *run, selected *process.Process, slot int) (err error) {
	ctx, span := tracing.StartSpan(ctx, "scheduler.dispatch")
	span.WithAttributes(map[string]string{"pid": strconv.Itoa(selected.ID), "name": selected.Name}).WithInt("slot", slot)
	defer func() { tracing.EndSpan(span, err) }()

	r.report.dispatched(selected.ID)
	progress.UpdateCtx(ctx, progress.Delta{Dispatched: 1})
	dispatched := event.NewEvent(r.context, event.KindDispatch, r.cycle).WithProcess(selected)
	dispatched.Dispatch = r.report.Dispatches
	r.publisher.Publish(dispatched)

	for used := 0; used < slot; used++ {
		if err = ctx.Err(); err != nil {
			s.release(context.WithoutCancel(ctx), r, selected.ID)
			return err
		}
		step, finished, ok, err := s.step(ctx, r, selected.ID)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		progress.UpdateCtx(ctx, progress.Delta{Cycles: 1})
		span.AddEvent("step", map[string]int{"cycle": step.Cycle, "remaining": step.Remaining})
		r.publisher.Publish(step)
		if finished {
			progress.UpdateCtx(ctx, progress.Delta{Finished: 1})
			r.publisher.Publish(event.NewEvent(r.context, event.KindFinish, r.cycle).WithProcess(&process.Process{
				ID: selected.ID, Name: selected.Name, State: process.StateFinished,
			}))
			break
		}
	}
	return s.release(ctx, r, selected.ID)
}

// step executes one cycle of pid; ok is false when pid is no longer runnable
func (s *Service) step(ctx context.Context, r *run, pid int) (step *event.Event, finished, ok bool, err error) {
	err = s.registry.Update(ctx, func(processes []*process.Process) error {
		p := find(processes, pid)
		if p == nil || !p.State.IsRunnable() {
			return nil
		}
		now := clock.Now()
		p.SetState(process.StateRunning, now)
		r.cycle++
		finished = p.Consume(now)
		ok = true
		r.report.executed(pid, r.cycle, finished)
		step = event.NewEvent(r.context, event.KindStep, r.cycle).WithProcess(p)
		step.Dispatch = r.report.Dispatches
		step.Snapshot = snapshot(processes)
		return nil
	})
	if err != nil {
		return nil, false, false, fmt.Errorf("failed to execute cycle %d of process %d: %w", r.cycle+1, pid, err)
	}
	return step, finished, ok, nil
}

// release ends the slot of pid, returning an unfinished running process to ready
func (s *Service) release(ctx context.Context, r *run, pid int) error {
	var preempted *event.Event
	err := s.registry.Update(ctx, func(processes []*process.Process) error {
		p := find(processes, pid)
		if p == nil {
			return nil
		}
		if p.State == process.StateRunning {
			p.SetState(process.StateReady, clock.Now())
			preempted = event.NewEvent(r.context, event.KindPreempt, r.cycle).WithProcess(p)
		}
		r.policy.release(p)
		return nil
	})
	if err != nil {
		return err
	}
	if preempted != nil {
		r.report.Preemptions++
		progress.UpdateCtx(ctx, progress.Delta{Preempted: 1})
		r.publisher.Publish(preempted)
	}
	return nil
}

func anyRunnable(processes []*process.Process) bool {
	for _, p := range processes {
		if p.State.IsRunnable() {
			return true
		}
	}
	return false
}

func anyBlocked(processes []*process.Process) bool {
	for _, p := range processes {
		if p.State == process.StateBlocked {
			return true
		}
	}
	return false
}

func find(processes []*process.Process, pid int) *process.Process {
	for _, p := range processes {
		if p.ID == pid {
			return p
		}
	}
	return nil
}

func snapshot(processes []*process.Process) []process.Status {
	ret := make([]process.Status, 0, len(processes))
	for _, p := range processes {
		ret = append(ret, p.Status())
	}
	return ret
}

// New creates a scheduler bound to registry
func New(registry Registry, options ...Option) (*Service, error) {
	s := &Service{config: DefaultConfig(), registry: registry}
	for _, opt := range options {
		opt(s)
	}
	if s.registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if s.config.Quantum < 1 {
		return nil, fmt.Errorf("quantum must be > 0, got %d", s.config.Quantum)
	}
	return s, nil
}
