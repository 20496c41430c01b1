package schedsim

import (
	"context"
	"fmt"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/progress"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/event"
	"github.com/viant/schedsim/service/registry"
	"github.com/viant/schedsim/service/scheduler"
)

const (
	// ServiceName identifies the simulator in exported spans
	ServiceName = "schedsim"
	// Version of the simulator
	Version = "0.1.0"
)

// Service wires a process registry and a scheduler into one simulator session
type Service struct {
	config     *Config
	registry   *registry.Service
	scheduler  *scheduler.Service
	generator  registry.Generator
	processDAO dao.Service[int, process.Process]
	listeners  []event.Listener
	onProgress func(progress.Counters)
	tracingErr error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.tracingErr != nil {
		return fmt.Errorf("failed to initialise tracing: %w", s.tracingErr)
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.generator == nil {
		random, err := registry.NewRandom(s.config.Generator.Ranges, s.config.Generator.Seed)
		if err != nil {
			return err
		}
		s.generator = random
	}
	registryOptions := []registry.Option{registry.WithGenerator(s.generator)}
	if s.processDAO != nil {
		registryOptions = append(registryOptions, registry.WithProcessDAO(s.processDAO))
	}
	s.registry = registry.New(registryOptions...)

	var err error
	s.scheduler, err = scheduler.New(s.registry,
		scheduler.WithQuantum(s.config.Scheduler.Quantum),
		scheduler.WithListeners(s.listeners...),
		scheduler.WithProgressListener(s.onProgress))
	return err
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Registry returns the process registry
func (s *Service) Registry() *registry.Service {
	return s.registry
}

// Scheduler returns the scheduling engine
func (s *Service) Scheduler() *scheduler.Service {
	return s.scheduler
}

// Run simulates the named algorithm over the current registry content
func (s *Service) Run(ctx context.Context, algorithm string, listeners ...event.Listener) (*scheduler.Report, error) {
	return s.scheduler.Run(ctx, algorithm, listeners...)
}

// New creates a simulator with an empty registry
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
