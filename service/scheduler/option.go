package scheduler

import (
	"github.com/viant/schedsim/progress"
	"github.com/viant/schedsim/service/event"
)

// Option configures the scheduler service
type Option func(*Service)

// WithQuantum sets the round-robin time slice in cycles
func WithQuantum(quantum int) Option {
	return func(s *Service) {
		s.config.Quantum = quantum
	}
}

// WithListeners registers listeners receiving the events of every run
func WithListeners(listeners ...event.Listener) Option {
	return func(s *Service) {
		s.listeners = append(s.listeners, listeners...)
	}
}

// WithProgressListener registers a callback invoked after every counter update
func WithProgressListener(fn func(progress.Counters)) Option {
	return func(s *Service) {
		s.onProgress = fn
	}
}

// WithConfig sets the configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
