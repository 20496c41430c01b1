package schedsim

import (
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/progress"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/event"
	"github.com/viant/schedsim/service/registry"
	"github.com/viant/schedsim/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures the simulator service
type Option func(s *Service)

// WithConfig replaces the default configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithGenerator overrides the configured random attribute generator
func WithGenerator(generator registry.Generator) Option {
	return func(s *Service) {
		s.generator = generator
	}
}

// WithProcessDAO sets the process store
func WithProcessDAO(dao dao.Service[int, process.Process]) Option {
	return func(s *Service) {
		s.processDAO = dao
	}
}

// WithListeners registers listeners receiving the events of every run
func WithListeners(listeners ...event.Listener) Option {
	return func(s *Service) {
		s.listeners = append(s.listeners, listeners...)
	}
}

// WithProgressListener registers a run counters callback
func WithProgressListener(fn func(progress.Counters)) Option {
	return func(s *Service) {
		s.onProgress = fn
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise spans are written to the supplied file path.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingErr = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingErr = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
