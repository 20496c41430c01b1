// Package tracing integrates OpenTelemetry with the simulator: every
// scheduling run and every dispatch slot becomes a span. All instrumentation
// is kept in a separate package; when Init is never called the global no-op
// provider makes spans free.
package tracing
