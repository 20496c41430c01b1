// Package progress provides a lightweight tracker that keeps aggregated
// counters (dispatches, executed cycles, preemptions, completions …) for a
// single simulation run. The tracker travels in the run context so every
// component that receives the context can update it via UpdateCtx.
package progress
