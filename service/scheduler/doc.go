// Package scheduler hosts the scheduling engine. A run selects ready
// processes with one of four disciplines (fifo, sjf, rr, priority), executes
// them cycle by cycle against the registry and publishes one structured
// event per executed cycle until no ready or running process remains.
package scheduler
