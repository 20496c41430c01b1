package scheduler

import (
	"fmt"
	"strings"
)

// Algorithm names a scheduling discipline
type Algorithm string

const (
	// FIFO runs processes in arrival order to completion
	FIFO Algorithm = "fifo"
	// SJF runs the process with the least remaining work to completion
	SJF Algorithm = "sjf"
	// RoundRobin rotates ready processes with a fixed quantum
	RoundRobin Algorithm = "rr"
	// Priority runs the process with the lowest priority value to completion
	Priority Algorithm = "priority"
)

// DefaultQuantum is the round-robin time slice in cycles
const DefaultQuantum = 2

// Algorithms lists the supported disciplines
var Algorithms = []Algorithm{FIFO, SJF, RoundRobin, Priority}

// Parse resolves a case-insensitive algorithm name; "prio" is accepted for priority.
func Parse(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case FIFO:
		return FIFO, nil
	case SJF:
		return SJF, nil
	case RoundRobin:
		return RoundRobin, nil
	case Priority, "prio":
		return Priority, nil
	}
	return "", fmt.Errorf("%w: %q (use one of %s)", ErrInvalidAlgorithm, name, names())
}

func names() string {
	ret := make([]string, 0, len(Algorithms))
	for _, a := range Algorithms {
		ret = append(ret, string(a))
	}
	return strings.Join(ret, ", ")
}

func (a Algorithm) String() string {
	return string(a)
}
