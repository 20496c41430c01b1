package scheduler

import (
	"cmp"
	"slices"

	"github.com/viant/schedsim/model/process"
)

// policy decides which ready process runs next and for how many cycles
type policy interface {
	// start is called once, before the first decision point
	start(processes []*process.Process)
	// next returns the selected process, its slot length and any stale entries discarded on the way
	next(processes []*process.Process) (selected *process.Process, slot int, skipped []int)
	// release is called when the slot of p ends
	release(p *process.Process)
}

func newPolicy(algorithm Algorithm, quantum int) policy {
	switch algorithm {
	case SJF:
		return &ordered{key: func(p *process.Process) int { return p.Remaining }}
	case Priority:
		return &ordered{key: func(p *process.Process) int { return p.Priority }}
	case RoundRobin:
		return &roundRobin{quantum: quantum}
	default:
		return &ordered{key: func(p *process.Process) int { return p.Arrival }}
	}
}

// byKeyThenArrival orders processes by key ascending, arrival breaking ties
func byKeyThenArrival(key func(p *process.Process) int) func(a, b *process.Process) int {
	return func(a, b *process.Process) int {
		if c := cmp.Compare(key(a), key(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.Arrival, b.Arrival)
	}
}

func readyOf(processes []*process.Process) []*process.Process {
	var ret []*process.Process
	for _, p := range processes {
		if p.State == process.StateReady {
			ret = append(ret, p)
		}
	}
	return ret
}

// ordered runs the minimum ready process to completion (fifo, sjf, priority)
type ordered struct {
	key func(p *process.Process) int
}

func (o *ordered) start([]*process.Process) {}

func (o *ordered) next(processes []*process.Process) (*process.Process, int, []int) {
	candidates := readyOf(processes)
	if len(candidates) == 0 {
		return nil, 0, nil
	}
	selected := slices.MinFunc(candidates, byKeyThenArrival(o.key))
	return selected, selected.Remaining, nil
}

func (o *ordered) release(*process.Process) {}

// roundRobin rotates ready processes through a fixed quantum
type roundRobin struct {
	quantum int
	queue   rotation
}

func (r *roundRobin) start(processes []*process.Process) {
	r.admit(processes)
}

// admit appends ready processes to the queue in arrival order
func (r *roundRobin) admit(processes []*process.Process) {
	candidates := readyOf(processes)
	slices.SortStableFunc(candidates, func(a, b *process.Process) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	for _, p := range candidates {
		r.queue.push(p.ID)
	}
}

func (r *roundRobin) next(processes []*process.Process) (*process.Process, int, []int) {
	byID := make(map[int]*process.Process, len(processes))
	for _, p := range processes {
		byID[p.ID] = p
	}
	var skipped []int
	for {
		pid, ok := r.queue.peek()
		if !ok {
			if len(readyOf(processes)) == 0 {
				return nil, 0, skipped
			}
			r.admit(processes)
			continue
		}
		p := byID[pid]
		if p == nil || p.State != process.StateReady {
			r.queue.pop()
			skipped = append(skipped, pid)
			continue
		}
		return p, min(r.quantum, p.Remaining), skipped
	}
}

func (r *roundRobin) release(p *process.Process) {
	if head, ok := r.queue.peek(); ok && head == p.ID {
		r.queue.pop()
		if p.State == process.StateReady {
			r.queue.push(p.ID)
		}
	}
}
