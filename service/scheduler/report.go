package scheduler

import (
	"slices"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/progress"
	"gonum.org/v1/gonum/stat"
)

// ProcessStats holds per-process timing of one run, in cycles since the run started
type ProcessStats struct {
	PID        int    `json:"pid"`
	Name       string `json:"name"`
	Admitted   int    `json:"admitted"`
	Burst      int    `json:"burst"`
	FirstRun   int    `json:"firstRun"`
	Completion int    `json:"completion"`
	Executed   int    `json:"executed"`
	Finished   bool   `json:"finished"`
}

// Turnaround is the number of cycles between admission and completion
func (s *ProcessStats) Turnaround() int {
	return s.Completion - s.Admitted
}

// Waiting is the turnaround not spent executing
func (s *ProcessStats) Waiting() int {
	return s.Turnaround() - s.Executed
}

// Response is the number of cycles between admission and the first executed cycle
func (s *ProcessStats) Response() int {
	return s.FirstRun - 1 - s.Admitted
}

// Report summarises a completed run
type Report struct {
	RunID           string            `json:"runID"`
	Algorithm       Algorithm         `json:"algorithm"`
	Quantum         int               `json:"quantum,omitempty"`
	Cycles          int               `json:"cycles"`
	Dispatches      int               `json:"dispatches"`
	Preemptions     int               `json:"preemptions"`
	ContextSwitches int               `json:"contextSwitches"`
	Processes       []*ProcessStats   `json:"processes"`
	AvgWaiting      float64           `json:"avgWaiting"`
	AvgTurnaround   float64           `json:"avgTurnaround"`
	AvgResponse     float64           `json:"avgResponse"`
	Counters        progress.Counters `json:"-"`

	index   map[int]*ProcessStats
	lastPID int
}

func newReport(runID string, algorithm Algorithm, quantum int) *Report {
	ret := &Report{RunID: runID, Algorithm: algorithm, index: map[int]*ProcessStats{}}
	if algorithm == RoundRobin {
		ret.Quantum = quantum
	}
	return ret
}

// Lookup returns stats for pid or nil
func (r *Report) Lookup(pid int) *ProcessStats {
	return r.index[pid]
}

func (r *Report) admit(processes []*process.Process, cycle int) {
	for _, p := range processes {
		if p.State != process.StateReady {
			continue
		}
		if _, ok := r.index[p.ID]; ok {
			continue
		}
		stats := &ProcessStats{PID: p.ID, Name: p.Name, Admitted: cycle, Burst: p.Remaining}
		r.index[p.ID] = stats
		r.Processes = append(r.Processes, stats)
	}
}

func (r *Report) dispatched(pid int) {
	r.Dispatches++
	if r.lastPID != 0 && r.lastPID != pid {
		r.ContextSwitches++
	}
	r.lastPID = pid
}

func (r *Report) executed(pid, cycle int, finished bool) {
	r.Cycles = cycle
	stats := r.index[pid]
	if stats == nil {
		return
	}
	if stats.Executed == 0 {
		stats.FirstRun = cycle
	}
	stats.Executed++
	if finished {
		stats.Finished = true
		stats.Completion = cycle
	}
}

// summarize computes averages over processes that finished by execution
func (r *Report) summarize() {
	slices.SortFunc(r.Processes, func(a, b *ProcessStats) int { return a.PID - b.PID })
	var waiting, turnaround, response []float64
	for _, s := range r.Processes {
		if !s.Finished {
			continue
		}
		waiting = append(waiting, float64(s.Waiting()))
		turnaround = append(turnaround, float64(s.Turnaround()))
		response = append(response, float64(s.Response()))
	}
	r.AvgWaiting = mean(waiting)
	r.AvgTurnaround = mean(turnaround)
	r.AvgResponse = mean(response)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
