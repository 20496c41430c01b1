package process

// State represents the lifecycle state of a simulated process
type State string

const (
	StateReady    State = "ready"
	StateRunning  State = "running"
	StateBlocked  State = "blocked"
	StateFinished State = "finished"
)

// IsRunnable reports whether the scheduler may still make progress on a process in this state
func (s State) IsRunnable() bool {
	return s == StateReady || s == StateRunning
}

// IsTerminal reports whether the state is absorbing
func (s State) IsTerminal() bool {
	return s == StateFinished
}

// Short returns the letter used in compact state snapshots:
// R ready, X running (executing), B blocked, F finished.
func (s State) Short() string {
	switch s {
	case StateReady:
		return "R"
	case StateRunning:
		return "X"
	case StateBlocked:
		return "B"
	case StateFinished:
		return "F"
	}
	return "?"
}

func (s State) String() string {
	return string(s)
}
