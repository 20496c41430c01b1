package registry

import (
	"errors"
	"fmt"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/dao"
)

var (
	// ErrNotFound is returned for an unknown process id.
	ErrNotFound = dao.ErrNotFound

	// ErrInvalidTransition is returned when the requested state change is not
	// permitted from the current state.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionError describes a rejected state transition
type TransitionError struct {
	PID  int
	Op   string
	From process.State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s process %d: process is %s", e.Op, e.PID, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
