package scheduler

import "errors"

var (
	// ErrInvalidAlgorithm is returned for an unrecognised scheduling discipline.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrRunInProgress is returned when a run is requested while another one is executing.
	ErrRunInProgress = errors.New("run already in progress")
)
