package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCommand is returned when a known command has missing or invalid arguments.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrUnknownCommand is returned for an unrecognised command word.
	ErrUnknownCommand = errors.New("unknown command")
)

// UsageError describes a malformed command together with its synopsis
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Usage)
}

func (e *UsageError) Unwrap() error {
	return ErrMalformedCommand
}
