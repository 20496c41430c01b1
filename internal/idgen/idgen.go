package idgen

import "github.com/google/uuid"

// NewFunc returns a new run identifier. Override in tests for determinism.
var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }
