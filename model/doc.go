// Package model contains the in-memory representation of the simulated
// process population used by the scheduler.
//
// The `process` sub-package defines the Process entity and its state
// machine; registry and scheduler services operate on those types only.
package model
