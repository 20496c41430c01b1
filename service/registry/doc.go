// Package registry owns the simulated process population. It assigns
// identities and arrival order, generates attributes through an injectable
// Generator and performs the externally driven state transitions (block,
// unblock, kill). The scheduler mutates processes only through Update so
// that every change happens under the registry lock.
package registry
