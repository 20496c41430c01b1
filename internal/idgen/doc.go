// Package idgen wraps the UUID generator used for simulation run identifiers
// so that it can be stubbed in tests. Callers treat run ids as opaque strings.
package idgen
