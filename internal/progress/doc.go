// Package progress derives the dashboard view from a loaded dataset.
//
// Both entry points are pure: Derive filters and orders a copy of the
// records for the current controls, and ComputeStats counts the whole
// dataset regardless of controls. Neither mutates its input, so callers
// can share one dataset between concurrent requests.
package progress
