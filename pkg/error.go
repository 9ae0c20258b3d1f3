package pkg

import "errors"

// Profiler errors.
var (
	// ErrUninitialized indicates the collector has not started a session.
	ErrUninitialized = errors.New("collector not started")

	// ErrFinalized indicates the collector has already delivered its report.
	ErrFinalized = errors.New("collector finalized")

	// ErrInvalidFormat indicates an unknown report output format.
	ErrInvalidFormat = errors.New("invalid report format")

	// ErrEmptyPath indicates an output path was required but not given.
	ErrEmptyPath = errors.New("empty output path")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// State is the lifecycle state of a collector.
type State int

// Collector states.
const (
	StateUninitialized State = iota // Zero value, no session started
	StateRunning                    // Accepting registrations and measurements
	StateFinalized                  // Report delivered, records released
)

// String returns a string representation of the collector state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Err returns the error corresponding to an operation attempted in state s,
// or nil if the state accepts operations.
func (s State) Err() error {
	switch s {
	case StateRunning:
		return nil
	case StateUninitialized:
		return ErrUninitialized
	default:
		return ErrFinalized
	}
}
