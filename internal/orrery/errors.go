package orrery

import "errors"

// Domain errors shared across packages.
var (
	// ErrInvalidConfig indicates a scene configuration that cannot be built.
	ErrInvalidConfig = errors.New("orrery: invalid configuration")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("orrery: unknown preset")

	// ErrRunNotFound indicates a stored run id with no metadata on disk.
	ErrRunNotFound = errors.New("orrery: run not found")

	// ErrEmptyTrace indicates a recorded series too short to analyse or plot.
	ErrEmptyTrace = errors.New("orrery: trace has no samples")

	// ErrUnknownColumn indicates a trace column that was never recorded.
	ErrUnknownColumn = errors.New("orrery: unknown trace column")
)
