package h2si

import "errors"

var (
	// ErrInvalidArgument is returned when a flat component slice does not hold
	// exactly six values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateIntensity is returned by the forward conversions when I <= 0.
	// The encoding divides by I, so zero intensity has no H2SI image.
	ErrDegenerateIntensity = errors.New("degenerate intensity: I must be greater than 0")

	// ErrOutOfRange is returned when S or I lie outside [0, 1] by more than
	// Tolerance, or H is not finite. The forward conversions check their
	// input; Validate checks a decoded value.
	ErrOutOfRange = errors.New("value out of range")
)

// Tolerance is how far S or I may land outside [0, 1] and still be clamped
// instead of reported as ErrOutOfRange. The inverse conversions clamp
// regardless; Validate reports the drift.
const Tolerance = 1e-9
