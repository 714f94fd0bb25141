package relativity

import "errors"

// Invalid-argument errors. Singular results at or inside the horizon are
// not errors; they come back as sentinel values (0 dilation, +Inf redshift).
var (
	// ErrNegativeMass indicates a mass below zero solar masses.
	ErrNegativeMass = errors.New("relativity: mass must be non-negative")

	// ErrNonPositiveRadius indicates a radius where a ratio is taken
	// with r <= 0.
	ErrNonPositiveRadius = errors.New("relativity: radius must be positive")
)
