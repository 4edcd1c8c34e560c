package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	// Difficulty determines the target number of givens.
	Difficulty Difficulty

	// Givens overrides the difficulty target when non-zero. The effective
	// target is clamped into [MinGivens, MaxGivens].
	Givens int

	// Seed makes generation reproducible. 0 means time-based.
	Seed int64

	// EnsureUnique keeps only puzzles that pass the forward/reverse
	// uniqueness probe.
	EnsureUnique bool

	// MaxAttempts caps the number of randomized fill walks before
	// generation gives up. 0 means DefaultMaxAttempts.
	MaxAttempts int

	// Timeout is the wall-clock ceiling for a single Generate call.
	Timeout time.Duration
}

// DefaultOptions returns standard generator options for a difficulty.
func DefaultOptions(d Difficulty) *Options {
	return &Options{
		Difficulty:   d,
		EnsureUnique: true,
		MaxAttempts:  DefaultMaxAttempts,
		Timeout:      10 * time.Second,
	}
}
