package generator

import (
	"errors"
	"math/rand"
)

// ErrRangeUndefined reports a RandRange call without a positive upper
// bound. This is a caller configuration error, distinct from the normal
// contradiction/no-solution signals.
var ErrRangeUndefined = errors.New("random range upper bound must be positive")

// RandRange returns a uniform random integer in [0, n).
func RandRange(rng *rand.Rand, n int) (int, error) {
	if n <= 0 {
		return 0, ErrRangeUndefined
	}
	return rng.Intn(n), nil
}
