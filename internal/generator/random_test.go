package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		n, err := RandRange(rng, 9)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 9)
	}
}

func TestRandRangeRejectsEmptyRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := RandRange(rng, 0)
	assert.ErrorIs(t, err, ErrRangeUndefined)

	_, err = RandRange(rng, -3)
	assert.ErrorIs(t, err, ErrRangeUndefined)
}
