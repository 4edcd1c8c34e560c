package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyGivens(t *testing.T) {
	assert.Equal(t, 62, Easy.Givens())
	assert.Equal(t, 53, Medium.Givens())
	assert.Equal(t, 44, Hard.Givens())
	assert.Equal(t, 35, VeryHard.Givens())
	assert.Equal(t, 26, Insane.Givens())
	assert.Equal(t, 17, Inhuman.Givens())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"easy", Easy},
		{"Medium", Medium},
		{"HARD", Hard},
		{"very-hard", VeryHard},
		{"veryhard", VeryHard},
		{" insane ", Insane},
		{"inhuman", Inhuman},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestDifficultyString(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, VeryHard, Insane, Inhuman} {
		parsed, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}
