package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		wantErr error
	}{
		{
			name:    "empty board",
			board:   "",
			wantErr: ErrBoardEmpty,
		},
		{
			name:    "too short",
			board:   "12",
			wantErr: ErrBoardSize,
		},
		{
			name:    "too long",
			board:   strings.Repeat(".", CellCount+1),
			wantErr: ErrBoardSize,
		},
		{
			name:    "invalid character",
			board:   "1" + strings.Repeat("x", 80),
			wantErr: ErrBoardCharacter,
		},
		{
			name:  "all blank",
			board: strings.Repeat(".", CellCount),
		},
		{
			name:  "zero accepted as blank",
			board: strings.Repeat("0", CellCount),
		},
		{
			name:  "classic puzzle",
			board: "003020600900305001001806400008102900700000008006708200002609500800203009005010300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.board)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCountGivens(t *testing.T) {
	assert.Equal(t, 0, CountGivens(strings.Repeat(".", CellCount)))
	assert.Equal(t, 0, CountGivens(strings.Repeat("0", CellCount)))
	assert.Equal(t, CellCount, CountGivens(strings.Repeat("5", CellCount)))

	classic := "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	assert.Equal(t, 32, CountGivens(classic))
}
