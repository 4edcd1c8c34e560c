package board

import (
	"errors"
	"fmt"
)

var (
	ErrBoardEmpty     = errors.New("board is empty")
	ErrBoardSize      = errors.New("board must be exactly 81 characters")
	ErrBoardCharacter = errors.New("board may only contain digits 1-9 and '.'")
)

// Validate checks that s is a well-formed board string: exactly 81
// characters, each a digit '1'-'9' or a blank marker ('.' or '0').
// It says nothing about solvability.
func Validate(s string) error {
	if len(s) == 0 {
		return ErrBoardEmpty
	}
	if len(s) != CellCount {
		return fmt.Errorf("%w: got %d", ErrBoardSize, len(s))
	}
	for pos := 0; pos < CellCount; pos++ {
		if ch := s[pos]; !IsBlank(ch) && (ch < '1' || ch > '9') {
			return fmt.Errorf("%w: found %q at %s", ErrBoardCharacter, ch, CellName(pos))
		}
	}
	return nil
}
