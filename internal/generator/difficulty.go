package generator

import (
	"fmt"
	"strings"
)

// Difficulty selects how many givens a generated puzzle keeps. Fewer givens
// leave more work to the human solver.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
	Insane
	Inhuman
)

// Givens returns the target number of pre-filled cells for the difficulty.
func (d Difficulty) Givens() int {
	switch d {
	case Easy:
		return 62
	case Medium:
		return 53
	case Hard:
		return 44
	case VeryHard:
		return 35
	case Insane:
		return 26
	case Inhuman:
		return 17
	default:
		return 62
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case VeryHard:
		return "very-hard"
	case Insane:
		return "insane"
	case Inhuman:
		return "inhuman"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a difficulty name to its enum value.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "very-hard", "veryhard":
		return VeryHard, nil
	case "insane":
		return Insane, nil
	case "inhuman":
		return Inhuman, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", name)
}
