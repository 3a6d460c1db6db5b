// Package cage implements region partitioning and arithmetic clue
// derivation: the flood-fill that carves the grid into connected cages and
// the deterministic rules that turn a cage's solution values into a clue.
package cage

import (
	"github.com/jlave-dev/squarewise/internal/grid"
)

// Operation is the arithmetic rule attached to a cage.  The literal symbols
// are the serialized form consumed by rendering and save/resume layers.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "×"
	OpDivide   Operation = "÷"
	OpNone     Operation = "none"
)

// Clue is the target value and operation a cage's filled values must satisfy.
// OpNone is only valid for single-cell cages.
type Clue struct {
	Target    int       `json:"target"`
	Operation Operation `json:"operation"`
}

// Cage is a connected region of cells sharing one clue.
type Cage struct {
	ID    int         `json:"id"`
	Cells []grid.Cell `json:"cells"`
	Clue  Clue        `json:"clue"`
}

// ValidateClue reports whether values exactly satisfy the clue.  This is the
// single source of truth for exact cage arithmetic; the solver and the move
// validator both call it once a cage is fully filled.
func ValidateClue(clue Clue, values []int) bool {
	if len(values) == 0 {
		return false
	}
	switch clue.Operation {
	case OpNone:
		return len(values) == 1 && values[0] == clue.Target
	case OpAdd:
		sum := 0
		for _, v := range values {
			sum += v
		}
		return sum == clue.Target
	case OpMultiply:
		product := 1
		for _, v := range values {
			product *= v
		}
		return product == clue.Target
	case OpSubtract:
		if len(values) != 2 {
			return false
		}
		larger, smaller := maxMin(values[0], values[1])
		return larger-smaller == clue.Target
	case OpDivide:
		if len(values) != 2 {
			return false
		}
		larger, smaller := maxMin(values[0], values[1])
		return smaller != 0 && larger%smaller == 0 && larger/smaller == clue.Target
	}
	return false
}

func maxMin(a, b int) (int, int) {
	if a >= b {
		return a, b
	}
	return b, a
}
