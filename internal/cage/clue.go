package cage

import (
	"github.com/jlave-dev/squarewise/internal/grid"
)

// OpSet is the set of operations a difficulty preset allows.
type OpSet map[Operation]bool

// NewOpSet builds an OpSet from a list of operations.
func NewOpSet(ops ...Operation) OpSet {
	s := make(OpSet, len(ops))
	for _, op := range ops {
		s[op] = true
	}
	return s
}

// DeriveClues fills each cage's clue from the solution values.  Derivation is
// deterministic — no randomness — so a given Latin square and cage layout
// always yield the same clues.
//
// Single cells get OpNone with the cell's value.  Two-cell cages take the
// highest-priority eligible operation in the fixed order ÷ > × > − > +,
// where subtraction requires distinct values and division requires even
// divisibility.  Larger cages only support sum and product; addition wins
// when allowed.  In every case the fallback is a plain sum, which is always
// well-defined.
func DeriveClues(cages []Cage, solution grid.Grid, allowed OpSet) {
	for i := range cages {
		cages[i].Clue = deriveClue(cages[i].Cells, solution, allowed)
	}
}

func deriveClue(cells []grid.Cell, solution grid.Grid, allowed OpSet) Clue {
	values := make([]int, len(cells))
	for i, c := range cells {
		values[i] = solution.Get(c)
	}

	if len(values) == 1 {
		return Clue{Target: values[0], Operation: OpNone}
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	if len(values) == 2 {
		larger, smaller := maxMin(values[0], values[1])
		// Priority order: division, multiplication, subtraction, addition.
		if allowed[OpDivide] && smaller != 0 && larger%smaller == 0 {
			return Clue{Target: larger / smaller, Operation: OpDivide}
		}
		if allowed[OpMultiply] {
			return Clue{Target: larger * smaller, Operation: OpMultiply}
		}
		if allowed[OpSubtract] && larger != smaller {
			return Clue{Target: larger - smaller, Operation: OpSubtract}
		}
		return Clue{Target: sum, Operation: OpAdd}
	}

	if allowed[OpAdd] {
		return Clue{Target: sum, Operation: OpAdd}
	}
	if allowed[OpMultiply] {
		product := 1
		for _, v := range values {
			product *= v
		}
		return Clue{Target: product, Operation: OpMultiply}
	}
	return Clue{Target: sum, Operation: OpAdd}
}
