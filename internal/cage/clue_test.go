package cage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/rng"
)

var allOps = NewOpSet(OpAdd, OpSubtract, OpMultiply, OpDivide)

func TestDeriveClue_SingleCell(t *testing.T) {
	sol := grid.Grid{{3, 1, 2}, {1, 2, 3}, {2, 3, 1}}
	clue := deriveClue([]grid.Cell{{Row: 0, Col: 0}}, sol, allOps)
	assert.Equal(t, Clue{Target: 3, Operation: OpNone}, clue)
}

func TestDeriveClue_PairPriority(t *testing.T) {
	sol := grid.Grid{
		{4, 2, 1, 3},
		{2, 4, 3, 1},
		{1, 3, 2, 4},
		{3, 1, 4, 2},
	}
	pair := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

	tests := []struct {
		name    string
		allowed OpSet
		want    Clue
	}{
		{"division wins when divisible", allOps, Clue{Target: 2, Operation: OpDivide}},
		{"multiplication next", NewOpSet(OpAdd, OpSubtract, OpMultiply), Clue{Target: 8, Operation: OpMultiply}},
		{"subtraction next", NewOpSet(OpAdd, OpSubtract), Clue{Target: 2, Operation: OpSubtract}},
		{"addition last", NewOpSet(OpAdd), Clue{Target: 6, Operation: OpAdd}},
		{"empty set falls back to addition", NewOpSet(), Clue{Target: 6, Operation: OpAdd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveClue(pair, sol, tt.allowed))
		})
	}
}

func TestDeriveClue_PairIndivisible(t *testing.T) {
	sol := grid.Grid{{3, 2}, {2, 3}}
	pair := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	// 3/2 is not integral, so multiplication is the highest eligible priority.
	assert.Equal(t, Clue{Target: 6, Operation: OpMultiply}, deriveClue(pair, sol, allOps))
}

func TestDeriveClue_LargeCage(t *testing.T) {
	sol := grid.Grid{{3, 1, 2}, {1, 2, 3}, {2, 3, 1}}
	cells := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}

	assert.Equal(t, Clue{Target: 6, Operation: OpAdd}, deriveClue(cells, sol, allOps))
	assert.Equal(t, Clue{Target: 6, Operation: OpMultiply},
		deriveClue(cells, sol, NewOpSet(OpMultiply, OpDivide)))
	assert.Equal(t, Clue{Target: 6, Operation: OpAdd},
		deriveClue(cells, sol, NewOpSet(OpSubtract, OpDivide)))
}

func TestDeriveClues_RoundTrip(t *testing.T) {
	src := rng.New(311)
	sol, err := grid.GenerateLatin(6, src)
	require.NoError(t, err)
	cages := Partition(6, src, Bounds{Min: 1, Max: 4}, 0.1)
	DeriveClues(cages, sol, allOps)

	for _, cg := range cages {
		values := make([]int, len(cg.Cells))
		for i, c := range cg.Cells {
			values[i] = sol.Get(c)
		}
		assert.True(t, ValidateClue(cg.Clue, values),
			"cage %d clue %v values %v", cg.ID, cg.Clue, values)
	}
}

func TestValidateClue_Exact(t *testing.T) {
	tests := []struct {
		name   string
		clue   Clue
		values []int
		want   bool
	}{
		{"none match", Clue{4, OpNone}, []int{4}, true},
		{"none mismatch", Clue{4, OpNone}, []int{3}, false},
		{"sum match", Clue{9, OpAdd}, []int{2, 3, 4}, true},
		{"sum mismatch", Clue{9, OpAdd}, []int{2, 3, 5}, false},
		{"product match", Clue{24, OpMultiply}, []int{2, 3, 4}, true},
		{"difference order-independent", Clue{1, OpSubtract}, []int{2, 3}, true},
		{"difference mismatch", Clue{2, OpSubtract}, []int{2, 3}, false},
		{"quotient match", Clue{2, OpDivide}, []int{4, 2}, true},
		{"quotient not integral", Clue{2, OpDivide}, []int{5, 2}, false},
		{"empty values", Clue{1, OpAdd}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateClue(tt.clue, tt.values))
		})
	}
}
