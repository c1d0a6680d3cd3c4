package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicZeroAtSolved(t *testing.T) {
	h := NewHeuristic(BuildPDB(nil))
	assert.Equal(t, 0, h.Evaluate(Solved()))
}

// The heuristic never overestimates true distance. We
// can't compute true distance for arbitrary states in a unit test, but
// we can check the weaker, cheap-to-verify half: one move away from
// solved must never report a heuristic above 1 (the exact distance),
// since every PDB is built from a real BFS over the legal move graph.
func TestHeuristicAdmissibleOnOneMoveStates(t *testing.T) {
	h := NewHeuristic(BuildPDB(nil))
	for _, m := range AllMoves {
		s := Apply(Solved(), m)
		assert.LessOrEqual(t, h.Evaluate(s), 1, "%s should be at most 1 move from solved", m)
		assert.Greater(t, h.Evaluate(s), 0, "%s should not look solved", m)
	}
}

func TestZeroHeuristicAlwaysZero(t *testing.T) {
	var z zeroHeuristic
	assert.Equal(t, 0, z.Evaluate(Solved()))
	assert.Equal(t, 0, z.Evaluate(Apply(Solved(), MoveR)))
}
