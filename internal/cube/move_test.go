package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Applying any move to a legal state yields a legal state.
func TestApplyPreservesInvariants(t *testing.T) {
	s := Solved()
	for _, m := range AllMoves {
		s = Apply(s, m)
		require.NoError(t, s.Validate(), "after %s", m)
	}
}

// Every quarter turn has order 4; every double turn has
// order 2.
func TestMoveOrder(t *testing.T) {
	for face := 0; face < 6; face++ {
		cw := Move(face * 3)
		s := Solved()
		for i := 0; i < 4; i++ {
			s = Apply(s, cw)
		}
		assert.True(t, s.IsSolved(), "%s applied 4 times should solve", cw)

		double := Move(face*3 + 2)
		s2 := Solved()
		s2 = Apply(s2, double)
		s2 = Apply(s2, double)
		assert.True(t, s2.IsSolved(), "%s applied twice should solve", double)
	}
}

// Inverse(m) actually undoes m from any reachable state.
func TestInverseUndoesMove(t *testing.T) {
	s := Apply(Apply(Solved(), MoveR), MoveU)
	for _, m := range AllMoves {
		after := Apply(s, m)
		back := Apply(after, Inverse(m))
		assert.Equal(t, s, back, "%s then %s should round-trip", m, Inverse(m))
	}
}

// Opposite-face moves commute (U/D, L/R, F/B act on
// disjoint cubie slots).
func TestOppositeFacesCommute(t *testing.T) {
	pairs := [][2]Move{{MoveU, MoveD}, {MoveL, MoveR}, {MoveF, MoveB}}
	s := Apply(Apply(Solved(), MoveR), MoveF2)
	for _, p := range pairs {
		ab := Apply(Apply(s, p[0]), p[1])
		ba := Apply(Apply(s, p[1]), p[0])
		assert.Equal(t, ab, ba, "%s and %s should commute", p[0], p[1])
	}
}

func TestDoubleTurnIsTwoQuarterTurns(t *testing.T) {
	for face := 0; face < 6; face++ {
		cw := Move(face * 3)
		double := Move(face*3 + 2)
		s := Apply(Apply(Solved(), cw), cw)
		assert.Equal(t, s, Apply(Solved(), double))
	}
}

func TestSameFaceHelper(t *testing.T) {
	assert.True(t, SameFace(MoveU, MoveUPrime))
	assert.True(t, SameFace(MoveU, MoveU2))
	assert.False(t, SameFace(MoveU, MoveD))
}
