package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvedIsValidAndSolved(t *testing.T) {
	s := Solved()
	assert.True(t, s.IsSolved())
	require.NoError(t, s.Validate())
}

func TestValidateCatchesBadCornerPerm(t *testing.T) {
	s := Solved()
	s.CornerPerm[0] = s.CornerPerm[1]
	err := s.Validate()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestValidateCatchesOrientationSum(t *testing.T) {
	s := Solved()
	s.CornerOrient[0] = 1 // sum now 1, not 0 mod 3
	err := s.Validate()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestValidateCatchesParityMismatch(t *testing.T) {
	s := Solved()
	// Swap two corners only: odd corner permutation, even edge
	// permutation, parities disagree.
	s.CornerPerm[0], s.CornerPerm[1] = s.CornerPerm[1], s.CornerPerm[0]
	err := s.Validate()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestHashStableAndDistinguishing(t *testing.T) {
	a := Solved()
	b := Solved()
	assert.Equal(t, a.Hash(), b.Hash())

	c := Apply(Solved(), MoveU)
	assert.NotEqual(t, a.Hash(), c.Hash())
}
