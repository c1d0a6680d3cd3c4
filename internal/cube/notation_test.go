package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndStringRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		token := m.String()
		parsed, err := Parse(token)
		require.NoError(t, err)
		assert.Equal(t, m, parsed, "round trip for %s", token)
	}
}

func TestParseSequence(t *testing.T) {
	moves, err := ParseSequence("R U R' U'")
	require.NoError(t, err)
	require.Equal(t, []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}, moves)
}

func TestParseSequenceRejectsGarbage(t *testing.T) {
	_, err := ParseSequence("R U X")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestSprintCompressesRuns(t *testing.T) {
	assert.Equal(t, "U'", Sprint([]Move{MoveU, MoveU, MoveU}))
	assert.Equal(t, "U2", Sprint([]Move{MoveU, MoveU}))
	assert.Equal(t, "", Sprint([]Move{MoveU, MoveU, MoveU, MoveU}))
	assert.Equal(t, "R U", Sprint([]Move{MoveR, MoveU}))
}

func TestParseScrambleRejectsEmpty(t *testing.T) {
	_, err := ParseScramble("")
	assert.ErrorIs(t, err, ErrInvalidMove)
}
