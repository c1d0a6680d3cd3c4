package cfen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

func TestToCubeSolvedCanonicalOrientation(t *testing.T) {
	// In the canonical (Yellow-up/Blue-front) orientation, CFEN slot
	// order U/R/F/D/L/B maps onto internal faces Up/Right/Front/Down/
	// Left/Back unchanged, so the solved cube's CFEN spells out the
	// solved face colors directly.
	state, err := ParseCFEN("YB|Y9/R9/B9/W9/O9/G9")
	require.NoError(t, err)

	c, err := state.ToCube()
	require.NoError(t, err)
	assert.True(t, c.IsSolved())
	assert.Equal(t, facelet.Yellow, c.Faces[facelet.Up][0][0])
	assert.Equal(t, facelet.Blue, c.Faces[facelet.Front][0][0])
}

func TestGenerateCFENRoundTripsThroughToCube(t *testing.T) {
	c := facelet.NewCube(3)
	c.ApplyMoves([]facelet.Move{{Face: facelet.Right, Clockwise: true}, {Face: facelet.Up, Clockwise: true}})

	cfenStr, err := GenerateCFEN(c)
	require.NoError(t, err)

	state, err := ParseCFEN(cfenStr)
	require.NoError(t, err)

	back, err := state.ToCube()
	require.NoError(t, err)
	assert.Equal(t, c.Faces, back.Faces)
}

func TestMatchesCubeIgnoresWildcards(t *testing.T) {
	c := facelet.NewCube(3)
	// Pin only the Up face (solved color Yellow) and wildcard the rest.
	pattern, err := ParseCFEN("YB|Y9/?9/?9/?9/?9/?9")
	require.NoError(t, err)

	matches, err := pattern.MatchesCube(c)
	require.NoError(t, err)
	assert.True(t, matches)

	c.ApplyMove(facelet.Move{Face: facelet.Up, Clockwise: true})
	matches, err = pattern.MatchesCube(c)
	require.NoError(t, err)
	assert.True(t, matches, "a U turn never disturbs the Up face itself")

	c.ApplyMove(facelet.Move{Face: facelet.Front, Clockwise: true})
	matches, err = pattern.MatchesCube(c)
	require.NoError(t, err)
	assert.False(t, matches, "an F turn disturbs the Up face's bottom row")
}

func TestMatchesCubeRejectsDimensionMismatch(t *testing.T) {
	pattern, err := ParseCFEN("YB|Y9/R9/B9/W9/O9/G9")
	require.NoError(t, err)
	_, err = pattern.MatchesCube(facelet.NewCube(4))
	assert.Error(t, err)
}

func TestAlternateOrientationsRoundTrip(t *testing.T) {
	c := facelet.NewCube(3)
	c.ApplyMoves([]facelet.Move{{Face: facelet.Right, Clockwise: true}, {Face: facelet.Front, Clockwise: false}})

	for _, o := range []CFENOrientation{
		{Up: facelet.Yellow, Front: facelet.Blue},
		{Up: facelet.White, Front: facelet.Green},
		{Up: facelet.White, Front: facelet.Blue},
		{Up: facelet.Yellow, Front: facelet.Green},
	} {
		state, err := FromCube(c, o)
		require.NoError(t, err)
		back, err := state.ToCube()
		require.NoError(t, err)
		assert.Equal(t, c.Faces, back.Faces, "orientation %+v should round-trip", o)
	}
}

// Under a non-home orientation, a face that keeps its position can
// still read rotated in the observer's view: with Green front the Up
// face is seen upside down, so an asymmetric pattern must land on the
// diagonally opposite stickers, not be copied grid-verbatim.
func TestOrientationAppliesInPlaneRotation(t *testing.T) {
	state, err := ParseCFEN("YG|R?8/?9/?9/?9/?9/?9")
	require.NoError(t, err)

	c, err := state.ToCube()
	require.NoError(t, err)
	assert.Equal(t, facelet.Red, c.Faces[facelet.Up][2][2],
		"the YG view's far-left Up sticker is the home view's front-right one")
	assert.Equal(t, facelet.Grey, c.Faces[facelet.Up][0][0])

	back, err := FromCube(c, CFENOrientation{Up: facelet.Yellow, Front: facelet.Green})
	require.NoError(t, err)
	assert.Equal(t, facelet.Red, back.Faces[0].Stickers[0])

	// White-up/Green-front: the Up slot reads internal Down
	// grid-aligned, while the side faces read flipped.
	wg, err := ParseCFEN("WG|R?8/R?8/?9/?9/?9/?9")
	require.NoError(t, err)
	c, err = wg.ToCube()
	require.NoError(t, err)
	assert.Equal(t, facelet.Red, c.Faces[facelet.Down][0][0])
	assert.Equal(t, facelet.Red, c.Faces[facelet.Right][2][2])

	// White-up/Blue-front: every face reads flipped.
	wb, err := ParseCFEN("WB|R?8/?9/R?8/?9/?9/?9")
	require.NoError(t, err)
	c, err = wb.ToCube()
	require.NoError(t, err)
	assert.Equal(t, facelet.Red, c.Faces[facelet.Down][2][2])
	assert.Equal(t, facelet.Red, c.Faces[facelet.Front][2][2])
}

func TestUnsupportedOrientationIsAnError(t *testing.T) {
	// "BY" (Blue up, Yellow front) is not a real orientation of this
	// color scheme; it must be rejected, not silently treated as
	// canonical.
	state, err := ParseCFEN("BY|Y9/R9/B9/W9/O9/G9")
	require.NoError(t, err)

	_, err = state.ToCube()
	assert.Error(t, err)

	_, err = FromCube(facelet.NewCube(3), CFENOrientation{Up: facelet.Blue, Front: facelet.Yellow})
	assert.Error(t, err)
}
