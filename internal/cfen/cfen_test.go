package cfen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

func TestParseCFENBasicFields(t *testing.T) {
	state, err := ParseCFEN("YB|Y9/R9/B9/W9/O9/G9")
	require.NoError(t, err)
	assert.Equal(t, 3, state.Dimension)
	assert.Equal(t, facelet.Yellow, state.Orientation.Up)
	assert.Equal(t, facelet.Blue, state.Orientation.Front)
	assert.Equal(t, facelet.Yellow, state.Faces[0].Stickers[0])
}

func TestParseCFENWithWildcards(t *testing.T) {
	state, err := ParseCFEN("WG|?W?WWW?W?/?9/?9/?9/?9/?9")
	require.NoError(t, err)
	assert.Equal(t, facelet.Grey, state.Faces[0].Stickers[0])
	assert.Equal(t, facelet.White, state.Faces[0].Stickers[1])
}

func TestParseCFENRejectsMalformedInput(t *testing.T) {
	_, err := ParseCFEN("YB")
	assert.Error(t, err)

	_, err = ParseCFEN("YB|Y9/R9/B9/W9/O9")
	assert.Error(t, err)

	_, err = ParseCFEN("YB|Y9/R9/B9/W9/O9/X9")
	assert.Error(t, err)

	// a 1x1 "cube" has no smallest supported size to clamp to
	_, err = ParseCFEN("YB|Y/R/B/W/O/G")
	assert.Error(t, err)
}

func TestParseCFENRejectsOversizedRunCounts(t *testing.T) {
	// A run count past the largest supported cube must fail fast, not
	// allocate.
	_, err := ParseCFEN("YB|W999999999/W/W/W/W/W")
	assert.Error(t, err)
}

func TestCFENStateStringRoundTrips(t *testing.T) {
	const cfenStr = "YB|Y9/R9/B9/W9/O9/G9"
	state, err := ParseCFEN(cfenStr)
	require.NoError(t, err)
	assert.Equal(t, cfenStr, state.String())
}

func TestCompactStringRunLengthEncodesMixedRuns(t *testing.T) {
	face := CFENFace{Stickers: []facelet.Color{facelet.White, facelet.White, facelet.Yellow}}
	assert.Equal(t, "W2Y", face.compactString())
}

func TestValidateCFEN(t *testing.T) {
	assert.NoError(t, ValidateCFEN("YB|Y9/R9/B9/W9/O9/G9"))
	assert.Error(t, ValidateCFEN("not a cfen string"))
}
