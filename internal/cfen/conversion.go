package cfen

import (
	"fmt"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

// slotMapping names the internal face one CFEN slot reads from and
// writes to, and whether that face's sticker grid appears rotated 180°
// in the CFEN observer's view.
type slotMapping struct {
	face    facelet.Face
	flipped bool
}

// knownOrientations gives, for each supported orientation, the
// slotMapping of each CFEN slot (in U,R,F,D,L,B order). Each entry is
// the whole-cube rotation that brings the named colors to Up and
// Front: YB is the home orientation, YG a 180° turn about the Up-Down
// axis, WG a 180° turn about the Left-Right axis, WB a 180° turn about
// the Front-Back axis. Because all three non-home rotations are 180°
// turns, every face lands either grid-aligned or rotated a half turn
// in the observer's view; the flipped flag records which (under YG the
// Up and Down faces keep their positions but read upside down, under WG the four
// side faces do, under WB all six do). ToCube and FromCube share this
// single table, which makes them exact inverses of each other by
// construction; a separate reverse mapping would be one more thing to
// keep in sync, and the 180° transform is its own inverse.
var knownOrientations = map[CFENOrientation][6]slotMapping{
	{facelet.Yellow, facelet.Blue}: {
		{facelet.Up, false}, {facelet.Right, false}, {facelet.Front, false},
		{facelet.Down, false}, {facelet.Left, false}, {facelet.Back, false},
	},
	{facelet.Yellow, facelet.Green}: {
		{facelet.Up, true}, {facelet.Left, false}, {facelet.Back, false},
		{facelet.Down, true}, {facelet.Right, false}, {facelet.Front, false},
	},
	{facelet.White, facelet.Green}: {
		{facelet.Down, false}, {facelet.Right, true}, {facelet.Back, true},
		{facelet.Up, false}, {facelet.Left, true}, {facelet.Front, true},
	},
	{facelet.White, facelet.Blue}: {
		{facelet.Down, true}, {facelet.Left, true}, {facelet.Front, true},
		{facelet.Up, true}, {facelet.Right, true}, {facelet.Back, true},
	},
}

var canonicalOrientation = CFENOrientation{Up: facelet.Yellow, Front: facelet.Blue}

// mappingFor resolves an orientation to its slot-mapping table. An
// orientation outside knownOrientations is an error, not a silent fall
// back to canonical: a typo'd orientation prefix would otherwise parse
// and match with confidently wrong results.
func mappingFor(o CFENOrientation) ([6]slotMapping, error) {
	m, ok := knownOrientations[o]
	if !ok {
		return [6]slotMapping{}, fmt.Errorf("unsupported CFEN orientation %s%s", o.Up, o.Front)
	}
	return m, nil
}

// ToCube renders state onto a new facelet.Cube of state.Dimension.
func (state *CFENState) ToCube() (*facelet.Cube, error) {
	c := facelet.NewCube(state.Dimension)
	mapping, err := mappingFor(state.Orientation)
	if err != nil {
		return nil, err
	}

	for cfenIdx, face := range state.Faces {
		m := mapping[cfenIdx]
		for stickerIdx, color := range face.Stickers {
			row := stickerIdx / state.Dimension
			col := stickerIdx % state.Dimension
			if m.flipped {
				row = state.Dimension - 1 - row
				col = state.Dimension - 1 - col
			}
			c.Faces[m.face][row][col] = color
		}
	}
	return c, nil
}

// FromCube reads c's stickers into a CFENState under the given
// orientation.
func FromCube(c *facelet.Cube, orientation CFENOrientation) (*CFENState, error) {
	if c == nil {
		return nil, fmt.Errorf("cube cannot be nil")
	}
	mapping, err := mappingFor(orientation)
	if err != nil {
		return nil, err
	}

	var faces [6]CFENFace
	for cfenIdx := 0; cfenIdx < 6; cfenIdx++ {
		m := mapping[cfenIdx]
		stickers := make([]facelet.Color, c.Size*c.Size)
		for row := 0; row < c.Size; row++ {
			for col := 0; col < c.Size; col++ {
				srcRow, srcCol := row, col
				if m.flipped {
					srcRow = c.Size - 1 - row
					srcCol = c.Size - 1 - col
				}
				stickers[row*c.Size+col] = c.Faces[m.face][srcRow][srcCol]
			}
		}
		faces[cfenIdx] = CFENFace{Stickers: stickers}
	}

	return &CFENState{Orientation: orientation, Faces: faces, Dimension: c.Size}, nil
}

// GenerateCFEN renders c as a CFEN string in the cube's own canonical
// orientation (Yellow up, Blue front).
func GenerateCFEN(c *facelet.Cube) (string, error) {
	state, err := FromCube(c, canonicalOrientation)
	if err != nil {
		return "", err
	}
	return state.String(), nil
}

// MatchesCube reports whether c matches state, treating every wildcard
// (Grey) sticker in state as "don't care".
func (state *CFENState) MatchesCube(c *facelet.Cube) (bool, error) {
	if c.Size != state.Dimension {
		return false, fmt.Errorf("cube dimension %d doesn't match CFEN dimension %d", c.Size, state.Dimension)
	}

	actual, err := FromCube(c, state.Orientation)
	if err != nil {
		return false, err
	}

	for faceIdx := 0; faceIdx < 6; faceIdx++ {
		pattern := state.Faces[faceIdx].Stickers
		observed := actual.Faces[faceIdx].Stickers
		if len(pattern) != len(observed) {
			return false, fmt.Errorf("face %d sticker count mismatch", faceIdx)
		}
		for i, want := range pattern {
			if want == facelet.Grey {
				continue
			}
			if want != observed[i] {
				return false, nil
			}
		}
	}
	return true, nil
}

// ValidateCFEN reports whether s parses as a well-formed CFEN string.
func ValidateCFEN(s string) error {
	_, err := ParseCFEN(s)
	return err
}
