package facelet

import (
	"fmt"
	"sort"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/cube"
)

// convert.go is the boundary converter between the ambient facelet
// cube (sticker colors on an NxN grid) and the core's cubie-level
// cube.State (corner/edge permutation + orientation). It is grounded in
// piece_mapping.go's Get3x3CornerMappings/Get3x3EdgeMappings geometry,
// which is the only place in this codebase that records which facelet
// positions belong to which physical piece.
//
// Only 3x3 is supported: cube.State has no notion of cube size, so a
// facelet.Cube of any other size cannot be converted.

// cornerSlotOrder maps cube.State's corner slot constants (URF, UFL,
// ULB, UBR, DFR, DLF, DBL, DRB) to their entry in
// Get3x3CornerMappings(), whose list order is UBL, UBR, UFL, UFR, DFL,
// DFR, DBL, DBR.
var cornerSlotOrder = [8]int{
	cube.URF: 3,
	cube.UFL: 2,
	cube.ULB: 0,
	cube.UBR: 1,
	cube.DFR: 5,
	cube.DLF: 4,
	cube.DBL: 6,
	cube.DRB: 7,
}

// edgeSlotOrder maps cube.State's edge slot constants (UR, UF, UL, UB,
// DR, DF, DL, DB, FR, FL, BL, BR) to their entry in
// Get3x3EdgeMappings(), whose list order is UB, UL, UR, UF, FL, FR, BR,
// BL, DF, DL, DR, DB.
var edgeSlotOrder = [12]int{
	cube.UR: 2,
	cube.UF: 3,
	cube.UL: 1,
	cube.UB: 0,
	cube.DR: 10,
	cube.DF: 8,
	cube.DL: 9,
	cube.DB: 11,
	cube.FR: 5,
	cube.FL: 4,
	cube.BL: 7,
	cube.BR: 6,
}

// Every CornerMap entry has Face1 on the Up or Down face, and every
// EdgeMap entry has Face1 on the Up/Down face for the 8 top/bottom-layer
// edges or the Front/Back face for the 4 middle-layer edges (FL, FR,
// BL, BR). That is exactly the reference sticker move.go's twist/flip
// deltas are defined against (L/R/U/D never flip edges, F/B always do),
// so orientation 0 is defined as "the home color is showing on the
// Face1 position", and orientation o means the tuple of colors observed
// across (Face1, Face2, [Face3]) is the home tuple cyclically advanced
// by o.
func cornerHomeColors(m CornerMap) [3]Color {
	return [3]Color{
		solvedFaceColors[m.Face1],
		solvedFaceColors[m.Face2],
		solvedFaceColors[m.Face3],
	}
}

func edgeHomeColors(m EdgeMap) [2]Color {
	return [2]Color{solvedFaceColors[m.Face1], solvedFaceColors[m.Face2]}
}

func cornerFacePositions(m CornerMap) (faces [3]Face, rows [3]int, cols [3]int) {
	return [3]Face{m.Face1, m.Face2, m.Face3}, [3]int{m.Row1, m.Row2, m.Row3}, [3]int{m.Col1, m.Col2, m.Col3}
}

func edgeFacePositions(m EdgeMap) (faces [2]Face, rows [2]int, cols [2]int) {
	return [2]Face{m.Face1, m.Face2}, [2]int{m.Row1, m.Row2}, [2]int{m.Col1, m.Col2}
}

// StateToFacelet renders a cube.State as a solved-size-3 facelet.Cube.
// Centers never move in a 3x3x3, so they are left at NewCube's defaults.
func StateToFacelet(s cube.State) *Cube {
	c := NewCube(3)
	cornerMaps := Get3x3CornerMappings()
	edgeMaps := Get3x3EdgeMappings()

	for slot := 0; slot < 8; slot++ {
		posMap := cornerMaps[cornerSlotOrder[slot]]
		cubie := int(s.CornerPerm[slot])
		orient := int(s.CornerOrient[slot])
		home := cornerHomeColors(cornerMaps[cornerSlotOrder[cubie]])
		faces, rows, cols := cornerFacePositions(posMap)
		for k := 0; k < 3; k++ {
			c.Faces[faces[k]][rows[k]][cols[k]] = home[(k+orient)%3]
		}
	}

	for slot := 0; slot < 12; slot++ {
		posMap := edgeMaps[edgeSlotOrder[slot]]
		cubie := int(s.EdgePerm[slot])
		orient := int(s.EdgeOrient[slot])
		home := edgeHomeColors(edgeMaps[edgeSlotOrder[cubie]])
		faces, rows, cols := edgeFacePositions(posMap)
		for k := 0; k < 2; k++ {
			c.Faces[faces[k]][rows[k]][cols[k]] = home[(k+orient)%2]
		}
	}

	return c
}

// FaceletToState reads a size-3 facelet.Cube back into a cube.State,
// identifying each slot's occupying cubie by its color set (not color
// order, since a scrambled cube's colors are exactly a permutation of
// the home tuple) and its orientation as the cyclic offset between the
// observed and home color tuples. Returns cube.ErrInvalidState if any
// slot's colors don't match any cubie exactly (e.g. a wildcard CFEN
// pattern was converted without being fully resolved first).
func FaceletToState(c *Cube) (cube.State, error) {
	if c.Size != 3 {
		return cube.State{}, fmt.Errorf("%w: facelet cube has size %d, only 3x3 converts to cube.State", cube.ErrInvalidState, c.Size)
	}

	var s cube.State
	cornerMaps := Get3x3CornerMappings()
	edgeMaps := Get3x3EdgeMappings()

	for slot := 0; slot < 8; slot++ {
		posMap := cornerMaps[cornerSlotOrder[slot]]
		faces, rows, cols := cornerFacePositions(posMap)
		observed := [3]Color{
			c.Faces[faces[0]][rows[0]][cols[0]],
			c.Faces[faces[1]][rows[1]][cols[1]],
			c.Faces[faces[2]][rows[2]][cols[2]],
		}

		cubie, orient, err := identifyCorner(cornerMaps, observed)
		if err != nil {
			return cube.State{}, fmt.Errorf("corner slot %d: %w", slot, err)
		}
		s.CornerPerm[slot] = int8(slotIndexOfCornerMapping(cubie))
		s.CornerOrient[slot] = int8(orient)
	}

	for slot := 0; slot < 12; slot++ {
		posMap := edgeMaps[edgeSlotOrder[slot]]
		faces, rows, cols := edgeFacePositions(posMap)
		observed := [2]Color{
			c.Faces[faces[0]][rows[0]][cols[0]],
			c.Faces[faces[1]][rows[1]][cols[1]],
		}

		cubie, orient, err := identifyEdge(edgeMaps, observed)
		if err != nil {
			return cube.State{}, fmt.Errorf("edge slot %d: %w", slot, err)
		}
		s.EdgePerm[slot] = int8(slotIndexOfEdgeMapping(cubie))
		s.EdgeOrient[slot] = int8(orient)
	}

	if err := s.Validate(); err != nil {
		return cube.State{}, err
	}
	return s, nil
}

// identifyCorner finds which mapping index's home color set matches
// observed (as a set) and the rotation offset that produces it.
func identifyCorner(cornerMaps []CornerMap, observed [3]Color) (mappingIndex, orient int, err error) {
	for idx, m := range cornerMaps {
		home := cornerHomeColors(m)
		if !sameColorSet(home[:], observed[:]) {
			continue
		}
		o := indexOf(home[:], observed[0])
		match := true
		for k := 1; k < 3; k++ {
			if home[(k+o)%3] != observed[k] {
				match = false
				break
			}
		}
		if match {
			return idx, o, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no corner cubie matches observed colors %v", cube.ErrInvalidState, observed)
}

func identifyEdge(edgeMaps []EdgeMap, observed [2]Color) (mappingIndex, orient int, err error) {
	for idx, m := range edgeMaps {
		home := edgeHomeColors(m)
		if !sameColorSet(home[:], observed[:]) {
			continue
		}
		o := indexOf(home[:], observed[0])
		if home[(1+o)%2] == observed[1] {
			return idx, o, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no edge cubie matches observed colors %v", cube.ErrInvalidState, observed)
}

func sameColorSet(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]Color(nil), a...)
	sb := append([]Color(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func indexOf(colors []Color, target Color) int {
	for i, c := range colors {
		if c == target {
			return i
		}
	}
	return 0
}

func slotIndexOfCornerMapping(mappingIndex int) int {
	for slot, idx := range cornerSlotOrder {
		if idx == mappingIndex {
			return slot
		}
	}
	return 0
}

func slotIndexOfEdgeMapping(mappingIndex int) int {
	for slot, idx := range edgeSlotOrder {
		if idx == mappingIndex {
			return slot
		}
	}
	return 0
}
