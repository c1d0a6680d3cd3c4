package cube

// Move is one of the 18 face turns in the quarter-turn metric, encoded
// as a small integer tag usable as a table index. The zero value
// is MoveU, not a sentinel "no move" — callers that need "no previous
// move" (the root of a search) use a separate bool, see search.go.
type Move int

// The 18 moves, in the canonical order searches expand children: face
// U, D, L, R, F, B, each as clockwise quarter turn, counter-clockwise
// quarter turn (the "prime" / inverse), then double turn.
const (
	MoveU Move = iota
	MoveUPrime
	MoveU2
	MoveD
	MoveDPrime
	MoveD2
	MoveL
	MoveLPrime
	MoveL2
	MoveR
	MoveRPrime
	MoveR2
	MoveF
	MoveFPrime
	MoveF2
	MoveB
	MoveBPrime
	MoveB2
	numMoves
)

// AllMoves is the canonical move order used for search expansion and
// PDB construction.
var AllMoves = func() []Move {
	moves := make([]Move, numMoves)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}()

// Face returns which of the six faces a move turns.
func (m Move) Face() int {
	return int(m) / 3
}

// faceNames indexes by Move.Face(), in the same U,D,L,R,F,B order as
// the Move constants.
var faceNames = [6]string{"U", "D", "L", "R", "F", "B"}

// moveDef is the precomputed table entry for one move: how it permutes
// corner and edge slots, the twist/flip each destination slot gains,
// and the inverse permutations cached at build time so Apply never
// recomputes them.
type moveDef struct {
	cornerPerm    [8]int8
	cornerPermInv [8]int8
	cornerTwist   [8]int8 // indexed by destination slot
	edgePerm      [12]int8
	edgePermInv   [12]int8
	edgeFlip      [12]int8 // indexed by destination slot
}

var moveTable [numMoves]moveDef

// cycleSpec describes one face's clockwise quarter turn as two 4-cycles
// (corners and edges) plus the orientation deltas gained by the piece
// moving into each successive slot of the cycle. Only the six
// clockwise primitives are specified this way; the double and
// counter-clockwise tables are derived by composition in init.
type cycleSpec struct {
	cornerCycle  [4]int8
	cornerTwists [4]int8 // twists[i] = delta gained moving cornerCycle[i] -> cornerCycle[i+1]
	edgeCycle    [4]int8
	edgeFlip     bool // true if all four edges in the cycle flip
}

// The standard cubie-level move behavior: U/D turns permute without
// touching any orientation; L/R and F/B always twist the corners they
// move; F/B additionally flip every edge they move, L/R never do. Each
// cornerCycle lists slots in the order the clockwise turn carries
// cubies (URF -> UFL under U, and so on), and the twist deltas
// alternate between 1 and 2 around each cycle (adjacent corners in a
// face cycle always twist oppositely), which is what keeps
// sum(corner_orient) mod 3 invariant by construction. The deltas and
// their phase are fixed by the facelet geometry: an orientation is the
// cyclic offset of a slot's observed colors against the occupying
// cubie's home colors, so each cycle's twists were read off by turning
// a solved facelet cube once and identifying the moved corners, the
// same procedure the conversion tests automate.
var cycleSpecs = [6]cycleSpec{
	{ // U
		cornerCycle:  [4]int8{URF, UFL, ULB, UBR},
		cornerTwists: [4]int8{0, 0, 0, 0},
		edgeCycle:    [4]int8{UR, UF, UL, UB},
		edgeFlip:     false,
	},
	{ // D
		cornerCycle:  [4]int8{DFR, DRB, DBL, DLF},
		cornerTwists: [4]int8{0, 0, 0, 0},
		edgeCycle:    [4]int8{DF, DR, DB, DL},
		edgeFlip:     false,
	},
	{ // L
		cornerCycle:  [4]int8{UFL, DLF, DBL, ULB},
		cornerTwists: [4]int8{1, 2, 1, 2},
		edgeCycle:    [4]int8{UL, FL, DL, BL},
		edgeFlip:     false,
	},
	{ // R
		cornerCycle:  [4]int8{URF, UBR, DRB, DFR},
		cornerTwists: [4]int8{2, 1, 2, 1},
		edgeCycle:    [4]int8{UR, BR, DR, FR},
		edgeFlip:     false,
	},
	{ // F
		cornerCycle:  [4]int8{URF, DFR, DLF, UFL},
		cornerTwists: [4]int8{1, 2, 1, 2},
		edgeCycle:    [4]int8{UF, FR, DF, FL},
		edgeFlip:     true,
	},
	{ // B
		cornerCycle:  [4]int8{ULB, DBL, DRB, UBR},
		cornerTwists: [4]int8{1, 2, 1, 2},
		edgeCycle:    [4]int8{UB, BL, DB, BR},
		edgeFlip:     true,
	},
}

func init() {
	for face, spec := range cycleSpecs {
		cw := buildFromCycles(spec)
		fillInverses(&cw)
		two := composeDefs(cw, cw)
		fillInverses(&two)
		three := composeDefs(two, cw)
		fillInverses(&three)

		base := face * 3
		moveTable[base+0] = cw    // clockwise
		moveTable[base+1] = three // counter-clockwise == three clockwise turns
		moveTable[base+2] = two   // double
	}
}

// buildFromCycles turns a declarative cycleSpec into a full moveDef
// acting as identity everywhere outside the two 4-cycles.
func buildFromCycles(spec cycleSpec) moveDef {
	var d moveDef
	for i := range d.cornerPerm {
		d.cornerPerm[i] = int8(i)
	}
	for i := range d.edgePerm {
		d.edgePerm[i] = int8(i)
	}
	for i := 0; i < 4; i++ {
		src := spec.cornerCycle[i]
		dst := spec.cornerCycle[(i+1)%4]
		d.cornerPerm[src] = dst
		d.cornerTwist[dst] = spec.cornerTwists[i]
	}
	for i := 0; i < 4; i++ {
		src := spec.edgeCycle[i]
		dst := spec.edgeCycle[(i+1)%4]
		d.edgePerm[src] = dst
		if spec.edgeFlip {
			d.edgeFlip[dst] = 1
		}
	}
	return d
}

func fillInverses(d *moveDef) {
	for i, dst := range d.cornerPerm {
		d.cornerPermInv[dst] = int8(i)
	}
	for i, dst := range d.edgePerm {
		d.edgePermInv[dst] = int8(i)
	}
}

// composeDefs returns the moveDef equivalent to applying a then b, by
// running applyDef against the solved state and reading back the
// resulting deltas. M2 and M' are derived this way from the six
// hand-specified clockwise primitives, once at init, then stored as
// flat tables of their own. The composed state's perm arrays record,
// per slot, which slot's cubie ended up there, which is the inverse of
// the src->dst map a moveDef carries, so they are flipped back before
// storing; the orientation arrays are already the twist/flip gained at
// each destination slot and are stored as-is.
func composeDefs(a, b moveDef) moveDef {
	afterA := applyDef(Solved(), a)
	afterB := applyDef(afterA, b)
	var d moveDef
	for dst, src := range afterB.CornerPerm {
		d.cornerPerm[src] = int8(dst)
	}
	for dst, src := range afterB.EdgePerm {
		d.edgePerm[src] = int8(dst)
	}
	d.cornerTwist = afterB.CornerOrient
	d.edgeFlip = afterB.EdgeOrient
	return d
}

// applyDef writes, for each slot i, the cubie that was at the slot the
// move carries into i, adding the twist/flip the move assigns to i. It
// is parameterized directly on a moveDef so composeDefs can use it
// before the public move table exists.
func applyDef(s State, m moveDef) State {
	var r State
	for i := 0; i < 8; i++ {
		j := m.cornerPermInv[i]
		r.CornerPerm[i] = s.CornerPerm[j]
		r.CornerOrient[i] = (s.CornerOrient[j] + m.cornerTwist[i]) % 3
	}
	for i := 0; i < 12; i++ {
		j := m.edgePermInv[i]
		r.EdgePerm[i] = s.EdgePerm[j]
		r.EdgeOrient[i] = (s.EdgeOrient[j] + m.edgeFlip[i]) % 2
	}
	return r
}

// Apply returns the state reached by turning m from s. It cannot fail
// on a legal state: the move tables preserve every legal-cube
// invariant by construction.
func Apply(s State, m Move) State {
	return applyDef(s, moveTable[m])
}

// ApplySequence applies a sequence of moves left to right.
func ApplySequence(s State, moves []Move) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}

// Inverse returns the move that undoes m: clockwise <-> counter-clockwise,
// doubles are their own inverse.
func Inverse(m Move) Move {
	switch int(m) % 3 {
	case 0:
		return m + 1
	case 1:
		return m - 1
	default:
		return m
	}
}

// SameFace reports whether two moves turn the same face, used by the
// search's move-pruning rule.
func SameFace(a, b Move) bool {
	return a.Face() == b.Face()
}
