// Package cube is the admissible-heuristic search engine: a cubie-level
// 3x3x3 state model, the 18 quarter-turn-metric moves as an exact group
// action, pattern-database construction, and IDA*/IDDFS search driven by
// the PDB heuristic. Nothing in this package touches facelets, CFEN,
// CLI flags or HTTP — those live above it, in internal/facelet,
// internal/cfen, internal/cli and internal/web.
package cube

import "fmt"

// Corner slot indices. Fixed once and never renumbered: every move
// table in move.go is hand-written against this exact ordering, and the
// property tests in move_test.go (apply^4 == solved, commutativity of
// opposite faces, ...) are what catch a numbering mistake.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slot indices, same convention.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// CornerSlotNames and EdgeSlotNames label the slot indices above, in
// the same order as the const blocks, for display surfaces that report
// per-slot state.
var CornerSlotNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}
var EdgeSlotNames = [12]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

// State is an immutable cubie-level description of a 3x3x3 cube. Values
// are small fixed-size arrays, so they are cheap to copy and comparable
// with ==.
type State struct {
	CornerPerm   [8]int8
	CornerOrient [8]int8
	EdgePerm     [12]int8
	EdgeOrient   [12]int8
}

// Solved returns the identity state: every cubie in its home slot with
// zero twist/flip.
func Solved() State {
	var s State
	for i := range s.CornerPerm {
		s.CornerPerm[i] = int8(i)
	}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = int8(i)
	}
	return s
}

// Equal reports whether two states describe the same cube.
func (s State) Equal(o State) bool {
	return s == o
}

// IsSolved reports whether s is the solved state.
func (s State) IsSolved() bool {
	return s == Solved()
}

// Hash returns a deterministic integer over the four arrays, for use
// only by IDDFS's optional visited set (IDA* must not use one — see
// search.go).
func (s State) Hash() uint64 {
	const prime = 1099511628211
	h := uint64(14695981039346656037)
	mix := func(v int8) {
		h ^= uint64(uint8(v))
		h *= prime
	}
	for _, v := range s.CornerPerm {
		mix(v)
	}
	for _, v := range s.CornerOrient {
		mix(v)
	}
	for _, v := range s.EdgePerm {
		mix(v)
	}
	for _, v := range s.EdgeOrient {
		mix(v)
	}
	return h
}

// Validate checks the four legal-cube invariants from the data model:
// corner_perm and edge_perm are permutations of their domains, corner
// orientation sums to 0 mod 3, edge orientation sums to 0 mod 2, and
// corner/edge permutation parity agree. Returns ErrInvalidState wrapping
// a description of the first violation found.
func (s State) Validate() error {
	if !isPermutation(s.CornerPerm[:], 8) {
		return fmt.Errorf("%w: corner_perm is not a permutation of 0..7", ErrInvalidState)
	}
	if !isPermutation(s.EdgePerm[:], 12) {
		return fmt.Errorf("%w: edge_perm is not a permutation of 0..11", ErrInvalidState)
	}
	var coSum int
	for _, v := range s.CornerOrient {
		if v < 0 || v > 2 {
			return fmt.Errorf("%w: corner_orient value %d out of range", ErrInvalidState, v)
		}
		coSum += int(v)
	}
	if coSum%3 != 0 {
		return fmt.Errorf("%w: sum(corner_orient) = %d is not 0 mod 3", ErrInvalidState, coSum)
	}
	var eoSum int
	for _, v := range s.EdgeOrient {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: edge_orient value %d out of range", ErrInvalidState, v)
		}
		eoSum += int(v)
	}
	if eoSum%2 != 0 {
		return fmt.Errorf("%w: sum(edge_orient) = %d is not 0 mod 2", ErrInvalidState, eoSum)
	}
	if permParity(s.CornerPerm[:]) != permParity(s.EdgePerm[:]) {
		return fmt.Errorf("%w: corner and edge permutation parity disagree", ErrInvalidState)
	}
	return nil
}

func isPermutation(p []int8, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || int(v) >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// permParity returns 0 for an even permutation, 1 for odd, counted by
// transposition parity of the cycle decomposition.
func permParity(p []int8) int {
	visited := make([]bool, len(p))
	parity := 0
	for i := range p {
		if visited[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !visited[j] {
			visited[j] = true
			j = int(p[j])
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}
