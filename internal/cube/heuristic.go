package cube

// Heuristic is the admissible, consistent distance estimate search.go
// feeds to IDA*: the maximum of the three pattern database lookups.
// Each PDB underestimates the true distance to solved on its own
// projection (it ignores the other two coordinates entirely), so the
// true distance can never be less than any one of them, and taking the
// max keeps both properties.
type Heuristic struct {
	pdb *PDB
}

// NewHeuristic wraps a built PDB for use in search.
func NewHeuristic(pdb *PDB) *Heuristic {
	return &Heuristic{pdb: pdb}
}

// Evaluate returns max(CO, EO, CP) distance for s.
func (h *Heuristic) Evaluate(s State) int {
	co := h.pdb.CornerOrientDistance(s)
	eo := h.pdb.EdgeOrientDistance(s)
	cp := h.pdb.CornerPermDistance(s)
	best := co
	if eo > best {
		best = eo
	}
	if cp > best {
		best = cp
	}
	return best
}

// zeroHeuristic is h≡0, used by IDDFS so the same search loop in
// search.go can serve both algorithms.
type zeroHeuristic struct{}

func (zeroHeuristic) Evaluate(State) int { return 0 }

// evaluator is satisfied by both Heuristic and zeroHeuristic.
type evaluator interface {
	Evaluate(State) int
}
