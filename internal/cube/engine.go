package cube

import "errors"

// Engine bundles a built pattern database with the search entry point,
// so callers above this package (internal/cli, internal/web) never
// have to know how the heuristic is assembled.
type Engine struct {
	pdb       *PDB
	heuristic *Heuristic
}

// NewEngine builds all three pattern databases and returns an Engine
// ready to solve. Building is the expensive one-time cost (tens of
// thousands of BFS visits); Solve itself is cheap by comparison.
func NewEngine(progress BuildProgress) *Engine {
	pdb := BuildPDB(progress)
	return &Engine{pdb: pdb, heuristic: NewHeuristic(pdb)}
}

// Solve finds a move sequence that brings state to solved. state is
// trusted as a legal cube position; the boundary converter
// (facelet.FaceletToState) is where validation happens, not here. The
// only error path is a zero-value Engine that never had its tables
// built.
func (e *Engine) Solve(state State, algo Algorithm, opts Options) (Result, error) {
	if e.pdb == nil || e.heuristic == nil {
		return Result{}, errors.New("engine has no pattern databases; construct it with NewEngine")
	}
	return Solve(state, algo, opts, e.heuristic), nil
}

// Heuristic exposes the engine's heuristic directly, for callers (like
// the pdb CLI command) that want to report h(state) without running a
// full search.
func (e *Engine) Heuristic() *Heuristic {
	return e.heuristic
}

// PDB exposes the engine's built pattern database directly, for
// callers that want the per-table CO/EO/CP breakdown behind
// Heuristic.Evaluate rather than just the combined max.
func (e *Engine) PDB() *PDB {
	return e.pdb
}
