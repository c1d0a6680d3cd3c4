package cube

// Verify replays moves from state and reports whether the result is
// solved. The scenario tests and the solve CLI's --verify flag run
// this against search results, so a Found status need not be taken
// on faith from the search's own bookkeeping.
func Verify(state State, moves []Move) bool {
	return ApplySequence(state, moves).IsSolved()
}
