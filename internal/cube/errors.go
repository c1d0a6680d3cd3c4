package cube

import "errors"

// Sentinel errors for the core engine, wrapped with %w at the point of
// detection and matched by callers with errors.Is. No custom error
// types beyond these.
var (
	// ErrInvalidMove is returned by notation parsing for an unrecognized
	// move token. The core itself never produces this error.
	ErrInvalidMove = errors.New("invalid move notation")

	// ErrInvalidState is returned by the boundary converter
	// (internal/facelet) when a facelet cube does not correspond to a legal
	// cubie state. The core assumes every State it is given already
	// satisfies State.Validate and does not re-check it on the hot path.
	ErrInvalidState = errors.New("invalid cube state")

	// ErrSearchExhausted names the condition Solve reports as
	// Result.Status == Exhausted: no node was pruned above the threshold,
	// so raising it cannot help. Solve reports it through the status and
	// does not return or wrap this error value itself.
	ErrSearchExhausted = errors.New("search exhausted without finding a solution")
)
