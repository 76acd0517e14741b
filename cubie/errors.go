package cubie

import "fmt"

// Sentinel errors, matching the wrap-with-fmt.Errorf convention used
// throughout this module's packages.
var (
	ErrInvalidMove = fmt.Errorf("cubie: invalid move string")
	ErrNotSolvable = fmt.Errorf("cubie: cube state is not solvable")
)

// Err wraps a sentinel with the offending value for error messages,
// while keeping errors.Is(err, sentinel) true for callers.
func Err(sentinel error, detail string) error {
	return fmt.Errorf("%w: %q", sentinel, detail)
}
