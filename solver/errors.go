package solver

import "fmt"

// ErrTimedOutWithoutSolution is reserved for a deadline firing before
// any worker finds a solution at all; Solve never returns it in normal
// operation, since Result.Status distinguishes this case without an
// error (spec: an expired deadline is a best-effort result, not a
// failure).
var ErrTimedOutWithoutSolution = fmt.Errorf("solver: deadline expired before any worker found a solution")
