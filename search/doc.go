// Package search implements the two-phase IDA* search: phase 1 drives
// the cube into the G1 subgroup (corners and edges correctly oriented,
// the four UD-slice edges confined to their own slots), phase 2 solves
// the remainder using only the ten moves that preserve G1. Both phases
// share one iterative-deepening driver, widening the overall move-count
// bound until a solution is found or opt.MaxLen is exceeded.
package search
