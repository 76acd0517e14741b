// Package cube implements Kociemba's two-phase algorithm for solving
// the Rubik's cube: facelet parsing, the cubie-level move algebra,
// coordinate encodings, move and pruning tables, a two-phase IDA*
// search, and a symmetry-seeded multi-worker solver.
//
// Subpackages:
//
//	cubie/    — cubie-level cube state and move algebra
//	facelet/  — 54-sticker facelet string <-> cubie.Cube
//	coord/    — coordinate encodings (twist, flip, slice, permutations)
//	symmetry/ — whole-cube U-D axis rotation group, used to seed workers
//	movetable/— per-coordinate move tables
//	prune/    — admissible pruning tables built by breadth-first search
//	tables/   — lazy, process-wide, optionally disk-cached table set
//	search/   — the two-phase IDA* search itself
//	solver/   — public Solve entry point and worker coordination
//	scramble/ — random scramble generation
//
// See cmd/cube for a CLI and cmd/cubeserver for an HTTP facade.
package cube
