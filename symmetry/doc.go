// Package symmetry implements the cube-rotation symmetries used to
// diversify the solver's worker seeds (spec.md §4.7) and to reduce the
// phase-1 flip/slice pruning table to symmetry classes (class.go):
// conjugating a cube state and a found move sequence by a whole-cube
// rotation lets independent workers search equivalent, differently-framed
// problems.
//
// Scope decision (see DESIGN.md): only the four-element cyclic group of
// 90-degree rotations about the U-D axis is implemented, rather than
// the full sixteen-element D4h group spec.md §4.3 describes. Rotations
// that also swap U and D, or that are improper (reflections), require
// extended "mirrored orientation" bookkeeping that this package does not
// implement. The U-D-axis rotation keeps U and D fixed, so corner
// orientation values carry over unchanged under conjugation; an edge's
// orientation flips only where a slice edge meets a UD-layer slot or a
// UD-layer edge meets a slice slot (see Conjugate).
package symmetry
