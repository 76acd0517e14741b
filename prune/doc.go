// Package prune builds admissible distance-to-solved lower bounds for
// the two-phase search: two joint tables for phase 1 (twist+slice,
// flip+slice) and, for phase 2, two independent tables (corners,
// ud_edges) plus one joint table (corners+slice-edge order), all three
// restricted to the ten phase-2 moves, each built once by a
// breadth-first search outward from the solved coordinate over the
// corresponding move table.
//
// Scope decision (see DESIGN.md): original_source packs these tables
// as 2-bit depth-mod-3 values to shrink the symmetry-reduced tables
// spec.md §4.5 describes. This module's symmetry subsystem is scoped
// down (see package symmetry): only the flip+slice table is reduced to
// classes, under a four-element rotation group, and the other tables
// cover their full coordinate spaces; at that size a plain byte-per-entry
// depth array is simpler and safer to get right without being able to
// run the code, while still satisfying the raw-bytes, no-header on-disk
// format spec.md §6 requires.
package prune
