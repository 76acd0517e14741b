// Package coord implements the coordinate encodings the two-phase
// search operates on: twist, flip, slice_sorted, u_edges, d_edges,
// corners and ud_edges, each a bijection between a slice of cubie.Cube
// state and a small dense integer range suitable for table indexing.
package coord
