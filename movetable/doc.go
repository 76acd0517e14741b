// Package movetable builds the per-coordinate move tables the search
// uses instead of full cubie.Cube multiplication during IDA*: for each
// coordinate value and each of the eighteen moves, the coordinate value
// reached by applying that move. Built once at startup (package tables)
// and otherwise read-only.
package movetable
