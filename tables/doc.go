// Package tables is the lazy singleton lifecycle for every move and
// pruning table the solver needs: build once per process, optionally
// cache to disk as raw little-endian bytes, and load instead of
// rebuilding on every subsequent call within the same process.
package tables
