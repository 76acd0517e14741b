// Package solver is the public entry point: it turns a facelet string
// into a move sequence by fanning phase-1 search out across a small
// fixed pool of symmetry-seeded workers, sharing the best solution
// found so far, and honoring a caller deadline that excludes any
// one-time table construction.
package solver
