// Package cubie implements the cubie-level cube model and move algebra
// that every other package in this module builds on: corner/edge
// permutation and orientation vectors, composition, inversion, and the
// eighteen basic face turns as concrete Cube values.
package cubie
