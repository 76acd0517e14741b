// Package facelet converts between the 54-character sticker-string
// representation of a cube (spec.md's "facelet format") and the
// cubie-level model in package cubie, and validates facelet strings.
package facelet
