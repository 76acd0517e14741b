// Package scramble generates random, non-reducible move sequences for
// test scrambles: no move repeats its predecessor's face, and opposite
// faces (which commute) are only applied in one canonical order,
// mirroring the redundant-move filter search.legal applies during the
// solve itself.
package scramble
