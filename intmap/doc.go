// Package intmap implements an adaptive mapping from nonnegative
// integer keys to opaque values.
//
// Internally the map is one of four representations — empty,
// singleton, dense array, or sparse tree — chosen automatically from
// the density of the key space (bound entries per unit of key range).
// Early in a monotonically-increasing-key workload a dense array wins;
// once keys become sparse a tree wins. The map switches between the
// two with hysteresis so that no single insertion or deletion can
// immediately undo the other direction's switch.
//
// This is the Go counterpart of the E theorem prover's IntMap
// (BASICS/clb_intmap.c): a general-purpose building block used
// wherever the prover needs O(1)-amortized lookup keyed by a
// monotonically increasing identifier (clause idents, in this module's
// case clauseset.ClauseSet's id→*Clause registry) without paying for a
// dense array once identifiers become sparse under deletion.
package intmap
