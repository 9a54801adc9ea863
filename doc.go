// Package saturate implements the data layer of a saturation-based
// theorem prover's main loop: the container structures that hold
// clauses waiting to be processed and let the loop repeatedly pick
// the best one, index it for rewriting, and discard the ones later
// proven redundant.
//
// Subpackages, in roughly the order a clause moves through them:
//
//	term/      — minimal first-order term/literal representation
//	evaltree/  — ordered multiset of (evaluation, clause) pairs
//	intmap/    — adaptive integer-keyed map (dense array or sparse tree)
//	clauseset/ — the clause ring itself: insert, find-best, extract, filter, sort
//	demod/     — demodulator lookup by indexed term shape
//	fvindex/   — feature-vector subsumption pre-filter
//	signature/ — symbol table for equality-axiom generation
//	eqaxioms/  — reflexivity/symmetry/transitivity + substitutivity axiom printer
//
// internal/avltree provides the self-balancing tree both intmap and
// evaltree build their ordered storage on.
package saturate
