// Package clauseset implements the saturation loop's central
// container: a doubly-linked, anchor-sentineled ring of clauses kept
// in lockstep with one OrderedEvalTree per evaluation slot, and
// optionally with a demodulator index and a feature-vector index.
//
// Every other loop in a saturation prover (given-clause selection,
// forward/backward simplification, subsumption) drives its requests
// through a ClauseSet: insert a derived clause, find_best under a
// chosen heuristic, extract it for processing, delete clauses a
// filtering pass has condemned. The set's bookkeeping — ring
// pointers, per-slot eval trees, demod/feature-vector membership
// flags — is kept consistent by construction: insert and extract are
// the only legal ways to change membership, and every mutation that
// changes one side of an invariant also changes the other.
//
// Ported from the E theorem prover's CLAUSES/ccl_clausesets.c. The
// clause/literal/term representation, term ordering, discrimination
// tree, and feature-vector index are, in the original prover, separate
// modules consumed only through narrow interfaces; this package keeps
// that boundary (DemodIndex, FVIndex) but is given minimal concrete
// collaborators (term, demod, fvindex) so it can be built and tested
// standalone.
//
// ClauseSet carries no internal synchronization: the saturation loop
// it supports is single-threaded per search, and the original prover
// treats every core operation as atomic only between operations, never
// within one. Callers that need to share a ClauseSet across goroutines
// must add their own locking at the boundary.
package clauseset
