// Package fvindex implements a feature-vector index accelerating
// forward and backward subsumption checks over a clause set.
//
// The real E prover variant (ccl_fvindexing.c) precomputes a fixed
// set of symbol-occurrence-count features per clause, stores clauses
// in a tree indexed by those feature vectors, and prunes a subsumption
// search to only the clauses whose feature vector cannot rule out a
// match (a clause can only subsume another if every one of its
// features is <= the candidate's). This package keeps that pruning
// contract — Register/Delete/SubsumptionCandidates — but with a flat slice
// keyed by computed feature vectors rather than a compiled tree, since
// the clause populations this module is exercised against are small
// enough that linear feature comparison is not the bottleneck a real
// prover's index exists to remove.
package fvindex
