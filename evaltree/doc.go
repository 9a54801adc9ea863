// Package evaltree implements an ordered multiset of
// (evaluation → clause) pairs supporting O(log n) insert, extract, and
// find-smallest — the per-slot index that backs a clause set's
// best-first clause selection.
//
// Evaluations are ordered lexicographically by (Weight, Priority);
// because several clauses can legitimately share an evaluation, pair
// uniqueness is restored by tie-breaking on clause identity, matching
// the original EvalTree's "tie-break on object identity" contract.
package evaltree
