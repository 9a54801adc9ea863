// Package demod implements a perfect-discrimination-tree-shaped index
// of unit-equation demodulators, keyed by the top symbol and arity of
// the side term being indexed.
//
// The real E prover variant (PDT/ccl_pdtrees.c) builds a full
// path-indexing discrimination tree that can answer "does any
// indexed term match a subterm of this term" in time roughly
// proportional to the query term's size rather than the index's.
// Building that requires a unification/matching engine outside this
// module's scope; this package keeps the same external shape —
// Insert/Delete of (term, clause, side) positions and a Candidates
// lookup — but buckets candidates coarsely by (top symbol, arity)
// rather than compiling a shared automaton over argument positions.
// Any real demodulation attempt still has to try matching each
// candidate in the returned bucket; what this index saves is having
// to try every demodulator in the set regardless of shape.
package demod
