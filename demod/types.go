package demod

import (
	"github.com/gopherprover/saturate/clauseset"
	"github.com/gopherprover/saturate/term"
)

// bucketKey groups demodulator entries by the shape of the term they
// are indexed on: a query only ever needs to consider demodulators
// whose indexed side has the same top symbol and arity as some
// subterm of the query (a necessary condition for a match to exist).
type bucketKey struct {
	functor string
	arity   int
	isVar   bool
}

func keyOf(t *term.Term) bucketKey {
	if t.Var {
		return bucketKey{isVar: true}
	}
	return bucketKey{functor: t.Functor, arity: len(t.Args)}
}

// entry is one indexed (term, clause, side) triple.
type entry struct {
	term *term.Term
	cl   *clauseset.Clause
	side clauseset.Side
}

// TermIndex is a coarse discrimination-tree stand-in over unit
// equation demodulators, implementing clauseset.DemodIndex.
type TermIndex struct {
	buckets map[bucketKey][]entry
	size    int
}

// New returns an empty TermIndex.
func New() *TermIndex {
	return &TermIndex{buckets: make(map[bucketKey][]entry)}
}

// Len reports the number of indexed (term, clause, side) triples.
func (ix *TermIndex) Len() int { return ix.size }
