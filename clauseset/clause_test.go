package clauseset_test

import (
	"testing"

	"github.com/gopherprover/saturate/clauseset"
	"github.com/gopherprover/saturate/evaltree"
	"github.com/gopherprover/saturate/term"
	"github.com/stretchr/testify/require"
)

func unitEq(id uint64, lhs, rhs *term.Term, positive bool) *clauseset.Clause {
	return clauseset.NewClause(id, term.NewEquation(lhs, rhs, positive))
}

func withWeight(c *clauseset.Clause, w int64) *clauseset.Clause {
	c.Evaluations = []evaltree.Value{{Weight: w}}
	return c
}

func TestClauseSet_InsertFindBestExtract(t *testing.T) {
	t.Parallel()

	s := clauseset.New()
	a := withWeight(clauseset.NewClause(1, term.NewAtom("p", true, term.NewVar("X"))), 5)
	b := withWeight(clauseset.NewClause(2, term.NewAtom("q", true, term.NewVar("Y"))), 2)
	c := withWeight(clauseset.NewClause(3, term.NewAtom("r", true, term.NewVar("Z"))), 9)

	s.Insert(a)
	s.Insert(b)
	s.Insert(c)
	require.Equal(t, 3, s.Members())
	require.Equal(t, int64(3), s.Literals())

	best := s.FindBest(0)
	require.Same(t, b, best)

	require.Same(t, b, s.Find(2))
	extracted := s.Extract(b)
	require.Same(t, b, extracted)
	require.Nil(t, extracted.Set())
	require.Equal(t, 2, s.Members())
	require.Nil(t, s.Find(2))

	require.Same(t, a, s.FindBest(0))
}

func TestClauseSet_InsertAlreadyInSetPanics(t *testing.T) {
	t.Parallel()

	s1, s2 := clauseset.New(), clauseset.New()
	c := clauseset.NewClause(1)
	s1.Insert(c)

	require.Panics(t, func() { s2.Insert(c) })
}

func TestClauseSet_ExtractForeignPanics(t *testing.T) {
	t.Parallel()

	s1, s2 := clauseset.New(), clauseset.New()
	c := clauseset.NewClause(1)
	s1.Insert(c)

	require.Panics(t, func() { s2.Extract(c) })
}

func TestClauseSet_ExtractFirstRingOrder(t *testing.T) {
	t.Parallel()

	s := clauseset.New()
	a, b, c := clauseset.NewClause(1), clauseset.NewClause(2), clauseset.NewClause(3)
	s.Insert(a)
	s.Insert(b)
	s.Insert(c)

	require.Same(t, a, s.ExtractFirst())
	require.Same(t, b, s.ExtractFirst())
	require.Same(t, c, s.ExtractFirst())
	require.True(t, s.Empty())
	require.Nil(t, s.ExtractFirst())
}

type stubDemod struct {
	inserted, deleted int
}

func (d *stubDemod) Insert(t *clauseset.Term, c *clauseset.Clause, side clauseset.Side) { d.inserted++ }
func (d *stubDemod) Delete(t *clauseset.Term, c *clauseset.Clause)                      { d.deleted++ }

func TestClauseSet_IndexedInsertOrientedOnlyLeft(t *testing.T) {
	t.Parallel()

	demod := &stubDemod{}
	s := clauseset.New(clauseset.WithDemodIndex(demod))

	x := term.NewVar("X")
	f := term.NewFunc("f", x)
	eq := term.NewEquation(f, x, true)
	eq.Oriented = true
	c := clauseset.NewClause(1, eq)

	s.IndexedInsert(c)
	require.Equal(t, 1, demod.inserted)
	require.True(t, c.Flags.Has(clauseset.DIndexed))

	s.Extract(c)
	require.Equal(t, 1, demod.deleted)
}

func TestClauseSet_IndexedInsertUnorientedBothSides(t *testing.T) {
	t.Parallel()

	demod := &stubDemod{}
	s := clauseset.New(clauseset.WithDemodIndex(demod))

	lhs, rhs := term.NewFunc("a"), term.NewFunc("b")
	c := clauseset.NewClause(1, term.NewEquation(lhs, rhs, true))

	s.IndexedInsert(c)
	require.Equal(t, 2, demod.inserted)

	s.Extract(c)
	require.Equal(t, 2, demod.deleted)
}

func TestClauseSet_IndexedInsertRequiresDemodAndUnit(t *testing.T) {
	t.Parallel()

	s := clauseset.New()
	c := unitEq(1, term.NewFunc("a"), term.NewFunc("b"), true)
	require.Panics(t, func() { s.IndexedInsert(c) })

	demod := &stubDemod{}
	s2 := clauseset.New(clauseset.WithDemodIndex(demod))
	multi := clauseset.NewClause(2, term.NewAtom("p", true), term.NewAtom("q", true))
	require.Panics(t, func() { s2.IndexedInsert(multi) })
}

func TestClauseSet_DateAdvancesOnMutation(t *testing.T) {
	t.Parallel()

	s := clauseset.New()
	d0 := s.Date()
	s.Insert(clauseset.NewClause(1))
	d1 := s.Date()
	require.Greater(t, d1, d0)

	s2 := clauseset.New()
	require.Equal(t, s2.Date(), clauseset.DateMax([]*clauseset.ClauseSet{s, s2}, 2))
}
