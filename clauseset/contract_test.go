package clauseset_test

import (
	"testing"

	"github.com/gopherprover/saturate/clauseset"
	"github.com/gopherprover/saturate/term"
	"github.com/stretchr/testify/require"
)

func TestContract_LiteralNumberAndWeight(t *testing.T) {
	t.Parallel()

	c := clauseset.NewClause(1,
		term.NewAtom("p", true, term.NewVar("X")),
		term.NewAtom("q", true, term.NewFunc("a")),
	)
	require.Equal(t, 2, clauseset.LiteralNumber(c))
	require.Equal(t, int64(4), clauseset.StandardWeight(c))
}

func TestContract_IsUnit(t *testing.T) {
	t.Parallel()

	unit := clauseset.NewClause(1, term.NewAtom("p", true))
	multi := clauseset.NewClause(2, term.NewAtom("p", true), term.NewAtom("q", true))
	require.True(t, clauseset.IsUnit(unit))
	require.False(t, clauseset.IsUnit(multi))
}

func TestContract_IsTrivial(t *testing.T) {
	t.Parallel()

	x := term.NewVar("X")
	trivial := clauseset.NewClause(1, term.NewEquation(x, x, true))
	notTrivial := clauseset.NewClause(2, term.NewEquation(x, term.NewFunc("a"), true))
	require.True(t, clauseset.IsTrivial(trivial))
	require.False(t, clauseset.IsTrivial(notTrivial))
}

func TestContract_IsTautology(t *testing.T) {
	t.Parallel()

	x := term.NewVar("X")
	taut := clauseset.NewClause(1, term.NewAtom("p", true, x), term.NewAtom("p", false, x))
	nonTaut := clauseset.NewClause(2, term.NewAtom("p", true, x), term.NewAtom("q", false, x))
	require.True(t, clauseset.IsTautology(taut))
	require.False(t, clauseset.IsTautology(nonTaut))
}

func TestContract_IsEqDefinition(t *testing.T) {
	t.Parallel()

	x := term.NewVar("X")
	def := clauseset.NewClause(1, term.NewEquation(x, term.NewFunc("a"), true))
	notDef := clauseset.NewClause(2, term.NewEquation(term.NewFunc("a"), term.NewFunc("b"), true))
	require.True(t, clauseset.IsEqDefinition(def))
	require.False(t, clauseset.IsEqDefinition(notDef))
}

func TestContract_DetachParents(t *testing.T) {
	t.Parallel()

	c := clauseset.NewClause(1)
	c.Parents = []*clauseset.Clause{clauseset.NewClause(2)}
	clauseset.DetachParents(c)
	require.Nil(t, c.Parents)
}

func TestContract_CollectVariables(t *testing.T) {
	t.Parallel()

	x, y := term.NewVar("X"), term.NewVar("Y")
	c := clauseset.NewClause(1, term.NewAtom("p", true, x, y, x))
	require.Equal(t, []string{"X", "Y", "X"}, clauseset.CollectVariables(c, nil))
}

func TestContract_AddSymbolDistribution(t *testing.T) {
	t.Parallel()

	c := clauseset.NewClause(1, term.NewAtom("p", true, term.NewFunc("a"), term.NewFunc("a")))
	dist := make(map[string]int64)
	clauseset.AddSymbolDistribution(c, dist)
	require.Equal(t, int64(1), dist["p"])
	require.Equal(t, int64(2), dist["a"])
}

func TestContract_MarkMaximalTerms(t *testing.T) {
	t.Parallel()

	small := term.NewFunc("a")
	big := term.NewFunc("f", term.NewVar("X"))
	c := clauseset.NewClause(1, term.NewEquation(small, big, true))

	clauseset.MarkMaximalTerms(c, term.WeightOrderer{})
	require.True(t, c.Literals[0].Oriented)
	require.True(t, c.Literals[0].LHS().Equal(big))
	require.True(t, c.Literals[0].RHS().Equal(small))
}
