package term_test

import (
	"testing"

	"github.com/gopherprover/saturate/term"
	"github.com/stretchr/testify/require"
)

func TestTerm_StringAndEqual(t *testing.T) {
	t.Parallel()

	x := term.NewVar("X")
	a := term.NewFunc("a")
	fxa := term.NewFunc("f", x, a)

	require.Equal(t, "f(X,a)", fxa.String())
	require.True(t, fxa.Equal(term.NewFunc("f", term.NewVar("X"), term.NewFunc("a"))))
	require.False(t, fxa.Equal(term.NewFunc("f", term.NewVar("Y"), term.NewFunc("a"))))
}

func TestTerm_CollectVariables(t *testing.T) {
	t.Parallel()

	x, y := term.NewVar("X"), term.NewVar("Y")
	tm := term.NewFunc("f", x, term.NewFunc("g", y, x))

	vars := tm.CollectVariables(nil)
	require.Equal(t, []string{"X", "Y", "X"}, vars)
}

func TestTerm_AddSymbolDistribution(t *testing.T) {
	t.Parallel()

	tm := term.NewFunc("f", term.NewFunc("a"), term.NewFunc("a"))
	dist := make(map[string]int64)
	tm.AddSymbolDistribution(dist)
	require.Equal(t, int64(1), dist["f"])
	require.Equal(t, int64(2), dist["a"])
}

func TestLiteral_EquationAccessors(t *testing.T) {
	t.Parallel()

	lhs, rhs := term.NewVar("X"), term.NewFunc("a")
	lit := term.NewEquation(lhs, rhs, true)

	require.True(t, lit.IsEquation())
	require.True(t, lit.LHS().Equal(lhs))
	require.True(t, lit.RHS().Equal(rhs))
	require.False(t, lit.Negation().Positive)
}

func TestWeightOrderer_Compare(t *testing.T) {
	t.Parallel()

	var ord term.Orderer = term.WeightOrderer{}
	small := term.NewFunc("a")
	big := term.NewFunc("f", term.NewVar("X"), term.NewVar("Y"))

	require.Positive(t, ord.Compare(big, small))
	require.Negative(t, ord.Compare(small, big))
}
