package signature_test

import (
	"testing"

	"github.com/gopherprover/saturate/signature"
	"github.com/stretchr/testify/require"
)

func TestSignature_DeclareLookupSymbols(t *testing.T) {
	t.Parallel()

	var sig signature.Signature
	sig.Declare(signature.Symbol{Name: "f", Arity: 2})
	sig.Declare(signature.Symbol{Name: "a", Arity: 0})
	sig.Declare(signature.Symbol{Name: "p", Arity: 1, Predicate: true})
	sig.Declare(signature.Symbol{Name: "=", Arity: 2, Predicate: true, Internal: true})

	sym, ok := sig.Lookup("f")
	require.True(t, ok)
	require.Equal(t, 2, sym.Arity)

	_, ok = sig.Lookup("missing")
	require.False(t, ok)

	names := make([]string, 0)
	for _, s := range sig.Symbols() {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"f", "p"}, names)
}
