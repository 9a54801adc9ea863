package fvindex_test

import (
	"testing"

	"github.com/gopherprover/saturate/clauseset"
	"github.com/gopherprover/saturate/fvindex"
	"github.com/gopherprover/saturate/term"
	"github.com/stretchr/testify/require"
)

func TestFeatureIndex_RegisterCandidatesDelete(t *testing.T) {
	t.Parallel()

	ix := fvindex.New([]string{"f", "a"})

	small := clauseset.NewClause(1, term.NewAtom("p", true, term.NewFunc("a")))
	big := clauseset.NewClause(2, term.NewAtom("p", true, term.NewFunc("f", term.NewFunc("a"), term.NewFunc("a"))))

	ix.Register(small)
	ix.Register(big)
	require.Equal(t, 2, ix.Len())

	cands := ix.SubsumptionCandidates(small)
	require.Contains(t, cands, big)
	require.Contains(t, cands, small)

	cands2 := ix.SubsumptionCandidates(big)
	require.NotContains(t, cands2, small)

	ix.Delete(small)
	require.Equal(t, 1, ix.Len())
}
