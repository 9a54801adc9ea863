package fvindex

import "github.com/gopherprover/saturate/clauseset"

// vector is a clause's feature vector: occurrence counts for a fixed,
// externally-chosen list of tracked symbols, plus literal count as a
// final feature (a clause with fewer literals than the subsumer
// cannot be subsumed by it).
type vector []int64

func computeVector(c *clauseset.Clause, symbols []string) vector {
	dist := make(map[string]int64)
	clauseset.AddSymbolDistribution(c, dist)

	v := make(vector, len(symbols)+1)
	for i, sym := range symbols {
		v[i] = dist[sym]
	}
	v[len(symbols)] = int64(clauseset.LiteralNumber(c))
	return v
}

// dominates reports whether every feature of v is <= the
// corresponding feature of other — the necessary condition for a
// clause with vector v to possibly subsume a clause with vector
// other.
func (v vector) dominates(other vector) bool {
	for i := range v {
		if v[i] > other[i] {
			return false
		}
	}
	return true
}

type registration struct {
	cl  *clauseset.Clause
	vec vector
}

// FeatureIndex is a feature-vector subsumption pre-filter over a
// clause population, implementing clauseset.FVIndex.
type FeatureIndex struct {
	symbols []string
	entries []registration
}

// New returns an empty FeatureIndex tracking the given symbols. The
// symbol list is typically the output of ClauseSet.FunctionRanks,
// truncated to the most discriminating few.
func New(symbols []string) *FeatureIndex {
	return &FeatureIndex{symbols: append([]string(nil), symbols...)}
}

// Len reports the number of registered clauses.
func (ix *FeatureIndex) Len() int { return len(ix.entries) }
