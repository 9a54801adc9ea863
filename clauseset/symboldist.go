package clauseset

import "sort"

// SymbolDistribution returns the occurrence count of every function
// and predicate symbol across every clause currently in the set. This
// is the set-wide aggregate a feature-vector index's feature
// selection draws on, built from the per-clause
// AddSymbolDistribution.
func (s *ClauseSet) SymbolDistribution() map[string]int64 {
	dist := make(map[string]int64)
	for c := s.anchor.succ; c != s.anchor; c = c.succ {
		AddSymbolDistribution(c, dist)
	}
	return dist
}

// FunctionRanks returns every symbol in the set's distribution,
// ordered most frequent first (ties broken lexically for determinism)
// — the ranking a feature-vector index uses to choose which symbols
// get dedicated features.
func (s *ClauseSet) FunctionRanks() []string {
	dist := s.SymbolDistribution()
	ranks := make([]string, 0, len(dist))
	for sym := range dist {
		ranks = append(ranks, sym)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if dist[ranks[i]] != dist[ranks[j]] {
			return dist[ranks[i]] > dist[ranks[j]]
		}
		return ranks[i] < ranks[j]
	})
	return ranks
}

// MarkSOS sets IsGoal and IsSOS on every clause for which isGoal
// returns true, and IsSOS on every member clause that has a marked
// member among its Parents, transitively — the standard set-of-support
// propagation: a clause derived from support is itself support.
func (s *ClauseSet) MarkSOS(isGoal func(*Clause) bool) {
	sos := make(map[*Clause]bool)
	for c := s.anchor.succ; c != s.anchor; c = c.succ {
		if isGoal(c) {
			c.Flags = c.Flags.Set(IsGoal | IsSOS)
			sos[c] = true
		}
	}

	changed := true
	for changed {
		changed = false
		for c := s.anchor.succ; c != s.anchor; c = c.succ {
			if sos[c] {
				continue
			}
			for _, p := range c.Parents {
				if sos[p] {
					c.Flags = c.Flags.Set(IsSOS)
					sos[c] = true
					changed = true
					break
				}
			}
		}
	}
}
