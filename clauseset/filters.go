package clauseset

// collectDoomed walks the ring once, calling cond on every member,
// and returns the clauses it condemned without mutating the set while
// iterating — extracting mid-walk would rewrite the very pred/succ
// pointers the walk depends on.
func (s *ClauseSet) collectDoomed(cond func(*Clause) bool) []*Clause {
	var doomed []*Clause
	for c := s.anchor.succ; c != s.anchor; c = c.succ {
		if cond(c) {
			doomed = append(doomed, c)
		}
	}
	return doomed
}

// FilterTrivial extracts and returns every clause containing a
// reflexive positive equation.
func (s *ClauseSet) FilterTrivial() []*Clause {
	doomed := s.collectDoomed(IsTrivial)
	for _, c := range doomed {
		s.Extract(c)
	}
	return doomed
}

// FilterTautologies extracts and returns every tautologous clause
// (which subsumes the trivial case).
func (s *ClauseSet) FilterTautologies() []*Clause {
	doomed := s.collectDoomed(IsTautology)
	for _, c := range doomed {
		s.Extract(c)
	}
	return doomed
}

// DeleteNonUnits extracts and returns every clause with more than one
// literal.
func (s *ClauseSet) DeleteNonUnits() []*Clause {
	doomed := s.collectDoomed(func(c *Clause) bool { return !IsUnit(c) })
	for _, c := range doomed {
		s.Extract(c)
	}
	return doomed
}

// DeleteCopies extracts and discards every clause that is a literal
// duplicate of an earlier one in ring order. The earlier (kept) clause
// survives; if its parents are not a subset of the discarded copy's
// parents, the kept clause's own parents are detached — it is no
// longer backed by a derivation that also produced the copy, so it is
// treated as orphaned rather than silently keeping a parent set the
// copy doesn't corroborate. Returns the discarded clauses.
func (s *ClauseSet) DeleteCopies() []*Clause {
	kept := make([]*Clause, 0, s.members)
	var doomed []*Clause

	for c := s.anchor.succ; c != s.anchor; c = c.succ {
		earlier := findCopy(kept, c)
		if earlier == nil {
			kept = append(kept, c)
			continue
		}
		if !parentsSubset(earlier, c) {
			DetachParents(earlier)
		}
		doomed = append(doomed, c)
	}

	for _, c := range doomed {
		s.Extract(c)
	}
	return doomed
}

func findCopy(kept []*Clause, c *Clause) *Clause {
	for _, k := range kept {
		if literalsEqual(k.Literals, c.Literals) {
			return k
		}
	}
	return nil
}

// parentsSubset reports whether every parent of a also occurs among
// the parents of b (identity comparison). The empty set is a subset
// of any set, so a clause with no parents always passes.
func parentsSubset(a, b *Clause) bool {
	for _, pa := range a.Parents {
		found := false
		for _, pb := range b.Parents {
			if pa == pb {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func literalsEqual(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Sort drains every member clause and reinserts it in the order given
// by less, so that subsequent ring iteration visits clauses in that
// order. Reinsertion happens at the tail of an initially empty ring
// (rather than via an in-place ring sort), the same drain-and-rebuild
// approach the original container takes. Only the ring links are
// moved, so evaluation-tree and demod/feature-vector registrations
// are left as they were.
func (s *ClauseSet) Sort(less func(a, b *Clause) bool) {
	all := make([]*Clause, 0, s.members)
	for c := s.anchor.succ; c != s.anchor; c = c.succ {
		all = append(all, c)
	}
	sortClauses(all, less)

	for _, c := range all {
		s.extractRingOnly(c)
	}
	for _, c := range all {
		s.insertRingOnly(c)
	}
}

// extractRingOnly and insertRingOnly move a clause between its old
// and new ring position without touching eval/demod/fv bookkeeping,
// which Sort must leave untouched.
func (s *ClauseSet) extractRingOnly(c *Clause) {
	c.pred.succ = c.succ
	c.succ.pred = c.pred
}

func (s *ClauseSet) insertRingOnly(c *Clause) {
	c.succ = s.anchor
	c.pred = s.anchor.pred
	s.anchor.pred.succ = c
	s.anchor.pred = c
}

// sortClauses is a stable top-down merge sort: on ties the element
// from the left half is taken first, so clauses that compare equal
// under less keep their relative order.
func sortClauses(cs []*Clause, less func(a, b *Clause) bool) {
	if len(cs) < 2 {
		return
	}
	mid := len(cs) / 2
	left := append([]*Clause(nil), cs[:mid]...)
	right := append([]*Clause(nil), cs[mid:]...)
	sortClauses(left, less)
	sortClauses(right, less)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			cs[k] = right[j]
			j++
		} else {
			cs[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		cs[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		cs[k] = right[j]
		j++
		k++
	}
}
