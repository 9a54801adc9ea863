package clauseset

// This file collects the small, free-standing predicates and
// accessors that the saturation loop calls on individual clauses —
// the "consumer contract" the original prover spreads across
// ccl_clauses.c. None of them touch set membership. Most only read a
// Clause's literals; DetachParents clears its parent list and
// MarkMaximalTerms rewrites its equational literals.

// LiteralNumber returns the number of literals in c.
func LiteralNumber(c *Clause) int { return len(c.Literals) }

// StandardWeight returns the sum of every literal's Literal.Weight
// (its argument term weights plus one for the predicate symbol), the
// default clause-evaluation function when nothing heuristic-specific
// is configured.
func StandardWeight(c *Clause) int64 {
	var w int64
	for _, l := range c.Literals {
		w += l.Weight()
	}
	return w
}

// IsUnit reports whether c has exactly one literal.
func IsUnit(c *Clause) bool { return len(c.Literals) == 1 }

// IsTrivial reports whether c contains a literal that is a reflexive,
// positive equation (t = t) — trivially true, so c as a whole is a
// tautology regardless of its other literals.
func IsTrivial(c *Clause) bool {
	for _, l := range c.Literals {
		if l.Positive && l.IsEquation() && l.LHS().Equal(l.RHS()) {
			return true
		}
	}
	return false
}

// IsTautology reports whether c contains complementary literals: the
// same atom occurring once positively and once negatively.
func IsTautology(c *Clause) bool {
	if IsTrivial(c) {
		return true
	}
	for i, l1 := range c.Literals {
		for _, l2 := range c.Literals[i+1:] {
			if l1.Positive != l2.Positive && literalAtomEqual(l1, l2) {
				return true
			}
		}
	}
	return false
}

func literalAtomEqual(a, b Literal) bool {
	if a.Predicate != b.Predicate || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(b.Args[i]) {
			return false
		}
	}
	return true
}

// IsEqDefinition reports whether c is a single positive equation with
// a variable on one side that does not occur on the other — the shape
// a definition-unfolding pass looks for.
func IsEqDefinition(c *Clause) bool {
	if !IsUnit(c) || !c.Literals[0].Positive || !c.Literals[0].IsEquation() {
		return false
	}
	lhs, rhs := c.Literals[0].LHS(), c.Literals[0].RHS()
	return (lhs.Var && !occursIn(lhs, rhs)) || (rhs.Var && !occursIn(rhs, lhs))
}

func occursIn(v, t *Term) bool {
	if t.Var {
		return t.Functor == v.Functor
	}
	for _, a := range t.Args {
		if occursIn(v, a) {
			return true
		}
	}
	return false
}

// DetachParents clears c's parent list, breaking the proof-DAG link
// without otherwise touching c.
func DetachParents(c *Clause) { c.Parents = nil }

// CollectVariables appends every variable occurring in c's literals
// to dst (duplicates included, left to right) and returns the result.
func CollectVariables(c *Clause, dst []string) []string {
	for _, l := range c.Literals {
		for _, a := range l.Args {
			dst = a.CollectVariables(dst)
		}
	}
	return dst
}

// AddSymbolDistribution adds the occurrence count of every function
// and predicate symbol in c to dist.
func AddSymbolDistribution(c *Clause, dist map[string]int64) {
	for _, l := range c.Literals {
		dist[l.Predicate]++
		for _, a := range l.Args {
			a.AddSymbolDistribution(dist)
		}
	}
}

// MarkMaximalTerms sets Oriented on every literal of c whose ordering
// under ord is decided (one side strictly greater than the other);
// literals left unresolved by ord are untouched. This is a coarse
// stand-in for full maximal-literal marking under KBO/LPO, sufficient
// for the demodulator-orientation cases this module exercises.
func MarkMaximalTerms(c *Clause, ord Orderer) {
	for i := range c.Literals {
		l := &c.Literals[i]
		if !l.IsEquation() {
			continue
		}
		switch {
		case ord.Compare(l.LHS(), l.RHS()) > 0:
			l.Oriented = true
		case ord.Compare(l.LHS(), l.RHS()) < 0:
			*l = l.Swapped()
			l.Oriented = true
		}
	}
}
