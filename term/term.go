package term

import "strings"

// Term is a first-order term: either a variable (Args == nil, Var
// true) or a function/constant symbol applied to Args (constants are
// functions of arity zero).
type Term struct {
	Var     bool
	Functor string
	Args    []*Term
}

// NewVar returns a variable term named name.
func NewVar(name string) *Term {
	return &Term{Var: true, Functor: name}
}

// NewFunc returns a function/constant term.
func NewFunc(functor string, args ...*Term) *Term {
	return &Term{Functor: functor, Args: args}
}

// Arity returns len(Args); always 0 for a variable.
func (t *Term) Arity() int {
	if t == nil {
		return 0
	}
	return len(t.Args)
}

// String renders the term in prefix functor(arg1,arg2) notation.
func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Var || len(t.Args) == 0 {
		return t.Functor
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Functor + "(" + strings.Join(parts, ",") + ")"
}

// Equal reports structural equality.
func (t *Term) Equal(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Var != other.Var || t.Functor != other.Functor || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// CollectVariables appends the names of every variable occurring in t
// (with repetition) to dst and returns the extended slice.
func (t *Term) CollectVariables(dst []string) []string {
	if t == nil {
		return dst
	}
	if t.Var {
		return append(dst, t.Functor)
	}
	for _, a := range t.Args {
		dst = a.CollectVariables(dst)
	}
	return dst
}

// AddSymbolDistribution increments dist[symbol] for every
// function/predicate symbol occurring in t (variables excluded).
func (t *Term) AddSymbolDistribution(dist map[string]int64) {
	if t == nil || t.Var {
		return
	}
	dist[t.Functor]++
	for _, a := range t.Args {
		a.AddSymbolDistribution(dist)
	}
}

// Weight is a simple structural size: 1 per variable, 1 plus the sum
// of argument weights per function application. It stands in for the
// real term bank's configurable symbol/variable weighting.
func (t *Term) Weight() int64 {
	if t == nil {
		return 0
	}
	if t.Var {
		return 1
	}
	var sum int64 = 1
	for _, a := range t.Args {
		sum += a.Weight()
	}
	return sum
}
