package clauseset

import (
	"github.com/gopherprover/saturate/evaltree"
	"github.com/gopherprover/saturate/term"
)

// Literal is the clause layer's literal type, re-exported from
// package term so callers need not import both packages for the
// common case of building clauses.
type Literal = term.Literal

// Term is re-exported from package term for the same reason.
type Term = term.Term

// Orderer is re-exported from package term so MarkMaximalTerms's
// signature doesn't force callers to import term just to name the
// type.
type Orderer = term.Orderer

// Flags is a bitset of clause properties. The zero value has none
// set.
type Flags uint32

// Clause property flags. DeleteClause, DIndexed, SIndexed, and IsSOS
// are the set named by the saturation core's consumer contract;
// IsGoal supports MarkSOS without requiring a real TPTP role field.
const (
	DeleteClause Flags = 1 << iota
	DIndexed
	SIndexed
	IsSOS
	IsGoal
)

// Has reports whether every bit in want is set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Set returns f with every bit in add set.
func (f Flags) Set(add Flags) Flags { return f | add }

// Clear returns f with every bit in remove cleared.
func (f Flags) Clear(remove Flags) Flags { return f &^ remove }

// Clause is a disjunction of literals plus the bookkeeping a
// saturation loop hangs off it: an ordered sequence of evaluations (one
// per configured heuristic, index-aligned with the owning set's eval
// slots), a flag set, a parent list for proof-DAG tracking, and ring
// linkage to at most one owning ClauseSet.
type Clause struct {
	ID          uint64
	Literals    []Literal
	Evaluations []evaltree.Value
	Flags       Flags
	Parents     []*Clause

	set        *ClauseSet
	pred, succ *Clause
}

// NewClause returns a freshly allocated, unowned clause. Evaluations
// starts empty; callers append one evaltree.Value per configured
// heuristic before Insert so that eval-slot index i lines up with
// Evaluations[i].
func NewClause(id uint64, literals ...Literal) *Clause {
	return &Clause{ID: id, Literals: literals}
}

// EvalID implements evaltree.Clause, giving OrderedEvalTree a stable
// tie-break identity.
func (c *Clause) EvalID() uint64 { return c.ID }

// Set returns the ClauseSet c currently belongs to, or nil.
func (c *Clause) Set() *ClauseSet { return c.set }
