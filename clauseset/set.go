package clauseset

import (
	"sync/atomic"

	"github.com/gopherprover/saturate/evaltree"
	"github.com/gopherprover/saturate/intmap"
)

// Side selects which argument of a unit equation a demodulator
// position is keyed on.
type Side int

// LeftSide and RightSide name the two possible demodulator keys of an
// equation l = r. An oriented equation (l ≻ r under the term
// ordering) is only ever indexed on LeftSide.
const (
	LeftSide Side = iota
	RightSide
)

// DemodIndex is the contract a ClauseSet uses to talk to an external
// perfect-discrimination tree of unit-equation demodulators. It is
// implemented by package demod; ClauseSet only depends on this
// interface, never on a concrete index.
type DemodIndex interface {
	Insert(t *Term, c *Clause, side Side)
	Delete(t *Term, c *Clause)
}

// FVIndex is the contract a ClauseSet uses to talk to an external
// feature-vector index accelerating forward/backward subsumption. It
// is implemented by package fvindex.
type FVIndex interface {
	Register(c *Clause)
	Delete(c *Clause)
}

// SetOption configures a ClauseSet at construction time.
type SetOption func(*ClauseSet)

// WithDemodIndex attaches a demodulator index; IndexedInsert panics if
// called on a set without one.
func WithDemodIndex(idx DemodIndex) SetOption {
	return func(s *ClauseSet) { s.demodIndex = idx }
}

// WithFVIndex attaches a feature-vector index. Clauses flagged
// SIndexed are expected to have been registered with it by the
// caller; ClauseSet only deregisters on extract.
func WithFVIndex(idx FVIndex) SetOption {
	return func(s *ClauseSet) { s.fvIndex = idx }
}

// ClauseSet is a doubly-linked, anchor-sentineled ring of clauses with
// one OrderedEvalTree per evaluation slot, kept in lockstep with ring
// membership, plus optional demodulator and feature-vector indices.
// The zero value is not usable; construct with New.
type ClauseSet struct {
	anchor      *Clause
	members     int
	literalNo   int64
	evalIndices []*evaltree.Tree[*Clause]
	evalNo      int
	demodIndex  DemodIndex
	fvIndex     FVIndex
	date        uint64
	byID        *intmap.Map
}

var globalTick uint64

func nextTick() uint64 { return atomic.AddUint64(&globalTick, 1) }

// New returns an empty ClauseSet, optionally wired to a demodulator
// and/or feature-vector index.
func New(opts ...SetOption) *ClauseSet {
	anchor := &Clause{}
	anchor.pred, anchor.succ = anchor, anchor

	s := &ClauseSet{
		anchor: anchor,
		byID:   intmap.New(),
		date:   nextTick(), // one tick past creation time (§4.3)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Empty reports whether the set has no members.
func (s *ClauseSet) Empty() bool { return s.members == 0 }

// Members returns the number of clauses currently in the set.
func (s *ClauseSet) Members() int { return s.members }

// Literals returns the sum of literal counts over all member clauses.
func (s *ClauseSet) Literals() int64 { return s.literalNo }

// EvalNo returns the number of occupied evaluation slots.
func (s *ClauseSet) EvalNo() int { return s.evalNo }

// Date returns the set's current logical timestamp.
func (s *ClauseSet) Date() uint64 { return s.date }

func (s *ClauseSet) touch() { s.date = nextTick() }

// DateMax returns the largest Date() among the first limit sets in
// demods (or all of them if limit exceeds len(demods)). Forward
// simplification uses this to skip a rewrite attempt against a set of
// demodulators that has not changed since the last attempt.
func DateMax(demods []*ClauseSet, limit int) uint64 {
	if limit > len(demods) {
		limit = len(demods)
	}
	var max uint64
	for _, s := range demods[:limit] {
		if s.date > max {
			max = s.date
		}
	}
	return max
}

func (s *ClauseSet) slot(i int) *evaltree.Tree[*Clause] {
	for len(s.evalIndices) <= i {
		s.evalIndices = append(s.evalIndices, evaltree.New[*Clause]())
	}
	return s.evalIndices[i]
}

// Insert appends c as the last clause in the ring and registers its
// evaluations in the matching slots. Panics if c already belongs to a
// set.
func (s *ClauseSet) Insert(c *Clause) {
	if c.set != nil {
		panic(errAlreadyInSet)
	}

	c.succ = s.anchor
	c.pred = s.anchor.pred
	s.anchor.pred.succ = c
	s.anchor.pred = c
	c.set = s

	s.members++
	s.literalNo += int64(LiteralNumber(c))
	s.byID.Assign(int(c.ID), c)

	for i, e := range c.Evaluations {
		if err := s.slot(i).Insert(e, c); err != nil {
			panic(err)
		}
	}
	if len(c.Evaluations) > s.evalNo {
		s.evalNo = len(c.Evaluations)
	}
	s.touch()
}

// IndexedInsert inserts a unit-equation clause and additionally
// registers it with the set's demodulator index: the left side always,
// and the right side too unless the equation is oriented. Panics if
// the set has no demodulator index or c is not a unit equation.
func (s *ClauseSet) IndexedInsert(c *Clause) {
	if s.demodIndex == nil {
		panic(errIndexedInsertNoDemod)
	}
	if !IsUnit(c) || !c.Literals[0].IsEquation() {
		panic(errIndexedInsertNotUnit)
	}

	s.Insert(c)

	eq := c.Literals[0]
	s.demodIndex.Insert(eq.LHS(), c, LeftSide)
	if !eq.Oriented {
		s.demodIndex.Insert(eq.RHS(), c, RightSide)
	}
	c.Flags = c.Flags.Set(DIndexed)
}

// Extract removes c from the set — deregistering it from the
// demodulator/feature-vector indices first if flagged, then from
// every evaluation slot, then unlinking it from the ring — and
// returns it, now owned by the caller. Panics if c does not belong to
// this set.
func (s *ClauseSet) Extract(c *Clause) *Clause {
	if c.set != s {
		panic(errNotInThisSet)
	}

	if c.Flags.Has(DIndexed) {
		eq := c.Literals[0]
		s.demodIndex.Delete(eq.LHS(), c)
		if !eq.Oriented {
			s.demodIndex.Delete(eq.RHS(), c)
		}
		c.Flags = c.Flags.Clear(DIndexed)
	}
	if c.Flags.Has(SIndexed) {
		s.fvIndex.Delete(c)
		c.Flags = c.Flags.Clear(SIndexed)
	}

	for i, e := range c.Evaluations {
		if _, ok := s.slot(i).Extract(e, c); !ok {
			panic(errEvalExtractMissing)
		}
	}

	c.pred.succ = c.succ
	c.succ.pred = c.pred
	s.literalNo -= int64(LiteralNumber(c))
	s.members--
	s.byID.Del(int(c.ID))

	c.set = nil
	c.pred, c.succ = nil, nil
	s.touch()
	return c
}

// ExtractFirst removes and returns the first clause in ring order, or
// nil if the set is empty.
func (s *ClauseSet) ExtractFirst() *Clause {
	if s.Empty() {
		return nil
	}
	return s.Extract(s.anchor.succ)
}

// Delete extracts and discards c; in Go this simply drops the last
// reference, there being no manual ClauseFree.
func (s *ClauseSet) Delete(c *Clause) {
	s.Extract(c)
}

// FindBest returns the clause with the smallest evaluation in the
// given slot, without extracting it, or nil if the slot is empty.
func (s *ClauseSet) FindBest(slot int) *Clause {
	if slot >= len(s.evalIndices) {
		return nil
	}
	c, ok := s.evalIndices[slot].FindSmallest()
	if !ok {
		return nil
	}
	return c
}

// Find returns the member clause with the given identifier, or nil.
// Backed by an AdaptiveIntMap keyed by clause ID, so lookup stays
// cheap even as the prover accumulates and discards clauses with
// sparse, non-contiguous identifiers over a long search.
func (s *ClauseSet) Find(id uint64) *Clause {
	v := s.byID.Get(int(id))
	if v == nil {
		return nil
	}
	return v.(*Clause)
}
