package evaltree

import "github.com/gopherprover/saturate/internal/avltree"

// Value is an evaluation key: a heuristic score attached to a clause,
// ordered lexicographically by (Weight, Priority). Lower values sort
// first — find_smallest returns the clause judged most promising.
type Value struct {
	Weight   int64
	Priority int64
}

// Compare orders two Values the way strings.Compare orders strings:
// <0 if v sorts before other, 0 if equal, >0 otherwise.
func (v Value) Compare(other Value) int {
	switch {
	case v.Weight < other.Weight:
		return -1
	case v.Weight > other.Weight:
		return 1
	case v.Priority < other.Priority:
		return -1
	case v.Priority > other.Priority:
		return 1
	default:
		return 0
	}
}

// Clause is the minimal capability evaltree needs from a clause: a
// stable identifier used to tie-break entries that share a Value, so
// that (Value, Clause) pairs stay unique in the underlying multiset.
type Clause interface {
	EvalID() uint64
}

type entryKey struct {
	val Value
	id  uint64
}

func compareEntryKeys(a, b entryKey) int {
	if c := a.val.Compare(b.val); c != 0 {
		return c
	}
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	default:
		return 0
	}
}

// Tree is a balanced ordered multiset of (Value, Clause) pairs.
type Tree[C Clause] struct {
	tree *avltree.Tree[entryKey, C]
}

// New returns an empty Tree.
func New[C Clause]() *Tree[C] {
	return &Tree[C]{tree: avltree.New[entryKey, C](compareEntryKeys)}
}

// Len reports the number of pairs stored.
func (t *Tree[C]) Len() int { return t.tree.Len() }
