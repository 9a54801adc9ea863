package intmap

import "github.com/gopherprover/saturate/internal/avltree"

// Density thresholds governing representation switches. They form a
// hysteresis band (MinTreeDensity < MaxTreeDensity): a single mutation
// can never cross both thresholds at once, so insert/delete cannot
// oscillate between representations.
const (
	// MaxTreeDensity: a sparse tree is promoted to a dense array once
	// entryNo*MaxTreeDensity exceeds maxKey.
	MaxTreeDensity = 2
	// MinTreeDensity: a dense array is demoted to a sparse tree once
	// entryNo*MinTreeDensity drops below maxKey.
	MinTreeDensity = 1

	// initialArrayCap is the capacity a fresh dense array is allocated
	// with; it grows by doubling thereafter.
	initialArrayCap = 32
)

type kind uint8

const (
	kindEmpty kind = iota
	kindSingle
	kindDense
	kindSparse
)

// Map is a finite partial function from nonnegative integers to
// opaque values (any nil value is indistinguishable from "unbound").
// The zero value is a ready-to-use empty map.
//
// Map is not safe for concurrent use, matching the single-threaded
// saturation loop it supports.
type Map struct {
	kind    kind
	version uint64 // bumped on every mutation; invalidates live iterators

	// kindSingle
	singleKey int
	singleVal any

	// kindDense
	dense  []any
	maxKey int

	// kindSparse. Values are stored as *any boxes rather than bare
	// `any` so that Ref can hand out a stable pointer into the tree:
	// AVL rotations copy the box pointer around, never the box itself.
	sparse  *avltree.Tree[int, *any]
	entryNo int
}

func intCmp(a, b int) int { return a - b }

// New returns an empty Map, equivalent to the zero value.
func New() *Map {
	return &Map{}
}

// Len reports the number of bound keys.
func (m *Map) Len() int {
	switch m.kind {
	case kindEmpty:
		return 0
	case kindSingle:
		return 1
	case kindDense:
		return m.entryNo
	case kindSparse:
		return m.sparse.Len()
	default:
		panic("intmap: unknown representation")
	}
}

// MaxKey returns the largest bound key and true, or (0, false) if the
// map is empty.
func (m *Map) MaxKey() (int, bool) {
	switch m.kind {
	case kindEmpty:
		return 0, false
	case kindSingle:
		return m.singleKey, true
	case kindDense, kindSparse:
		return m.maxKey, true
	default:
		panic("intmap: unknown representation")
	}
}
