package intmap

import "github.com/gopherprover/saturate/internal/avltree"

// Get returns the value bound to key, or nil if key is unbound. Get
// never mutates the representation.
//
// Panics if key < 0.
func (m *Map) Get(key int) any {
	if key < 0 {
		panic(ErrNegativeKey)
	}
	switch m.kind {
	case kindEmpty:
		return nil
	case kindSingle:
		if key == m.singleKey {
			return m.singleVal
		}
		return nil
	case kindDense:
		if key > m.maxKey || key >= len(m.dense) {
			return nil
		}
		return m.dense[key]
	case kindSparse:
		if key > m.maxKey {
			return nil
		}
		box, ok := m.sparse.Find(key)
		if !ok {
			return nil
		}
		return *box
	default:
		panic("intmap: unknown representation")
	}
}

// switchToArray reports whether entries bindings with the given
// maximum key should be represented as a dense array.
func switchToArray(maxKey, entries int) bool {
	return entries*MaxTreeDensity > maxKey
}

// switchToTree reports whether entries bindings with the given
// maximum key should be represented as a sparse tree.
func switchToTree(maxKey, entries int) bool {
	return entries*MinTreeDensity < maxKey
}

func (m *Map) growDense(upTo int) {
	if upTo < len(m.dense) {
		return
	}
	capacity := len(m.dense)
	if capacity == 0 {
		capacity = initialArrayCap
	}
	for capacity <= upTo {
		capacity *= 2
	}
	grown := make([]any, capacity)
	copy(grown, m.dense)
	m.dense = grown
}

func newSparseTree() *avltree.Tree[int, *any] {
	return avltree.New[int, *any](intCmp)
}

func sparseMaxKey(t *avltree.Tree[int, *any]) int {
	k, _, _ := t.Max()
	return k
}

func (m *Map) denseToSparse() {
	tree := newSparseTree()
	maxKey := 0
	for i, v := range m.dense {
		if v != nil {
			val := v
			tree.Insert(i, &val)
			maxKey = i
		}
	}
	m.kind = kindSparse
	m.sparse = tree
	m.dense = nil
	m.entryNo = 0
	m.maxKey = maxKey
}

func (m *Map) sparseToDense() {
	maxKey := sparseMaxKey(m.sparse)
	m.dense = nil
	m.growDense(maxKey)
	entryNo := 0
	for k, box := range m.sparse.All() {
		m.dense[k] = *box
		entryNo++
	}
	m.kind = kindDense
	m.entryNo = entryNo
	m.maxKey = maxKey
	m.sparse = nil
}

// Ref returns a pointer to the value cell bound to key, creating a
// null binding (and, if necessary, switching representation) if key
// is absent. The returned pointer is valid until the map's
// representation next changes (any further Ref/Assign/Del may
// invalidate it).
//
// Panics if key < 0.
func (m *Map) Ref(key int) *any {
	if key < 0 {
		panic(ErrNegativeKey)
	}
	m.version++

	switch m.kind {
	case kindEmpty:
		m.kind = kindSingle
		m.singleKey = key
		m.singleVal = nil
		return &m.singleVal

	case kindSingle:
		if key == m.singleKey {
			return &m.singleVal
		}
		oldKey, oldVal := m.singleKey, m.singleVal
		maxKey := max(key, oldKey)
		if switchToArray(maxKey, 2) {
			m.kind = kindDense
			m.dense = nil
			m.growDense(maxKey)
			m.dense[oldKey] = oldVal
			m.maxKey = maxKey
			m.entryNo = 2
			ref := &m.dense[key]
			return ref
		}
		m.kind = kindSparse
		m.sparse = newSparseTree()
		m.sparse.Insert(oldKey, &oldVal)
		box := new(any)
		m.sparse.Insert(key, box)
		m.maxKey = maxKey
		return box

	case kindDense:
		if key > m.maxKey && switchToTree(key, m.entryNo+1) {
			m.denseToSparse()
			return m.Ref(key)
		}
		m.growDense(key)
		if m.dense[key] == nil {
			m.entryNo++
		}
		if key > m.maxKey {
			m.maxKey = key
		}
		return &m.dense[key]

	case kindSparse:
		if box, ok := m.sparse.Find(key); ok {
			return box
		}
		if switchToArray(max(m.maxKey, key), m.sparse.Len()+1) {
			box := new(any)
			m.sparse.Insert(key, box)
			if key > m.maxKey {
				m.maxKey = key
			}
			m.sparseToDense()
			return &m.dense[key]
		}
		box := new(any)
		m.sparse.Insert(key, box)
		if key > m.maxKey {
			m.maxKey = key
		}
		return box

	default:
		panic("intmap: unknown representation")
	}
}

// Assign binds key to val, overriding any previous binding.
//
// Panics if key < 0.
func (m *Map) Assign(key int, val any) {
	*m.Ref(key) = val
}

// Del unbinds key and returns its previous value, or nil if key was
// unbound. Arrays never shrink their physical capacity; a dense array
// may be demoted to a sparse tree once density drops, and a sparse
// tree never promotes on delete.
func (m *Map) Del(key int) any {
	m.version++

	switch m.kind {
	case kindEmpty:
		return nil

	case kindSingle:
		if key != m.singleKey {
			return nil
		}
		val := m.singleVal
		m.kind = kindEmpty
		m.singleVal = nil
		return val

	case kindDense:
		if key > m.maxKey || key >= len(m.dense) || m.dense[key] == nil {
			return nil
		}
		val := m.dense[key]
		m.dense[key] = nil
		m.entryNo--
		if switchToTree(m.maxKey, m.entryNo) {
			m.denseToSparse()
		}
		return val

	case kindSparse:
		box, ok := m.sparse.Delete(key)
		if !ok {
			return nil
		}
		val := *box
		if key == m.maxKey {
			m.maxKey = sparseMaxKey(m.sparse)
		}
		return val

	default:
		panic("intmap: unknown representation")
	}
}
