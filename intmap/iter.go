package intmap

import "iter"

// iterInvalidatedMsg is the panic value raised by a live Iter sequence
// if the map is mutated (Ref/Assign/Del) while the sequence is still
// being drained. AdaptiveIntMap iteration tolerates no concurrent
// mutation, unlike clauseset's ring iteration which explicitly allows
// deleting the element just visited.
const iterInvalidatedMsg = "intmap: iterator used after map mutation"

// Iter returns the (key, value) pairs with lo <= key <= hi in
// ascending key order. The sequence is finite and not restartable.
// Any mutation of the map while the sequence is being consumed
// invalidates it; draining further panics rather than silently
// returning stale or corrupt data.
func (m *Map) Iter(lo, hi int) iter.Seq2[int, any] {
	startVersion := m.version

	checkLive := func() {
		if m.version != startVersion {
			panic(iterInvalidatedMsg)
		}
	}

	return func(yield func(int, any) bool) {
		switch m.kind {
		case kindEmpty:
			return
		case kindSingle:
			checkLive()
			if m.singleKey >= lo && m.singleKey <= hi {
				yield(m.singleKey, m.singleVal)
			}
		case kindDense:
			upper := hi
			if upper > m.maxKey {
				upper = m.maxKey
			}
			for i := max(lo, 0); i <= upper; i++ {
				checkLive()
				if i >= len(m.dense) {
					break
				}
				if m.dense[i] == nil {
					continue
				}
				if !yield(i, m.dense[i]) {
					return
				}
			}
		case kindSparse:
			upper := hi
			if upper > m.maxKey {
				upper = m.maxKey
			}
			for k, box := range m.sparse.AscendRange(lo, upper) {
				checkLive()
				if !yield(k, *box) {
					return
				}
			}
		default:
			panic("intmap: unknown representation")
		}
	}
}
