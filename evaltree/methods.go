package evaltree

// Insert adds the (value, clause) pair. It returns ErrAlreadyPresent
// if the exact pair (same value, same clause identity) is already
// stored — that should never happen for a well-formed clause set, so
// callers are expected to treat it as a programmer error.
func (t *Tree[C]) Insert(value Value, clause C) error {
	key := entryKey{val: value, id: clause.EvalID()}
	if _, existed := t.tree.Insert(key, clause); existed {
		return ErrAlreadyPresent
	}
	return nil
}

// Extract removes and returns the (value, clause) pair, or the zero
// clause and false if it was not present.
func (t *Tree[C]) Extract(value Value, clause C) (C, bool) {
	key := entryKey{val: value, id: clause.EvalID()}
	return t.tree.Delete(key)
}

// FindSmallest returns the clause with the smallest evaluation value,
// or the zero value and false if the tree is empty. It never mutates
// the tree.
func (t *Tree[C]) FindSmallest() (C, bool) {
	_, c, ok := t.tree.Min()
	return c, ok
}

// Free discards all stored pairs. The tree is empty and reusable
// afterward.
func (t *Tree[C]) Free() {
	*t = *New[C]()
}
