// Package avltree implements a generic self-balancing AVL binary search
// tree used as the shared ordered-storage engine for the adaptive
// integer map's sparse representation and the per-slot evaluation
// trees. It is not safe for concurrent use.
//
// Reference: https://en.wikipedia.org/wiki/AVL_tree
package avltree

import "iter"

// Comparator orders two keys, returning <0, 0, or >0 the way
// strings.Compare does.
type Comparator[K any] func(a, b K) int

type node[K any, V any] struct {
	key    K
	val    V
	height int
	left   *node[K, V]
	right  *node[K, V]
}

// Tree is an ordered key→value store with unique keys and O(log n)
// Insert/Delete/Find, balanced by AVL rotations.
type Tree[K any, V any] struct {
	root *node[K, V]
	size int
	cmp  Comparator[K]
}

// New creates an empty tree ordered by cmp.
func New[K any, V any](cmp Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int { return t.size }

func height[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K any, V any](n *node[K, V]) int {
	return height(n.right) - height(n.left)
}

func updateHeight[K any, V any](n *node[K, V]) {
	l, r := height(n.left), height(n.right)
	if l > r {
		n.height = l + 1
	} else {
		n.height = r + 1
	}
}

func rotateLeft[K any, V any](n *node[K, V]) *node[K, V] {
	x := n.right
	n.right = x.left
	x.left = n
	updateHeight(n)
	updateHeight(x)
	return x
}

func rotateRight[K any, V any](n *node[K, V]) *node[K, V] {
	x := n.left
	n.left = x.right
	x.right = n
	updateHeight(n)
	updateHeight(x)
	return x
}

func rebalance[K any, V any](n *node[K, V]) *node[K, V] {
	updateHeight(n)
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.right) < 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case bf < -1:
		if balanceFactor(n.left) > 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	default:
		return n
	}
}

// Find returns the value bound to key, or (zero, false) if unbound.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.val, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is bound.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Find(key)
	return ok
}

// Insert binds key to val, returning the previous value and true if
// key was already bound (in which case the binding is overwritten).
func (t *Tree[K, V]) Insert(key K, val V) (V, bool) {
	var old V
	var existed bool
	t.root, old, existed = t.insert(t.root, key, val)
	if !existed {
		t.size++
	}
	return old, existed
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, val V) (*node[K, V], V, bool) {
	if n == nil {
		var zero V
		return &node[K, V]{key: key, val: val, height: 1}, zero, false
	}
	switch c := t.cmp(key, n.key); {
	case c < 0:
		child, old, existed := t.insert(n.left, key, val)
		n.left = child
		return rebalance(n), old, existed
	case c > 0:
		child, old, existed := t.insert(n.right, key, val)
		n.right = child
		return rebalance(n), old, existed
	default:
		old := n.val
		n.val = val
		return n, old, true
	}
}

func minNode[K any, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Delete unbinds key, returning its previous value and true if it was
// bound.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var val V
	var removed bool
	t.root, val, removed = t.delete(t.root, key)
	if removed {
		t.size--
	}
	return val, removed
}

func (t *Tree[K, V]) delete(n *node[K, V], key K) (*node[K, V], V, bool) {
	if n == nil {
		var zero V
		return nil, zero, false
	}
	switch c := t.cmp(key, n.key); {
	case c < 0:
		child, val, ok := t.delete(n.left, key)
		if !ok {
			var zero V
			return n, zero, false
		}
		n.left = child
		return rebalance(n), val, true
	case c > 0:
		child, val, ok := t.delete(n.right, key)
		if !ok {
			var zero V
			return n, zero, false
		}
		n.right = child
		return rebalance(n), val, true
	default:
		val := n.val
		if n.left == nil {
			return n.right, val, true
		}
		if n.right == nil {
			return n.left, val, true
		}
		succ := minNode(n.right)
		n.key, n.val = succ.key, succ.val
		right, _, _ := t.delete(n.right, succ.key)
		n.right = right
		return rebalance(n), val, true
	}
}

// Min returns the smallest key and its value, or (zero, zero, false)
// if the tree is empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := minNode(t.root)
	return n.key, n.val, true
}

func maxNode[K any, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Max returns the largest key and its value, or (zero, zero, false)
// if the tree is empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := maxNode(t.root)
	return n.key, n.val, true
}

// DeleteMin removes and returns the smallest entry.
func (t *Tree[K, V]) DeleteMin() (K, V, bool) {
	k, v, ok := t.Min()
	if !ok {
		return k, v, false
	}
	t.Delete(k)
	return k, v, true
}

// All walks the tree in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool
		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}
			if !walk(n.left) {
				return false
			}
			if !yield(n.key, n.val) {
				return false
			}
			return walk(n.right)
		}
		walk(t.root)
	}
}

// AscendRange walks entries with lo <= key <= hi in ascending order,
// pruning subtrees known to fall outside the range.
func (t *Tree[K, V]) AscendRange(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool
		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}
			if t.cmp(n.key, lo) > 0 {
				if !walk(n.left) {
					return false
				}
			}
			if t.cmp(n.key, lo) >= 0 && t.cmp(n.key, hi) <= 0 {
				if !yield(n.key, n.val) {
					return false
				}
			}
			if t.cmp(n.key, hi) < 0 {
				if !walk(n.right) {
					return false
				}
			}
			return true
		}
		walk(t.root)
	}
}
