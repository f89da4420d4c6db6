package bst

import (
	"cmp"
	"fmt"
)

// node is a key/value binding with up to two child subtrees. Nodes are never modified
// after construction, so a node may be shared between any number of trees.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

func leaf[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

func (n *node[K, V]) withLeft(left *node[K, V]) *node[K, V] {
	return &node[K, V]{key: n.key, value: n.value, left: left, right: n.right}
}

func (n *node[K, V]) withRight(right *node[K, V]) *node[K, V] {
	return &node[K, V]{key: n.key, value: n.value, left: n.left, right: right}
}

func (n *node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

func (n *node[K, V]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("⟨%v:%v⟩", n.key, n.value)
}

// --- Insert ----------------------------------------------------------------

// insert returns a copy of n with a new leaf for key somewhere below it. The sibling
// subtree of every node on the way down is shared with n.
func (n *node[K, V]) insert(key K, value V) (*node[K, V], error) {
	switch cmp.Compare(key, n.key) {
	case 1:
		if n.right == nil {
			return n.withRight(leaf(key, value)), nil
		}
		right, err := n.right.insert(key, value)
		if err != nil {
			return nil, err
		}
		return n.withRight(right), nil
	case -1:
		if n.left == nil {
			return n.withLeft(leaf(key, value)), nil
		}
		left, err := n.left.insert(key, value)
		if err != nil {
			return nil, err
		}
		return n.withLeft(left), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
}

// --- Lookup ----------------------------------------------------------------

// find walks down from n and returns the node carrying key, or nil.
// It is legal to call find on a nil node.
func (n *node[K, V]) find(key K) *node[K, V] {
	for n != nil {
		switch cmp.Compare(key, n.key) {
		case 0:
			return n
		case -1:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// --- Delete ----------------------------------------------------------------

// remove returns a copy of n with key removed from one of its subtrees.
//
// Removal is directed by the parent: a node never removes itself, but replaces the
// child carrying key with that child's replacement subtree. Callers are responsible
// for never calling remove on the node carrying key.
func (n *node[K, V]) remove(key K) (*node[K, V], error) {
	c := cmp.Compare(key, n.key)
	assertThat(c != 0, "missed step: asked to remove %v from itself", n)
	child := n.right
	if c < 0 {
		child = n.left
	}
	if child == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoKeyFound, key)
	}
	var cow *node[K, V]
	if cmp.Compare(key, child.key) == 0 {
		tracer().Debugf("delete: removing %s, child of %s", child, n)
		cow = child.replacement()
	} else {
		var err error
		if cow, err = child.remove(key); err != nil {
			return nil, err
		}
	}
	if c < 0 {
		return n.withLeft(cow), nil
	}
	return n.withRight(cow), nil
}

// replacement computes the subtree to take the place of n, once n is removed from a tree.
func (n *node[K, V]) replacement() *node[K, V] {
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	return n.spliceOutSuccessor()
}

// spliceOutSuccessor returns a substitute for n, which must have two children.
// The substitute carries the binding of n's in-order successor, shares n.left and
// holds n.right with the successor spliced out.
func (n *node[K, V]) spliceOutSuccessor() *node[K, V] {
	assertThat(n.left != nil && n.right != nil, "successor splice for node %s with less than 2 children", n)
	succ := n.right.leftmost()
	tracer().Debugf("delete: in-order successor of %s is %s", n, succ)
	var right *node[K, V]
	if succ == n.right {
		right = succ.right
	} else {
		var err error
		right, err = n.right.remove(succ.key)
		assertThat(err == nil, "cannot splice out successor %s: %v", succ, err)
	}
	return &node[K, V]{key: succ.key, value: succ.value, left: n.left, right: right}
}

// --- Helpers ---------------------------------------------------------------

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
