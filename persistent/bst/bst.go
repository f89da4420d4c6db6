package bst

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  fresh copies of nodes.

- Nodes are never modified after construction. Every operation which "changes" a tree
  re-creates the nodes on the path from the root to the point of change, bottom-up,
  while the recursion unwinds.

- A new modified incarnation of a tree always is reflected by a new tree.root.

*/

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/npillmayer/pbst/maybe"
)

// ErrDuplicateKey is returned by Insert if a key is already present in a tree.
var ErrDuplicateKey = errors.New("bst: duplicate key")

// ErrNoKeyFound is returned by Lookup and Delete if a key is not present in a tree.
var ErrNoKeyFound = errors.New("bst: no key found")

// Tree is an immutable binary search tree, mapping keys of type K to values of type V.
// An empty instance is usable as an empty tree, i.e. this is legal:
//
//     tree, err := bst.Tree[int32, rune]{}.Insert(1, 'a')
//
// returning a tree containing a single node ⟨1⟩ associated with value 'a'.
//
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
}

// Immutable constructs an empty tree.
//
//     tree := bst.Immutable[int, string]()
//     tree, _ = tree.Insert(42, "Galaxy")
//     value, err := tree.Lookup(42)   // returns "Galaxy"
//
func Immutable[K cmp.Ordered, V any]() Tree[K, V] {
	return Tree[K, V]{}
}

// Singleton constructs a tree holding a single node, which associates key with value.
func Singleton[K cmp.Ordered, V any](key K, value V) Tree[K, V] {
	return Tree[K, V]{root: leaf(key, value)}
}

// Entry is a key/value binding of a tree.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// --- API -------------------------------------------------------------------

// Insert returns a copy of a tree with a new key inserted, which is associated with value.
// If key is already present in the tree, an error wrapping ErrDuplicateKey is returned,
// together with an empty tree. Existing bindings are never overwritten.
func (tree Tree[K, V]) Insert(key K, value V) (Tree[K, V], error) {
	if tree.root == nil { // virgin tree => new node becomes the root
		return Singleton(key, value), nil
	}
	root, err := tree.root.insert(key, value)
	if err != nil {
		return Tree[K, V]{}, err
	}
	tracer().Debugf("insert: new root = %s", root)
	return Tree[K, V]{root: root}, nil
}

// Lookup locates a key in a tree and returns the value associated with it.
// If key is not found, the zero value for V is returned, together with an error
// wrapping ErrNoKeyFound.
//
// Lookup does not allocate and is safe to call concurrently on the same tree.
func (tree Tree[K, V]) Lookup(key K) (V, error) {
	if n := tree.root.find(key); n != nil {
		return n.value, nil
	}
	var none V
	return none, fmt.Errorf("%w: %v", ErrNoKeyFound, key)
}

// Delete returns a copy of a tree with key and its associated value removed.
// If key is not found, an error wrapping ErrNoKeyFound is returned, together with
// an empty tree.
func (tree Tree[K, V]) Delete(key K) (Tree[K, V], error) {
	if tree.root == nil {
		return Tree[K, V]{}, fmt.Errorf("%w: %v", ErrNoKeyFound, key)
	}
	if cmp.Compare(key, tree.root.key) == 0 { // no parent to direct the removal: splice at the root
		tracer().Debugf("delete: removing root %s", tree.root)
		return Tree[K, V]{root: tree.root.replacement()}, nil
	}
	root, err := tree.root.remove(key)
	if err != nil {
		return Tree[K, V]{}, err
	}
	tracer().Debugf("delete: new root = %s", root)
	return Tree[K, V]{root: root}, nil
}

// Find locates a key in a tree and returns the value associated with it, if present.
func (tree Tree[K, V]) Find(key K) maybe.Maybe[V] {
	if n := tree.root.find(key); n != nil {
		return maybe.Just(n.value)
	}
	return maybe.Nothing[V]()
}

// Contains returns true if key is present in tree.
func (tree Tree[K, V]) Contains(key K) bool {
	return tree.root.find(key) != nil
}

// With returns a copy of a tree with a new key inserted, which is associated with value.
// If key is already present in tree, tree is returned unchanged.
func (tree Tree[K, V]) With(key K, value V) Tree[K, V] {
	if t, err := tree.Insert(key, value); err == nil {
		return t
	}
	return tree
}

// WithDeleted returns a copy of a tree with key deleted, if present.
// If key is not found, tree is returned unchanged.
func (tree Tree[K, V]) WithDeleted(key K) Tree[K, V] {
	if t, err := tree.Delete(key); err == nil {
		return t
	}
	return tree
}

// Min returns the entry with the smallest key of a tree, if the tree is not empty.
func (tree Tree[K, V]) Min() maybe.Maybe[Entry[K, V]] {
	if tree.root == nil {
		return maybe.Nothing[Entry[K, V]]()
	}
	return maybe.Just(tree.root.leftmost().entry())
}

// Max returns the entry with the largest key of a tree, if the tree is not empty.
func (tree Tree[K, V]) Max() maybe.Maybe[Entry[K, V]] {
	if tree.root == nil {
		return maybe.Nothing[Entry[K, V]]()
	}
	return maybe.Just(tree.root.rightmost().entry())
}

// IsEmpty returns true if tree holds no keys.
func (tree Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the number of nodes on the longest path from the root to a leaf.
// The empty tree has height 0.
func (tree Tree[K, V]) Height() int {
	return tree.root.height()
}

func (tree Tree[K, V]) String() string {
	if tree.root == nil {
		return "Tree⟨⟩"
	}
	return fmt.Sprintf("Tree⟨root=%s, height=%d⟩", tree.root, tree.Height())
}
