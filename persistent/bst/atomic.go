package bst

import (
	"cmp"
	"sync/atomic"
)

// Atomic holds the current incarnation of a tree for sharing between goroutines.
// Readers take a snapshot with Load and may walk it for as long as they like; writers
// derive a new incarnation and publish it with a single compare-and-swap of the root.
//
// The zero value holds the empty tree and is ready to use. An Atomic must not be
// copied after first use.
type Atomic[K cmp.Ordered, V any] struct {
	root atomic.Pointer[node[K, V]]
}

// Load returns the currently published tree.
func (a *Atomic[K, V]) Load() Tree[K, V] {
	return Tree[K, V]{root: a.root.Load()}
}

// Store publishes tree, replacing whatever incarnation has been published before.
func (a *Atomic[K, V]) Store(tree Tree[K, V]) {
	a.root.Store(tree.root)
}

// Update applies f to the currently published tree and publishes its outcome.
// If another writer publishes in between, f is called again with the newer tree.
// If f returns an error, nothing is published and the error is returned.
// f must be free of side effects, as it may be called more than once.
func (a *Atomic[K, V]) Update(f func(Tree[K, V]) (Tree[K, V], error)) (Tree[K, V], error) {
	for {
		old := a.root.Load()
		tree, err := f(Tree[K, V]{root: old})
		if err != nil {
			return Tree[K, V]{root: old}, err
		}
		if a.root.CompareAndSwap(old, tree.root) {
			return tree, nil
		}
		tracer().Debugf("atomic: lost race to concurrent writer, retrying")
	}
}

// Insert inserts key with value into the published tree. See Tree.Insert.
func (a *Atomic[K, V]) Insert(key K, value V) (Tree[K, V], error) {
	return a.Update(func(tree Tree[K, V]) (Tree[K, V], error) {
		return tree.Insert(key, value)
	})
}

// Delete removes key from the published tree. See Tree.Delete.
func (a *Atomic[K, V]) Delete(key K) (Tree[K, V], error) {
	return a.Update(func(tree Tree[K, V]) (Tree[K, V], error) {
		return tree.Delete(key)
	})
}
