package bst

import (
	"cmp"

	"github.com/npillmayer/pbst/result"
)

// Insert inserts key into tree, associated with value, and returns the new incarnation
// of the tree as a result. On failure the result carries an error wrapping ErrDuplicateKey.
//
//     switch m := bst.Insert(tree, 7, 'x').Match(); m {
//     case m.Ok(&tree):
//         …
//     case m.Err(&err):
//         …
//     }
//
func Insert[K cmp.Ordered, V any](tree Tree[K, V], key K, value V) result.Result[Tree[K, V]] {
	return result.Of(tree.Insert(key, value))
}

// Lookup returns the value associated with key as a result. If key is not present in
// tree, the result carries an error wrapping ErrNoKeyFound.
func Lookup[K cmp.Ordered, V any](tree Tree[K, V], key K) result.Result[V] {
	return result.Of(tree.Lookup(key))
}

// Delete removes key from tree and returns the new incarnation of the tree as a result.
// If key is not present in tree, the result carries an error wrapping ErrNoKeyFound.
func Delete[K cmp.Ordered, V any](tree Tree[K, V], key K) result.Result[Tree[K, V]] {
	return result.Of(tree.Delete(key))
}
