/*
Package bst implements a persistent (immutable) in-memory binary search tree,
used as an ordered map.

Every “modification” of a tree (insertion or deletion) creates a new incarnation
of the tree, leaving the original untouched. Only the nodes on the path from the
root down to the affected node are copied; every subtree off that path is shared
between the old and the new incarnation. Cost and allocation of an update are
therefore proportional to the length of that path, not to the size of the tree.

	tree := bst.Immutable[int32, rune]()
	tree, _ = tree.Insert(2, 'a')
	tree, _ = tree.Insert(6, 'b')
	other, _ := tree.Delete(6)        // tree still contains 6
	v, err := other.Lookup(6)         // err wraps bst.ErrNoKeyFound

Trees are not re-balanced. Inserting keys in sorted order will degrade a tree to
a linked list, and operations will take time proportional to the number of keys.

Immutable trees are inherently concurrency-safe: any number of goroutines may
read the same incarnation without coordination. Publishing a new incarnation to
other goroutines requires a single atomic pointer swap, which type Atomic
provides.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}
