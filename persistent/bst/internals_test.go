package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeRemoveFromItselfPanics(t *testing.T) {
	tree := build(t, 5, 'a', 3, 'b')
	assert.PanicsWithValue(t, "bst: missed step: asked to remove ⟨5:97⟩ from itself", func() {
		_, _ = tree.root.remove(5)
	})
}

func TestSpliceOutSuccessorNeedsTwoChildren(t *testing.T) {
	tree := build(t, 5, 'a', 3, 'b')
	assert.Panics(t, func() {
		tree.root.spliceOutSuccessor()
	})
}

func TestNodeReplacement(t *testing.T) {
	tree := build(t, 5, 'a', 3, 'b', 8, 'c', 6, 'd', 7, 'e')
	//       5
	//     3   8
	//        6
	//         7
	assert.Nil(t, tree.root.left.replacement(), "leaf has no replacement")
	assert.Same(t, tree.root.right.left, tree.root.right.replacement(), "only child replaces its parent")
	r := tree.root.replacement()
	assert.Equal(t, int32(6), r.key)
	assert.Same(t, tree.root.left, r.left)
	assert.Same(t, tree.root.right.left.right, r.right.left, "right subtree of spliced-out successor moves up")
}

func TestNodeFindOnNil(t *testing.T) {
	var n *node[int, int]
	assert.Nil(t, n.find(1))
	assert.Equal(t, 0, n.height())
	assert.Equal(t, "⊥", n.String())
}
