package twothreetree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samples-of-junichim/planar-sweep-method/numeric"
)

// item is the payload used throughout the tree tests: an identifier plus the
// ordering key.
type item struct {
	id  string
	key float64
}

func compareItems(a, b item) (int, error) {
	if numeric.IsClose(a.key, b.key) {
		return 0, nil
	}
	if a.key < b.key {
		return -1, nil
	}
	return 1, nil
}

func itemKey(v item) string {
	return fmt.Sprintf("%g", v.key)
}

func newItemLeaf(v item) *Leaf[item] {
	return NewLeaf(v, compareItems, itemKey)
}

func newTestTree() *Tree[item] {
	return New(newItemLeaf)
}

// newNineLeafTree builds the shared fixture of the original test suite:
// keys 2, 5, 7, 9, 4, 1, 3, 10, 8 inserted in that order, giving a tree of
// 16 nodes, 9 leaves and height 4.
func newNineLeafTree(t *testing.T) *Tree[item] {
	t.Helper()
	tree := newTestTree()
	for i, key := range []float64{2, 5, 7, 9, 4, 1, 3, 10, 8} {
		_, err := tree.Insert(item{id: fmt.Sprintf("%02d", i+1), key: key})
		require.NoError(t, err)
	}
	return tree
}

// inOrderKeys walks the successor chain from the minimum and returns the keys
// in tree order.
func inOrderKeys(tree *Tree[item]) []float64 {
	var keys []float64
	for lf := tree.Minimum(); lf != nil; lf = tree.Successor(lf) {
		keys = append(keys, lf.Cargo().key)
	}
	return keys
}

// requireInvariants checks the structural invariants of a 2-3 tree: equal
// leaf depth, 2..3 children per non-root internal node, consistent parent
// pointers, and correct cached max leaves.
func requireInvariants(t *testing.T, tree *Tree[item]) {
	t.Helper()

	leafDepth := -1
	var walk func(nd node[item], depth int, parent *internal[item])
	walk = func(nd node[item], depth int, parent *internal[item]) {
		if nd == nil {
			return
		}
		require.Equal(t, parent, nd.parentNode(), "parent pointer mismatch at depth %d", depth)

		if lf, ok := nd.(*Leaf[item]); ok {
			if leafDepth == -1 {
				leafDepth = depth
			}
			require.Equal(t, leafDepth, depth, "leaf %s at uneven depth", lf.Key())
			return
		}

		in := nd.(*internal[item])
		if parent != nil {
			require.GreaterOrEqual(t, in.childCount(), 2, "non-root internal node with <2 children")
		}
		require.LessOrEqual(t, in.childCount(), 3)
		require.Equal(t, maximumIn[item](in.left), in.leftMax, "stale leftMax cache")
		require.Equal(t, maximumIn[item](in.mid), in.midMax, "stale midMax cache")

		walk(in.left, depth+1, in)
		walk(in.mid, depth+1, in)
		walk(in.right, depth+1, in)
	}
	walk(tree.root, 0, nil)

	// In-order keys must be non-decreasing, and Predecessor must invert
	// Successor.
	var prev *Leaf[item]
	for lf := tree.Minimum(); lf != nil; lf = tree.Successor(lf) {
		if prev != nil {
			require.LessOrEqual(t, prev.Cargo().key, lf.Cargo().key, "in-order keys out of order")
			require.Equal(t, prev, tree.Predecessor(lf), "predecessor does not invert successor")
		}
		prev = lf
	}
}
