package twothreetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_Shapes(t *testing.T) {
	tests := map[string]struct {
		extraKeys  []float64
		deleteKeys []float64
		expected   shape
	}{
		"second leaf, sibling borrow": {
			deleteKeys: []float64{2},
			expected:   shape{size: 15, leaves: 8, height: 4},
		},
		"minimum leaf": {
			deleteKeys: []float64{1},
			expected:   shape{size: 15, leaves: 8, height: 4},
		},
		"maximum leaf after extra insert": {
			extraKeys:  []float64{6},
			deleteKeys: []float64{10},
			expected:   shape{size: 16, leaves: 9, height: 4},
		},
		"inner leaf after extra insert": {
			extraKeys:  []float64{6},
			deleteKeys: []float64{9},
			expected:   shape{size: 16, leaves: 9, height: 4},
		},
		"mid leaf, no repair needed": {
			deleteKeys: []float64{5},
			expected:   shape{size: 15, leaves: 8, height: 4},
		},
		"two deletions shrink the tree": {
			deleteKeys: []float64{2, 3},
			expected:   shape{size: 11, leaves: 7, height: 3},
		},
		"two inner deletions shrink the tree": {
			deleteKeys: []float64{3, 4},
			expected:   shape{size: 11, leaves: 7, height: 3},
		},
		"deletion with two extra leaves": {
			extraKeys:  []float64{6, 5.5},
			deleteKeys: []float64{8},
			expected:   shape{size: 17, leaves: 10, height: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newNineLeafTree(t)
			for _, key := range tt.extraKeys {
				_, err := tree.Insert(item{id: "extra", key: key})
				require.NoError(t, err)
			}
			for _, key := range tt.deleteKeys {
				require.NoError(t, tree.Delete(item{key: key}))
			}
			requireShape(t, tree, tt.expected)
			requireInvariants(t, tree)

			// The deleted payloads must be gone.
			for _, key := range tt.deleteKeys {
				lf, err := tree.Search(item{key: key})
				require.NoError(t, err)
				assert.Nil(t, lf, "key %g still present", key)
			}
		})
	}
}

func TestDeleteLeaf_RemovesExactLeaf(t *testing.T) {
	// Two payloads with equal keys cannot be told apart by Delete; DeleteLeaf
	// removes precisely the leaf it is handed.
	tree := newTestTree()
	first, err := tree.Insert(item{id: "first", key: 5})
	require.NoError(t, err)
	_, err = tree.Insert(item{id: "below", key: 1})
	require.NoError(t, err)
	_, err = tree.Insert(item{id: "above", key: 9})
	require.NoError(t, err)

	tree.DeleteLeaf(first)

	requireShape(t, tree, shape{size: 3, leaves: 2, height: 2})
	requireInvariants(t, tree)
	remaining, err := tree.Search(item{key: 5})
	require.NoError(t, err)
	assert.Nil(t, remaining)
}

func TestDelete_AbsentPayloadIsNoOp(t *testing.T) {
	tree := newNineLeafTree(t)
	require.NoError(t, tree.Delete(item{key: 6.5}))
	requireShape(t, tree, shape{size: 16, leaves: 9, height: 4})
	requireInvariants(t, tree)
}

func TestDelete_DrainToEmpty(t *testing.T) {
	tree := newNineLeafTree(t)
	for _, key := range []float64{2, 5, 7, 9, 4, 1, 3, 10, 8} {
		require.NoError(t, tree.Delete(item{key: key}))
		requireInvariants(t, tree)
	}
	requireShape(t, tree, shape{size: 1, leaves: 0, height: 1})
	assert.Nil(t, tree.Minimum())
	assert.Nil(t, tree.Maximum())

	// The drained tree accepts new payloads.
	_, err := tree.Insert(item{key: 42})
	require.NoError(t, err)
	requireShape(t, tree, shape{size: 2, leaves: 1, height: 2})
}

func TestDelete_OnEmptyTree(t *testing.T) {
	tree := newTestTree()
	require.NoError(t, tree.Delete(item{key: 1}))
	requireShape(t, tree, shape{size: 1, leaves: 0, height: 1})
}

func TestRemoveAll(t *testing.T) {
	tree := newNineLeafTree(t)
	tree.RemoveAll()
	requireShape(t, tree, shape{size: 1, leaves: 0, height: 1})
	assert.Nil(t, tree.Minimum())

	_, err := tree.Insert(item{key: 3})
	require.NoError(t, err)
	requireShape(t, tree, shape{size: 2, leaves: 1, height: 2})
}
