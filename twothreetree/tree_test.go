package twothreetree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tree := newNineLeafTree(t)

	tests := map[string]struct {
		key      float64
		found    bool
		wantedID string
	}{
		"minimum":        {key: 1, found: true, wantedID: "06"},
		"maximum":        {key: 10, found: true, wantedID: "08"},
		"inner":          {key: 7, found: true, wantedID: "03"},
		"absent between": {key: 6, found: false},
		"absent below":   {key: 0.5, found: false},
		"absent above":   {key: 11, found: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lf, err := tree.Search(item{key: tt.key})
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, lf)
				return
			}
			require.NotNil(t, lf)
			assert.Equal(t, tt.wantedID, lf.Cargo().id)
		})
	}
}

func TestSearch_EmptyTree(t *testing.T) {
	tree := newTestTree()
	lf, err := tree.Search(item{key: 1})
	require.NoError(t, err)
	assert.Nil(t, lf)
}

func TestMinimumMaximum(t *testing.T) {
	tree := newNineLeafTree(t)
	require.NotNil(t, tree.Minimum())
	require.NotNil(t, tree.Maximum())
	assert.Equal(t, 1.0, tree.Minimum().Cargo().key)
	assert.Equal(t, 10.0, tree.Maximum().Cargo().key)
}

func TestSuccessorPredecessor_WalksWholeTree(t *testing.T) {
	tree := newNineLeafTree(t)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 7, 8, 9, 10}, inOrderKeys(tree))

	// Walking backward from the maximum yields the reverse.
	var backward []float64
	for lf := tree.Maximum(); lf != nil; lf = tree.Predecessor(lf) {
		backward = append(backward, lf.Cargo().key)
	}
	assert.Equal(t, []float64{10, 9, 8, 7, 5, 4, 3, 2, 1}, backward)

	assert.Nil(t, tree.Successor(tree.Maximum()))
	assert.Nil(t, tree.Predecessor(tree.Minimum()))
}

func TestSuccessor_SingleLeaf(t *testing.T) {
	tree := newTestTree()
	lf, err := tree.Insert(item{key: 1})
	require.NoError(t, err)
	assert.Nil(t, tree.Successor(lf))
	assert.Nil(t, tree.Predecessor(lf))
}

func TestComparatorError_Propagates(t *testing.T) {
	// A comparator that cannot order payloads surfaces its error from every
	// comparing operation, leaving the tree intact.
	errCmp := assert.AnError
	failing := func(a, b item) (int, error) {
		if a.key == 13 || b.key == 13 {
			return 0, errCmp
		}
		return compareItems(a, b)
	}
	tree := New(func(v item) *Leaf[item] {
		return NewLeaf(v, failing, itemKey)
	})
	for _, key := range []float64{2, 5, 7} {
		_, err := tree.Insert(item{key: key})
		require.NoError(t, err)
	}

	_, err := tree.Insert(item{key: 13})
	assert.ErrorIs(t, err, errCmp)
	_, err = tree.Search(item{key: 13})
	assert.ErrorIs(t, err, errCmp)
	err = tree.Delete(item{key: 13})
	assert.ErrorIs(t, err, errCmp)

	assert.Equal(t, 3, tree.LeafCount())
	requireInvariants(t, tree)
}

func TestString_DumpShape(t *testing.T) {
	tree := newTestTree()
	for _, key := range []float64{2, 5, 7, 9} {
		_, err := tree.Insert(item{key: key})
		require.NoError(t, err)
	}
	dump := tree.String()
	assert.Equal(t, 4, strings.Count(dump, "leaf "))
	assert.Equal(t, 3, strings.Count(dump, "node "))
	assert.Contains(t, dump, "leaf 9")
}
