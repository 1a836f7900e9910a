// Package record_test contains unit tests for EdgeType and the
// heterogeneous record container.
package record_test

import (
	"testing"

	"github.com/graphcore/pytorch-geometric-fork/record"
	"github.com/stretchr/testify/require"
)

// TestNewEdgeType ensures every element of the triple is required.
func TestNewEdgeType(t *testing.T) {
	et, err := record.NewEdgeType("v1", "rel", "v2")
	require.NoError(t, err)
	require.Equal(t, "v1__rel__v2", et.String())
	require.True(t, et.Valid())

	_, err = record.NewEdgeType("", "rel", "v2")
	require.ErrorIs(t, err, record.ErrEmptyTypeName)
	_, err = record.NewEdgeType("v1", "", "v2")
	require.ErrorIs(t, err, record.ErrEmptyTypeName)
	_, err = record.NewEdgeType("v1", "rel", "")
	require.ErrorIs(t, err, record.ErrEmptyTypeName)

	require.False(t, record.EdgeType{}.Valid())
}

// TestHeteroDataLazyStores verifies lazy store creation and identity on
// repeated access.
func TestHeteroDataLazyStores(t *testing.T) {
	h := record.NewHeteroData()

	s1 := h.NodeStore("v1")
	require.NotNil(t, s1)
	require.Same(t, s1, h.NodeStore("v1"), "repeated access must return the same store")

	et, err := record.NewEdgeType("v1", "rel", "v2")
	require.NoError(t, err)
	e1 := h.EdgeStore(et)
	require.Same(t, e1, h.EdgeStore(et))
}

// TestHeteroDataDeterministicIteration verifies sorted NodeItems/EdgeItems.
func TestHeteroDataDeterministicIteration(t *testing.T) {
	h := record.NewHeteroData()
	h.NodeStore("zebra")
	h.NodeStore("alpha")
	h.NodeStore("mid")

	require.Equal(t, []string{"alpha", "mid", "zebra"}, h.NodeTypes())

	etB, err := record.NewEdgeType("b", "rel", "a")
	require.NoError(t, err)
	etA, err := record.NewEdgeType("a", "rel", "b")
	require.NoError(t, err)
	h.EdgeStore(etB)
	h.EdgeStore(etA)

	types := h.EdgeTypes()
	require.Equal(t, []record.EdgeType{etA, etB}, types)

	items := h.EdgeItems()
	require.Len(t, items, 2)
	require.Equal(t, etA, items[0].Type)
	require.Same(t, h.EdgeStore(etA), items[0].Store)
}

// TestDataDelegation verifies the homogeneous record delegates counts to its
// single store.
func TestDataDelegation(t *testing.T) {
	d := record.NewData()
	require.NoError(t, d.Store().SetNodeAttr("x", mustDense(t, 3, 2)))
	require.NoError(t, d.Store().SetEdgeAttr(record.KeyEdgeIndex, mustDense(t, 2, 4)))

	n, err := d.NumNodes()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	e, err := d.NumEdges()
	require.NoError(t, err)
	require.Equal(t, 4, e)
}
