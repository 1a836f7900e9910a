// Package record_test contains unit tests for Store attribute bookkeeping
// and entity-count inference.
package record_test

import (
	"testing"

	"github.com/graphcore/pytorch-geometric-fork/record"
	"github.com/graphcore/pytorch-geometric-fork/tensor"
	"github.com/stretchr/testify/require"
)

// mustDense builds a zero tensor or fails the test.
func mustDense(t *testing.T, shape ...int) *tensor.Dense {
	t.Helper()
	d, err := tensor.NewDense(shape...)
	require.NoError(t, err)

	return d
}

// TestStoreSetValidation ensures attribute names, tensors and kinds are
// validated on Set.
func TestStoreSetValidation(t *testing.T) {
	s := record.NewStore()

	require.ErrorIs(t, s.SetNodeAttr("", mustDense(t, 1)), record.ErrEmptyAttrName)
	require.ErrorIs(t, s.SetNodeAttr("x", nil), record.ErrNilAttr)

	// edge_index is reserved for edges and must be [2, E].
	require.ErrorIs(t, s.SetNodeAttr(record.KeyEdgeIndex, mustDense(t, 2, 3)), record.ErrWrongKind)
	require.ErrorIs(t, s.SetEdgeAttr(record.KeyEdgeIndex, mustDense(t, 3, 3)), record.ErrBadEdgeIndex)
	require.ErrorIs(t, s.SetEdgeAttr(record.KeyEdgeIndex, mustDense(t, 4)), record.ErrBadEdgeIndex)
	require.NoError(t, s.SetEdgeAttr(record.KeyEdgeIndex, mustDense(t, 2, 3)))

	// Kind conflicts are rejected.
	require.NoError(t, s.SetNodeAttr("x", mustDense(t, 3, 4)))
	require.ErrorIs(t, s.SetEdgeAttr("x", mustDense(t, 3, 4)), record.ErrWrongKind)
}

// TestStoreKindPredicates verifies IsNodeAttr/IsEdgeAttr and sorted Keys.
func TestStoreKindPredicates(t *testing.T) {
	s := record.NewStore()
	require.NoError(t, s.SetNodeAttr("x", mustDense(t, 3, 4)))
	require.NoError(t, s.SetEdgeAttr("edge_attr", mustDense(t, 2, 8)))
	require.NoError(t, s.SetEdgeAttr(record.KeyEdgeIndex, mustDense(t, 2, 2)))

	require.True(t, s.IsNodeAttr("x"))
	require.False(t, s.IsEdgeAttr("x"))
	require.True(t, s.IsEdgeAttr("edge_attr"))
	require.False(t, s.IsNodeAttr("missing"))
	require.False(t, s.IsEdgeAttr("missing"))

	require.Equal(t, []string{"edge_attr", "edge_index", "x"}, s.Keys())
}

// TestStoreUpdate verifies Update keeps the attribute kind and rejects
// unknown names.
func TestStoreUpdate(t *testing.T) {
	s := record.NewStore()
	require.NoError(t, s.SetNodeAttr("x", mustDense(t, 3, 4)))

	require.NoError(t, s.Update("x", mustDense(t, 5, 4)))
	require.True(t, s.IsNodeAttr("x"))

	require.ErrorIs(t, s.Update("y", mustDense(t, 1)), record.ErrUnknownAttr)
}

// TestStoreCounts verifies node/edge count inference and the explicit
// override.
func TestStoreCounts(t *testing.T) {
	s := record.NewStore()

	// Empty store has no counts.
	_, err := s.NumNodes()
	require.ErrorIs(t, err, record.ErrNoCount)
	_, err = s.NumEdges()
	require.ErrorIs(t, err, record.ErrNoCount)

	// Node count from the node attribute's leading dimension.
	require.NoError(t, s.SetNodeAttr("x", mustDense(t, 3, 4)))
	n, err := s.NumNodes()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// Edge count from edge_index columns.
	require.NoError(t, s.SetEdgeAttr(record.KeyEdgeIndex, mustDense(t, 2, 7)))
	e, err := s.NumEdges()
	require.NoError(t, err)
	require.Equal(t, 7, e)

	// Explicit override wins over inference.
	s.SetNumNodes(10)
	n, err = s.NumNodes()
	require.NoError(t, err)
	require.Equal(t, 10, n)
}

// TestStoreEdgeCountWithoutConnectivity verifies the fallback to a plain
// edge attribute when edge_index is absent.
func TestStoreEdgeCountWithoutConnectivity(t *testing.T) {
	s := record.NewStore()
	require.NoError(t, s.SetEdgeAttr("edge_attr", mustDense(t, 5, 2)))

	e, err := s.NumEdges()
	require.NoError(t, err)
	require.Equal(t, 5, e)
}

// TestStoreDelete verifies Delete removes attributes and tolerates absent names.
func TestStoreDelete(t *testing.T) {
	s := record.NewStore()
	require.NoError(t, s.SetNodeAttr("y", mustDense(t, 3)))

	s.Delete("y")
	s.Delete("never-there")
	require.False(t, s.Has("y"))
	require.Empty(t, s.Keys())
}

// TestCatDim verifies the varying-dimension rule.
func TestCatDim(t *testing.T) {
	require.Equal(t, 1, record.CatDim(record.KeyEdgeIndex))
	require.Equal(t, 0, record.CatDim("x"))
	require.Equal(t, 0, record.CatDim("edge_attr"))
}
