// Package pad_test contains unit tests for the YAML configuration layer.
package pad_test

import (
	"testing"

	"github.com/graphcore/pytorch-geometric-fork/pad"
	"github.com/graphcore/pytorch-geometric-fork/record"
	"github.com/stretchr/testify/require"
)

// TestFromYAMLScalarConfig builds a homogeneous transform from the minimal
// scalar form and applies it.
func TestFromYAMLScalarConfig(t *testing.T) {
	p, err := pad.FromYAML([]byte(`
max_num_nodes: 5
max_num_edges: 4
node_pad_value: 1.5
`))
	require.NoError(t, err)

	d := homData(t)
	require.NoError(t, p.Apply(d))

	x, ok := d.Store().Attr("x")
	require.True(t, ok)
	require.Equal(t, []int{5, 2}, x.Shape())
	require.Equal(t, 1.5, at(t, x, 4, 0))

	ei, ok := d.Store().Attr(record.KeyEdgeIndex)
	require.True(t, ok)
	require.Equal(t, []int{2, 4}, ei.Shape())
}

// TestFromYAMLTypedConfig builds a heterogeneous transform with per-type
// counts and nested policies.
func TestFromYAMLTypedConfig(t *testing.T) {
	p, err := pad.FromYAML([]byte(`
max_num_nodes:
  a: 4
  b: 5
max_num_edges:
  - edge: [a, rel, b]
    value: 6
node_pad_value:
  kind: node_type
  values:
    a:
      kind: attr_name
      values: {x: 7}
      default: 0
    b: 9
  default: 2
edge_pad_value:
  kind: edge_type
  values:
    - edge: [a, rel, b]
      value: -4
  default: 0
exclude_keys: [y]
`))
	require.NoError(t, err)

	h, et := heteroData(t)
	require.NoError(t, h.EdgeStore(et).SetEdgeAttr("edge_attr", mustTensor(t, []float64{10, 20}, 2)))
	require.NoError(t, p.ApplyHetero(h))

	xa, _ := h.NodeStore("a").Attr("x")
	require.Equal(t, []int{4, 1}, xa.Shape())
	require.Equal(t, 7.0, at(t, xa, 3, 0))

	xb, _ := h.NodeStore("b").Attr("x")
	require.Equal(t, 9.0, at(t, xb, 4, 0))

	ea, _ := h.EdgeStore(et).Attr("edge_attr")
	require.Equal(t, []int{6}, ea.Shape())
	require.Equal(t, -4.0, at(t, ea, 5))
}

// TestFromYAMLMaskAndExclude verifies mask_pad_value and exclude_keys wiring.
func TestFromYAMLMaskAndExclude(t *testing.T) {
	p, err := pad.FromYAML([]byte(`
max_num_nodes: 4
mask_pad_value: 0.5
exclude_keys: [y]
`))
	require.NoError(t, err)

	d := homData(t)
	st := d.Store()
	require.NoError(t, st.SetNodeAttr("y", mustTensor(t, []float64{1, 2, 3}, 3)))
	require.NoError(t, st.SetNodeAttr(pad.KeyValMask, mustTensor(t, []float64{1, 1, 1}, 3)))
	require.NoError(t, p.Apply(d))

	require.False(t, st.Has("y"))
	mask, _ := st.Attr(pad.KeyValMask)
	require.Equal(t, 0.5, at(t, mask, 3))
}

// TestConfigShapeErrors covers the configuration-shape failures this layer
// must reject, each naming the offending field.
func TestConfigShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "missing max_num_nodes",
			yaml: `edge_pad_value: 1.0`,
			want: pad.ErrNoNodeCount,
		},
		{
			name: "max_num_nodes wrong container",
			yaml: "max_num_nodes: [1, 2]",
			want: pad.ErrBadConfig,
		},
		{
			name: "max_num_nodes non-integer",
			yaml: "max_num_nodes: lots",
			want: pad.ErrBadConfig,
		},
		{
			name: "edge key arity 2",
			yaml: "max_num_nodes: 4\nmax_num_edges:\n  - edge: [x, y]\n    value: 1",
			want: pad.ErrBadConfig,
		},
		{
			name: "edge key empty element",
			yaml: "max_num_nodes: 4\nmax_num_edges:\n  - edge: [x, '', y]\n    value: 1",
			want: pad.ErrBadEdgeType,
		},
		{
			name: "unknown policy kind",
			yaml: "max_num_nodes: 4\nnode_pad_value:\n  kind: per_degree",
			want: pad.ErrBadConfig,
		},
		{
			name: "edge_type kind on node field",
			yaml: "max_num_nodes: 4\nnode_pad_value:\n  kind: edge_type",
			want: pad.ErrBadConfig,
		},
		{
			name: "non-numeric fill",
			yaml: "max_num_nodes: 4\nnode_pad_value:\n  kind: attr_name\n  values: {x: high}",
			want: pad.ErrBadConfig,
		},
		{
			name: "excluded reserved key",
			yaml: "max_num_nodes: 4\nexclude_keys: [x]",
			want: pad.ErrExcludeReserved,
		},
		{
			name: "not yaml at all",
			yaml: ": : :",
			want: pad.ErrBadConfig,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pad.FromYAML([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
