// SPDX-License-Identifier: MIT
// Package pad: YAML configuration for the transform, mirroring the Options
// surface so pipelines can declare padding in config files.
//
// This layer is also where untyped input meets the configuration-shape
// checks: wrong container types, edge keys that are not 3-element triples,
// unknown policy kinds and non-numeric scalars are all rejected at parse or
// Build time with ErrBadConfig (or ErrBadEdgeType) naming the offending
// field. The typed Go API makes these states unrepresentable; YAML cannot.

package pad

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/graphcore/pytorch-geometric-fork/record"
)

// Policy kind names accepted in YAML policy specs.
const (
	kindUniform  = "uniform"
	kindAttrName = "attr_name"
	kindNodeType = "node_type"
	kindEdgeType = "edge_type"
)

// edgeKeyLen is the required arity of an edge-type key.
const edgeKeyLen = 3

// Config is the YAML form of Options.
//
//	max_num_nodes: 32          # or a mapping {v1: 4, v2: 5}
//	max_num_edges:             # scalar, or a list of {edge, value} entries
//	  - edge: [v1, rel, v2]
//	    value: 20
//	node_pad_value: 0.5        # scalar, or a {kind, values, default} spec
//	edge_pad_value:
//	  kind: attr_name
//	  values: {edge_attr: -1}
//	  default: 0
//	mask_pad_value: 0
//	exclude_keys: [y]
//
// Polymorphic fields are held as raw yaml.Node values and decoded in Build.
type Config struct {
	MaxNumNodes  yaml.Node `yaml:"max_num_nodes"`
	MaxNumEdges  yaml.Node `yaml:"max_num_edges"`
	NodePadValue yaml.Node `yaml:"node_pad_value"`
	EdgePadValue yaml.Node `yaml:"edge_pad_value"`
	MaskPadValue float64   `yaml:"mask_pad_value"`
	ExcludeKeys  []string  `yaml:"exclude_keys"`
}

// ParseConfig unmarshals a YAML document into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("pad.ParseConfig: %v: %w", err, ErrBadConfig)
	}

	return &c, nil
}

// FromYAML parses a YAML document and builds the Transform it describes.
func FromYAML(data []byte) (*Transform, error) {
	c, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	return c.Build()
}

// Build decodes the polymorphic fields and constructs the Transform.
// All shape errors surface here, before any record is touched.
func (c *Config) Build() (*Transform, error) {
	nodes, err := decodeNodeCount(&c.MaxNumNodes)
	if err != nil {
		return nil, fmt.Errorf("pad.Config: %w", err)
	}
	edges, err := decodeEdgeCount(&c.MaxNumEdges)
	if err != nil {
		return nil, fmt.Errorf("pad.Config: %w", err)
	}
	nodePad, err := decodePolicy(&c.NodePadValue, "node_pad_value", kindNodeType)
	if err != nil {
		return nil, fmt.Errorf("pad.Config: %w", err)
	}
	edgePad, err := decodePolicy(&c.EdgePadValue, "edge_pad_value", kindEdgeType)
	if err != nil {
		return nil, fmt.Errorf("pad.Config: %w", err)
	}

	return New(Options{
		MaxNumNodes:  nodes,
		MaxNumEdges:  edges,
		NodePadValue: nodePad,
		EdgePadValue: edgePad,
		MaskPadValue: c.MaskPadValue,
		ExcludeKeys:  c.ExcludeKeys,
	})
}

// absent reports whether a YAML field was omitted or explicitly null.
func absent(n *yaml.Node) bool {
	return n == nil || n.Kind == 0 || n.Tag == "!!null"
}

// decodeNodeCount accepts an int scalar or a string→int mapping.
func decodeNodeCount(n *yaml.Node) (NodeCount, error) {
	if absent(n) {
		return NodeCount{}, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		var v int
		if err := n.Decode(&v); err != nil {
			return NodeCount{}, fmt.Errorf("max_num_nodes: want int, got %q: %w", n.Value, ErrBadConfig)
		}

		return Nodes(v), nil
	case yaml.MappingNode:
		var m map[string]int
		if err := n.Decode(&m); err != nil {
			return NodeCount{}, fmt.Errorf("max_num_nodes: want mapping of type to int: %w", ErrBadConfig)
		}

		return NodesByType(m), nil
	}

	return NodeCount{}, fmt.Errorf("max_num_nodes: want int or mapping: %w", ErrBadConfig)
}

// edgeCountEntry is one per-edge-type target in YAML list form.
type edgeCountEntry struct {
	Edge  []string `yaml:"edge"`
	Value int      `yaml:"value"`
}

// decodeEdgeType validates the 3-element edge key of one list entry.
func decodeEdgeType(field string, i int, key []string) (record.EdgeType, error) {
	if len(key) != edgeKeyLen {
		return record.EdgeType{}, fmt.Errorf("%s[%d].edge: want %d elements, got %d: %w",
			field, i, edgeKeyLen, len(key), ErrBadConfig)
	}
	edgeType, err := record.NewEdgeType(key[0], key[1], key[2])
	if err != nil {
		return record.EdgeType{}, fmt.Errorf("%s[%d].edge: %v: %w", field, i, err, ErrBadEdgeType)
	}

	return edgeType, nil
}

// decodeEdgeCount accepts an int scalar or a list of {edge, value} entries.
func decodeEdgeCount(n *yaml.Node) (EdgeCount, error) {
	if absent(n) {
		return EdgeCount{}, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		var v int
		if err := n.Decode(&v); err != nil {
			return EdgeCount{}, fmt.Errorf("max_num_edges: want int, got %q: %w", n.Value, ErrBadConfig)
		}

		return Edges(v), nil
	case yaml.SequenceNode:
		var entries []edgeCountEntry
		if err := n.Decode(&entries); err != nil {
			return EdgeCount{}, fmt.Errorf("max_num_edges: want list of {edge, value}: %w", ErrBadConfig)
		}
		counts := make(map[record.EdgeType]int, len(entries))
		for i, e := range entries {
			edgeType, err := decodeEdgeType("max_num_edges", i, e.Edge)
			if err != nil {
				return EdgeCount{}, err
			}
			counts[edgeType] = e.Value
		}

		return EdgesByType(counts), nil
	}

	return EdgeCount{}, fmt.Errorf("max_num_edges: want int or list: %w", ErrBadConfig)
}

// policySpec is the mapping form of a policy in YAML.
type policySpec struct {
	Kind    string    `yaml:"kind"`
	Value   float64   `yaml:"value"`
	Values  yaml.Node `yaml:"values"`
	Default float64   `yaml:"default"`
}

// decodeScalarFill decodes a numeric fill value.
func decodeScalarFill(n *yaml.Node, field string) (float64, error) {
	var v float64
	if err := n.Decode(&v); err != nil {
		return 0, fmt.Errorf("%s: want number, got %q: %w", field, n.Value, ErrBadConfig)
	}

	return v, nil
}

// decodeLeaf decodes a scalar or nested {kind: uniform|attr_name} spec —
// the accepted value set of the typed policy variants.
func decodeLeaf(n *yaml.Node, field string) (Padding, error) {
	if n.Kind == yaml.ScalarNode {
		v, err := decodeScalarFill(n, field)
		if err != nil {
			return nil, err
		}

		return Uniform(v), nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: want number or policy spec: %w", field, ErrBadConfig)
	}
	var spec policySpec
	if err := n.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", field, err, ErrBadConfig)
	}
	switch spec.Kind {
	case kindUniform:
		return Uniform(spec.Value), nil
	case kindAttrName:
		return decodeAttrName(&spec, field)
	}

	return nil, fmt.Errorf("%s: kind %q not allowed here: %w", field, spec.Kind, ErrBadConfig)
}

// decodeAttrName builds an AttrNamePadding from a spec whose values mapping
// holds attribute → scalar entries.
func decodeAttrName(spec *policySpec, field string) (Padding, error) {
	values := make(map[string]Padding)
	if !absent(&spec.Values) {
		if spec.Values.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s.values: want mapping of attribute to number: %w", field, ErrBadConfig)
		}
		var raw map[string]yaml.Node
		if err := spec.Values.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s.values: %v: %w", field, err, ErrBadConfig)
		}
		for name, vn := range raw {
			node := vn
			v, err := decodeScalarFill(&node, fmt.Sprintf("%s.values.%s", field, name))
			if err != nil {
				return nil, err
			}
			values[name] = Uniform(v)
		}
	}

	p, err := NewAttrNamePadding(values, spec.Default)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return p, nil
}

// edgePolicyEntry is one per-edge-type policy value in YAML list form.
type edgePolicyEntry struct {
	Edge  []string  `yaml:"edge"`
	Value yaml.Node `yaml:"value"`
}

// decodePolicy decodes a top-level policy field: absent, scalar, or a
// {kind, ...} spec. typedKind selects which typed variant the field accepts
// (node_type for node_pad_value, edge_type for edge_pad_value).
func decodePolicy(n *yaml.Node, field, typedKind string) (Padding, error) {
	if absent(n) {
		return nil, nil
	}
	if n.Kind == yaml.ScalarNode {
		v, err := decodeScalarFill(n, field)
		if err != nil {
			return nil, err
		}

		return Uniform(v), nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: want number or policy spec: %w", field, ErrBadConfig)
	}

	var spec policySpec
	if err := n.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", field, err, ErrBadConfig)
	}
	switch spec.Kind {
	case kindUniform:
		return Uniform(spec.Value), nil
	case kindAttrName:
		return decodeAttrName(&spec, field)
	case kindNodeType:
		if typedKind != kindNodeType {
			break
		}

		return decodeNodeTypePolicy(&spec, field)
	case kindEdgeType:
		if typedKind != kindEdgeType {
			break
		}

		return decodeEdgeTypePolicy(&spec, field)
	}

	return nil, fmt.Errorf("%s: unsupported policy kind %q: %w", field, spec.Kind, ErrBadConfig)
}

// decodeNodeTypePolicy builds a NodeTypePadding; values map node types to
// scalars or nested attr_name specs.
func decodeNodeTypePolicy(spec *policySpec, field string) (Padding, error) {
	values := make(map[string]Padding)
	if !absent(&spec.Values) {
		if spec.Values.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s.values: want mapping of node type to value: %w", field, ErrBadConfig)
		}
		var raw map[string]yaml.Node
		if err := spec.Values.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s.values: %v: %w", field, err, ErrBadConfig)
		}
		for nodeType, vn := range raw {
			node := vn
			leaf, err := decodeLeaf(&node, fmt.Sprintf("%s.values.%s", field, nodeType))
			if err != nil {
				return nil, err
			}
			values[nodeType] = leaf
		}
	}

	p, err := NewNodeTypePadding(values, spec.Default)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return p, nil
}

// decodeEdgeTypePolicy builds an EdgeTypePadding; values is a list of
// {edge, value} entries where value is a scalar or nested attr_name spec.
func decodeEdgeTypePolicy(spec *policySpec, field string) (Padding, error) {
	values := make(map[record.EdgeType]Padding)
	if !absent(&spec.Values) {
		if spec.Values.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%s.values: want list of {edge, value}: %w", field, ErrBadConfig)
		}
		var entries []edgePolicyEntry
		if err := spec.Values.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%s.values: %v: %w", field, err, ErrBadConfig)
		}
		for i, e := range entries {
			edgeType, err := decodeEdgeType(field+".values", i, e.Edge)
			if err != nil {
				return nil, err
			}
			node := e.Value
			leaf, err := decodeLeaf(&node, fmt.Sprintf("%s.values[%d].value", field, i))
			if err != nil {
				return nil, err
			}
			values[edgeType] = leaf
		}
	}

	p, err := NewEdgeTypePadding(values, spec.Default)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return p, nil
}
