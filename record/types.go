// SPDX-License-Identifier: MIT
// Package record: attribute kinds, the connectivity key, the varying
// dimension rule, and the edge-type triple.

package record

import "fmt"

// KeyEdgeIndex is the name of the connectivity attribute: a [2, E] tensor of
// endpoint indices, row 0 sources and row 1 destinations.
const KeyEdgeIndex = "edge_index"

// Kind classifies an attribute as node-level or edge-level.
type Kind int

const (
	// NodeAttr marks an attribute with one entry per node.
	NodeAttr Kind = iota

	// EdgeAttr marks an attribute with one entry per edge.
	EdgeAttr
)

// String implements fmt.Stringer for debugging and error messages.
func (k Kind) String() string {
	if k == NodeAttr {
		return "node"
	}

	return "edge"
}

// CatDim reports the dimension along which the named attribute varies with
// the entity count: dimension 1 for the connectivity attribute (shape [2, E]),
// dimension 0 for everything else.
func CatDim(attrName string) int {
	if attrName == KeyEdgeIndex {
		return 1
	}

	return 0
}

// EdgeType identifies one edge store in a heterogeneous record by its
// (source node type, relation name, destination node type) triple.
// The zero value is invalid; construct via NewEdgeType.
type EdgeType struct {
	Src string // source node type
	Rel string // relation name
	Dst string // destination node type
}

// NewEdgeType builds an EdgeType, rejecting empty elements with
// ErrEmptyTypeName naming the offending position.
func NewEdgeType(src, rel, dst string) (EdgeType, error) {
	if src == "" {
		return EdgeType{}, fmt.Errorf("NewEdgeType: source: %w", ErrEmptyTypeName)
	}
	if rel == "" {
		return EdgeType{}, fmt.Errorf("NewEdgeType: relation: %w", ErrEmptyTypeName)
	}
	if dst == "" {
		return EdgeType{}, fmt.Errorf("NewEdgeType: destination: %w", ErrEmptyTypeName)
	}

	return EdgeType{Src: src, Rel: rel, Dst: dst}, nil
}

// Valid reports whether every element of the triple is non-empty.
func (e EdgeType) Valid() bool {
	return e.Src != "" && e.Rel != "" && e.Dst != ""
}

// String renders the triple as "src__rel__dst".
func (e EdgeType) String() string {
	return e.Src + "__" + e.Rel + "__" + e.Dst
}
