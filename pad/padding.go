// SPDX-License-Identifier: MIT
// Package pad: the padding-policy resolver — a closed set of four variants
// that map (store type, attribute name) to a scalar fill value.
//
// Validation happens at construction only; Resolve never fails. Lookup
// misses fall back to the variant's default value.

package pad

import (
	"fmt"
	"sort"
	"strings"

	"github.com/graphcore/pytorch-geometric-fork/record"
)

// Padding resolves a scalar fill value for a (store type, attribute name)
// pair. The set of implementations is closed: Uniform, *AttrNamePadding,
// *NodeTypePadding and *EdgeTypePadding.
//
// storeType is a node-type string for node policies, a record.EdgeType for
// edge policies, or nil when resolving without a type key (homogeneous
// records, or delegation from a typed variant). Variants that do not use a
// key ignore it; typed variants fall back to their default on a key of the
// wrong kind.
type Padding interface {
	// Resolve returns the fill value for the given store type and attribute
	// name. It never fails: misses resolve to the variant's default.
	Resolve(storeType any, attrName string) float64

	// String renders the policy for debugging and error messages.
	String() string

	// sealed closes the implementation set.
	sealed()
}

// Uniform pads every store and attribute with the same value.
type Uniform float64

// Resolve always returns the stored scalar, ignoring both keys.
func (u Uniform) Resolve(_ any, _ string) float64 { return float64(u) }

// String implements fmt.Stringer.
func (u Uniform) String() string { return fmt.Sprintf("Uniform(%g)", float64(u)) }

func (u Uniform) sealed() {}

// AttrNamePadding maps attribute names to padding values, with a default for
// names absent from the mapping. Values must be Uniform leaves.
type AttrNamePadding struct {
	values map[string]Padding
	def    float64
}

// NewAttrNamePadding builds an AttrNamePadding. Every mapping value must be
// a Uniform leaf; anything else is rejected with ErrBadPaddingValue naming
// the offending attribute. The mapping is copied; nil means empty.
func NewAttrNamePadding(values map[string]Padding, defaultValue float64) (*AttrNamePadding, error) {
	own := make(map[string]Padding, len(values))
	for name, v := range values {
		if _, ok := v.(Uniform); !ok {
			return nil, fmt.Errorf("NewAttrNamePadding: attribute %q holds %T: %w",
				name, v, ErrBadPaddingValue)
		}
		own[name] = v
	}

	return &AttrNamePadding{values: own, def: defaultValue}, nil
}

// Resolve returns the mapped value for attrName, or the default.
func (p *AttrNamePadding) Resolve(_ any, attrName string) float64 {
	if v, ok := p.values[attrName]; ok {
		return v.Resolve(nil, "")
	}

	return p.def
}

// String implements fmt.Stringer.
func (p *AttrNamePadding) String() string {
	return fmt.Sprintf("AttrNamePadding(values=%s, default=%g)", renderStringKeyed(p.values), p.def)
}

func (p *AttrNamePadding) sealed() {}

// NodeTypePadding maps node types to padding values, with a default for
// types absent from the mapping. Values may be Uniform leaves or
// AttrNamePadding policies, allowing per-type, per-attribute fills.
type NodeTypePadding struct {
	values map[string]Padding
	def    float64
}

// NewNodeTypePadding builds a NodeTypePadding. Mapping values must be
// Uniform or *AttrNamePadding; anything else is rejected with
// ErrBadPaddingValue naming the offending node type.
func NewNodeTypePadding(values map[string]Padding, defaultValue float64) (*NodeTypePadding, error) {
	own := make(map[string]Padding, len(values))
	for nodeType, v := range values {
		switch v.(type) {
		case Uniform, *AttrNamePadding:
			own[nodeType] = v
		default:
			return nil, fmt.Errorf("NewNodeTypePadding: node type %q holds %T: %w",
				nodeType, v, ErrBadPaddingValue)
		}
	}

	return &NodeTypePadding{values: own, def: defaultValue}, nil
}

// Resolve looks up the node type and delegates to the nested policy with the
// attribute name, or returns the default when the type is unmapped (or the
// key is not a node-type string).
func (p *NodeTypePadding) Resolve(storeType any, attrName string) float64 {
	nodeType, ok := storeType.(string)
	if !ok {
		return p.def
	}
	v, ok := p.values[nodeType]
	if !ok {
		return p.def
	}

	return v.Resolve(nil, attrName)
}

// String implements fmt.Stringer.
func (p *NodeTypePadding) String() string {
	return fmt.Sprintf("NodeTypePadding(values=%s, default=%g)", renderStringKeyed(p.values), p.def)
}

func (p *NodeTypePadding) sealed() {}

// EdgeTypePadding maps edge types — (source, relation, destination) triples —
// to padding values, with a default for types absent from the mapping.
// Values may be Uniform leaves or AttrNamePadding policies.
type EdgeTypePadding struct {
	values map[record.EdgeType]Padding
	def    float64
}

// NewEdgeTypePadding builds an EdgeTypePadding. Every key must be a triple
// of non-empty names (ErrBadEdgeType) and every value Uniform or
// *AttrNamePadding (ErrBadPaddingValue).
func NewEdgeTypePadding(values map[record.EdgeType]Padding, defaultValue float64) (*EdgeTypePadding, error) {
	own := make(map[record.EdgeType]Padding, len(values))
	for edgeType, v := range values {
		if !edgeType.Valid() {
			return nil, fmt.Errorf("NewEdgeTypePadding: key %v: %w", edgeType, ErrBadEdgeType)
		}
		switch v.(type) {
		case Uniform, *AttrNamePadding:
			own[edgeType] = v
		default:
			return nil, fmt.Errorf("NewEdgeTypePadding: edge type %s holds %T: %w",
				edgeType, v, ErrBadPaddingValue)
		}
	}

	return &EdgeTypePadding{values: own, def: defaultValue}, nil
}

// Resolve looks up the edge type and delegates to the nested policy with the
// attribute name, or returns the default when the type is unmapped (or the
// key is not a record.EdgeType).
func (p *EdgeTypePadding) Resolve(storeType any, attrName string) float64 {
	edgeType, ok := storeType.(record.EdgeType)
	if !ok {
		return p.def
	}
	v, ok := p.values[edgeType]
	if !ok {
		return p.def
	}

	return v.Resolve(nil, attrName)
}

// String implements fmt.Stringer.
func (p *EdgeTypePadding) String() string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		for et, v := range p.values {
			if et.String() == k {
				parts[i] = fmt.Sprintf("%s: %s", k, v)
			}
		}
	}

	return fmt.Sprintf("EdgeTypePadding(values={%s}, default=%g)", strings.Join(parts, ", "), p.def)
}

func (p *EdgeTypePadding) sealed() {}

// renderStringKeyed renders a string-keyed policy map deterministically.
func renderStringKeyed(m map[string]Padding) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, m[k])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
