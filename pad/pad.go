// SPDX-License-Identifier: MIT
// Package pad: the orchestrator — applies padding to whole records.
//
// Per store the sequence is fixed: drop excluded attributes, select the
// qualifying ones, compute the size delta, then pad each attribute along its
// varying dimension. Edge stores are processed before node stores so that
// appended connectivity columns can reference the placeholder node (index =
// node count before node padding).

package pad

import (
	"fmt"
	"sort"
	"strings"

	"github.com/graphcore/pytorch-geometric-fork/record"
	"github.com/graphcore/pytorch-geometric-fork/tensor"
)

// Transform pads records to fixed node and edge counts. Construct via New;
// a Transform is immutable configuration (plus the internally synchronized
// edge-count cache) and is reused across every record passed to it.
type Transform struct {
	nodes   *numNodes
	edges   *numEdges
	nodePad Padding
	edgePad Padding
	maskPad map[string]float64
	exclude map[string]struct{}
}

// New validates opts and builds a Transform.
// Stage 1 (Validate): MaxNumNodes present, reserved key not excluded.
// Stage 2 (Normalize): nil policies → Uniform(0), size specs → resolvers.
// Stage 3 (Finalize): assemble the immutable Transform.
func New(opts Options) (*Transform, error) {
	nodes := newNumNodes(opts.MaxNumNodes)
	if !nodes.present {
		return nil, fmt.Errorf("pad.New: %w", ErrNoNodeCount)
	}

	exclude := make(map[string]struct{}, len(opts.ExcludeKeys))
	for _, name := range opts.ExcludeKeys {
		if name == reservedKey {
			return nil, fmt.Errorf("pad.New: exclude_keys contains %q: %w",
				reservedKey, ErrExcludeReserved)
		}
		exclude[name] = struct{}{}
	}

	nodePad := opts.NodePadValue
	if nodePad == nil {
		nodePad = Uniform(0)
	}
	edgePad := opts.EdgePadValue
	if edgePad == nil {
		edgePad = Uniform(0)
	}

	return &Transform{
		nodes:   nodes,
		edges:   newNumEdges(opts.MaxNumEdges, nodes),
		nodePad: nodePad,
		edgePad: edgePad,
		maskPad: map[string]float64{
			KeyTrainMask: opts.MaskPadValue,
			KeyValMask:   opts.MaskPadValue,
			KeyTestMask:  opts.MaskPadValue,
		},
		exclude: exclude,
	}, nil
}

// homogeneousPolicy reports whether p can resolve without a type key.
func homogeneousPolicy(p Padding) bool {
	switch p.(type) {
	case Uniform, *AttrNamePadding:
		return true
	}

	return false
}

// shouldPadNodeAttr decides whether a node-level attribute qualifies:
// mask attributes always do, excluded names never do.
func (p *Transform) shouldPadNodeAttr(name string) bool {
	if _, ok := p.maskPad[name]; ok {
		return true
	}
	_, excluded := p.exclude[name]

	return !excluded
}

// shouldPadEdgeAttr decides whether an edge-level attribute qualifies:
// the connectivity attribute always does, excluded names never do.
func (p *Transform) shouldPadEdgeAttr(name string) bool {
	if name == record.KeyEdgeIndex {
		return true
	}
	_, excluded := p.exclude[name]

	return !excluded
}

// nodeFill resolves the fill value for a node attribute: the mask override
// when applicable, otherwise the node policy.
func (p *Transform) nodeFill(attrName string, policyKey any) float64 {
	if v, ok := p.maskPad[attrName]; ok {
		return v
	}

	return p.nodePad.Resolve(policyKey, attrName)
}

// dropExcluded removes excluded attributes from a store. The connectivity
// attribute is always retained.
func (p *Transform) dropExcluded(st *record.Store) {
	for name := range p.exclude {
		if name == record.KeyEdgeIndex {
			continue
		}
		st.Delete(name)
	}
}

// Apply pads a homogeneous record in place.
//
// Capability requirements: node and edge policies must resolve without a
// type key (Uniform or AttrNamePadding), and size specs must be scalar.
// Edge attributes are padded first, so the connectivity placeholder equals
// the node count before node padding.
func (p *Transform) Apply(d *record.Data) error {
	if d == nil {
		return fmt.Errorf("pad.Apply: %w", ErrNilRecord)
	}
	if !homogeneousPolicy(p.nodePad) {
		return fmt.Errorf("pad.Apply: node_pad_value is %T: %w", p.nodePad, ErrPolicyKind)
	}
	if !homogeneousPolicy(p.edgePad) {
		return fmt.Errorf("pad.Apply: edge_pad_value is %T: %w", p.edgePad, ErrPolicyKind)
	}
	if !p.nodes.homogeneous {
		return fmt.Errorf("pad.Apply: max_num_nodes is a mapping: %w", ErrCountKind)
	}
	if !p.edges.isNone() && !p.edges.scalar() {
		return fmt.Errorf("pad.Apply: max_num_edges is a mapping: %w", ErrCountKind)
	}

	st := d.Store()
	p.dropExcluded(st)

	placeholders := func() (int, int, error) {
		n, err := st.NumNodes()

		return n, n, err
	}
	if err := p.padEdgeStore(st, record.EdgeType{}, nil, placeholders); err != nil {
		return fmt.Errorf("pad.Apply: %w", err)
	}
	if err := p.padNodeStore(st, "", nil); err != nil {
		return fmt.Errorf("pad.Apply: %w", err)
	}

	return nil
}

// ApplyHetero pads a heterogeneous record in place.
//
// Capability requirements: the node policy may be Uniform, AttrNamePadding
// or NodeTypePadding; the edge policy Uniform, AttrNamePadding or
// EdgeTypePadding. Each edge store's connectivity placeholders come from its
// endpoint node types' counts before node padding.
func (p *Transform) ApplyHetero(h *record.HeteroData) error {
	if h == nil {
		return fmt.Errorf("pad.ApplyHetero: %w", ErrNilRecord)
	}
	if !heteroNodePolicy(p.nodePad) {
		return fmt.Errorf("pad.ApplyHetero: node_pad_value is %T: %w", p.nodePad, ErrPolicyKind)
	}
	if !heteroEdgePolicy(p.edgePad) {
		return fmt.Errorf("pad.ApplyHetero: edge_pad_value is %T: %w", p.edgePad, ErrPolicyKind)
	}

	for _, it := range h.EdgeItems() {
		st := it.Store
		edgeType := it.Type
		p.dropExcluded(st)

		placeholders := func() (int, int, error) {
			src, err := h.NodeStore(edgeType.Src).NumNodes()
			if err != nil {
				return 0, 0, fmt.Errorf("node type %q: %w", edgeType.Src, err)
			}
			dst, err := h.NodeStore(edgeType.Dst).NumNodes()
			if err != nil {
				return 0, 0, fmt.Errorf("node type %q: %w", edgeType.Dst, err)
			}

			return src, dst, nil
		}
		if err := p.padEdgeStore(st, edgeType, edgeType, placeholders); err != nil {
			return fmt.Errorf("pad.ApplyHetero: edge store %s: %w", edgeType, err)
		}
	}

	for _, it := range h.NodeItems() {
		p.dropExcluded(it.Store)
		if err := p.padNodeStore(it.Store, it.Type, it.Type); err != nil {
			return fmt.Errorf("pad.ApplyHetero: node store %q: %w", it.Type, err)
		}
	}

	return nil
}

// heteroNodePolicy reports whether p is acceptable as a heterogeneous node
// policy.
func heteroNodePolicy(p Padding) bool {
	switch p.(type) {
	case Uniform, *AttrNamePadding, *NodeTypePadding:
		return true
	}

	return false
}

// heteroEdgePolicy reports whether p is acceptable as a heterogeneous edge
// policy.
func heteroEdgePolicy(p Padding) bool {
	switch p.(type) {
	case Uniform, *AttrNamePadding, *EdgeTypePadding:
		return true
	}

	return false
}

// padNodeStore pads every qualifying node attribute of one store up to the
// resolved target count. The target must strictly exceed the current count:
// padding always adds at least one placeholder node.
func (p *Transform) padNodeStore(st *record.Store, sizeKey string, policyKey any) error {
	var attrs []string
	for _, name := range st.Keys() {
		if st.IsNodeAttr(name) && p.shouldPadNodeAttr(name) {
			attrs = append(attrs, name)
		}
	}
	if len(attrs) == 0 {
		return nil
	}

	current, err := st.NumNodes()
	if err != nil {
		return fmt.Errorf("padNodeStore: %w", err)
	}
	target, err := p.nodes.value(sizeKey)
	if err != nil {
		return fmt.Errorf("padNodeStore: %w", err)
	}
	if target <= current {
		return fmt.Errorf("padNodeStore: target %d, current %d: %w",
			target, current, ErrNodeTarget)
	}
	delta := target - current

	for _, name := range attrs {
		attr, _ := st.Attr(name)
		padded, errPad := tensor.Pad(attr, record.CatDim(name), delta, p.nodeFill(name, policyKey))
		if errPad != nil {
			return fmt.Errorf("padNodeStore(%q): %w", name, errPad)
		}
		if errPad = st.Update(name, padded); errPad != nil {
			return fmt.Errorf("padNodeStore(%q): %w", name, errPad)
		}
	}

	return nil
}

// padEdgeStore pads every qualifying edge attribute of one store up to the
// resolved target count. The target must not be below the current count; an
// exact match leaves every attribute untouched.
//
// The connectivity attribute is padded in two steps: a uniform pad with the
// source placeholder index, then — only when the destination placeholder
// differs — an overwrite of the destination row's appended region. This
// avoids a second full-tensor construction when both placeholders coincide.
func (p *Transform) padEdgeStore(st *record.Store, sizeKey record.EdgeType,
	policyKey any, placeholders func() (int, int, error)) error {
	if p.edges.isNone() {
		return nil
	}

	var attrs []string
	for _, name := range st.Keys() {
		if st.IsEdgeAttr(name) && p.shouldPadEdgeAttr(name) {
			attrs = append(attrs, name)
		}
	}
	if len(attrs) == 0 {
		return nil
	}

	current, err := st.NumEdges()
	if err != nil {
		return fmt.Errorf("padEdgeStore: %w", err)
	}
	target, err := p.edges.value(sizeKey)
	if err != nil {
		return fmt.Errorf("padEdgeStore: %w", err)
	}
	if target < current {
		return fmt.Errorf("padEdgeStore: target %d, current %d: %w",
			target, current, ErrEdgeTarget)
	}
	delta := target - current
	if delta == 0 {
		return nil
	}

	for _, name := range attrs {
		attr, _ := st.Attr(name)
		var padded *tensor.Dense
		if name == record.KeyEdgeIndex {
			srcIdx, dstIdx, errPh := placeholders()
			if errPh != nil {
				return fmt.Errorf("padEdgeStore(%q): %w", name, errPh)
			}
			padded, err = tensor.Pad(attr, record.CatDim(name), delta, float64(srcIdx))
			if err != nil {
				return fmt.Errorf("padEdgeStore(%q): %w", name, err)
			}
			if srcIdx != dstIdx {
				if err = padded.FillRowFrom(1, current, float64(dstIdx)); err != nil {
					return fmt.Errorf("padEdgeStore(%q): %w", name, err)
				}
			}
		} else {
			fill := p.edgePad.Resolve(policyKey, name)
			padded, err = tensor.Pad(attr, record.CatDim(name), delta, fill)
			if err != nil {
				return fmt.Errorf("padEdgeStore(%q): %w", name, err)
			}
		}
		if err = st.Update(name, padded); err != nil {
			return fmt.Errorf("padEdgeStore(%q): %w", name, err)
		}
	}

	return nil
}

// String implements fmt.Stringer, rendering the resolved configuration.
func (p *Transform) String() string {
	return fmt.Sprintf("Pad(max_num_nodes=%s, max_num_edges=%s, node_pad_value=%s, edge_pad_value=%s)",
		p.nodes.render(), p.edges.render(), p.nodePad, p.edgePad)
}

// render formats the node-count spec deterministically.
func (r *numNodes) render() string {
	if r.homogeneous {
		return fmt.Sprintf("%d", r.n)
	}
	keys := make([]string, 0, len(r.byType))
	for k := range r.byType {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %d", k, r.byType[k])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// render formats the edge-count spec deterministically; in mapped mode the
// snapshot includes any derived entries cached so far.
func (r *numEdges) render() string {
	switch r.mode {
	case edgesNone:
		return "nil"
	case edgesScalar:
		return fmt.Sprintf("%d", r.n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var parts []string
	for key, rels := range r.cache {
		for rel, n := range rels {
			parts = append(parts, fmt.Sprintf("(%s, %s, %s): %d", key.src, rel, key.dst, n))
		}
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ", ") + "}"
}
