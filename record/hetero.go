// SPDX-License-Identifier: MIT
// Package record: HeteroData is the heterogeneous record — explicit
// node-type stores plus edge-type stores keyed by (src, rel, dst) triples.

package record

import "sort"

// HeteroData is a heterogeneous graph record.
type HeteroData struct {
	nodeStores map[string]*Store
	edgeStores map[EdgeType]*Store
}

// NewHeteroData creates an empty heterogeneous record.
func NewHeteroData() *HeteroData {
	return &HeteroData{
		nodeStores: make(map[string]*Store),
		edgeStores: make(map[EdgeType]*Store),
	}
}

// NodeStore returns the store for the given node type, creating an empty one
// on first use.
func (h *HeteroData) NodeStore(nodeType string) *Store {
	s, ok := h.nodeStores[nodeType]
	if !ok {
		s = NewStore()
		h.nodeStores[nodeType] = s
	}

	return s
}

// EdgeStore returns the store for the given edge type, creating an empty one
// on first use.
func (h *HeteroData) EdgeStore(edgeType EdgeType) *Store {
	s, ok := h.edgeStores[edgeType]
	if !ok {
		s = NewStore()
		h.edgeStores[edgeType] = s
	}

	return s
}

// NodeTypes returns all node types in sorted order.
func (h *HeteroData) NodeTypes() []string {
	out := make([]string, 0, len(h.nodeStores))
	for t := range h.nodeStores {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

// EdgeTypes returns all edge types, sorted by their string rendering, so
// iteration is deterministic across runs.
func (h *HeteroData) EdgeTypes() []EdgeType {
	out := make([]EdgeType, 0, len(h.edgeStores))
	for t := range h.edgeStores {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// NodeItem pairs a node type with its store for deterministic iteration.
type NodeItem struct {
	Type  string
	Store *Store
}

// EdgeItem pairs an edge type with its store for deterministic iteration.
type EdgeItem struct {
	Type  EdgeType
	Store *Store
}

// NodeItems returns (type, store) pairs for every node store, sorted by type.
func (h *HeteroData) NodeItems() []NodeItem {
	types := h.NodeTypes()
	out := make([]NodeItem, len(types))
	for i, t := range types {
		out[i] = NodeItem{Type: t, Store: h.nodeStores[t]}
	}

	return out
}

// EdgeItems returns (type, store) pairs for every edge store, sorted by the
// edge type's string rendering.
func (h *HeteroData) EdgeItems() []EdgeItem {
	types := h.EdgeTypes()
	out := make([]EdgeItem, len(types))
	for i, t := range types {
		out[i] = EdgeItem{Type: t, Store: h.edgeStores[t]}
	}

	return out
}
