// SPDX-License-Identifier: MIT
// Package record: Store is the attribute collection for one node type or one
// edge type within a record. It tracks, per attribute, the tensor and its
// kind, and infers entity counts from attribute shapes.

package record

import (
	"fmt"
	"sort"

	"github.com/graphcore/pytorch-geometric-fork/tensor"
)

// unsetCount marks the explicit node-count override as absent.
const unsetCount = -1

// entry pairs an attribute tensor with its kind.
type entry struct {
	kind Kind
	t    *tensor.Dense
}

// Store holds the attributes of one node type or one edge type.
// The zero value is not usable; construct via NewStore.
type Store struct {
	attrs    map[string]entry
	numNodes int // explicit override, unsetCount when absent
}

// NewStore creates an empty attribute store.
func NewStore() *Store {
	return &Store{attrs: make(map[string]entry), numNodes: unsetCount}
}

// set validates and records an attribute under the given kind.
func (s *Store) set(name string, k Kind, t *tensor.Dense) error {
	if name == "" {
		return fmt.Errorf("Store.set: %w", ErrEmptyAttrName)
	}
	if t == nil {
		return fmt.Errorf("Store.set(%q): %w", name, ErrNilAttr)
	}
	if name == KeyEdgeIndex {
		if k != EdgeAttr {
			return fmt.Errorf("Store.set(%q): reserved for edges: %w", name, ErrWrongKind)
		}
		if t.Rank() != 2 {
			return fmt.Errorf("Store.set(%q): rank %d: %w", name, t.Rank(), ErrBadEdgeIndex)
		}
		if rows, _ := t.Size(0); rows != 2 {
			return fmt.Errorf("Store.set(%q): %d rows: %w", name, rows, ErrBadEdgeIndex)
		}
	}
	if prev, ok := s.attrs[name]; ok && prev.kind != k {
		return fmt.Errorf("Store.set(%q): already %s-level: %w", name, prev.kind, ErrWrongKind)
	}
	s.attrs[name] = entry{kind: k, t: t}

	return nil
}

// SetNodeAttr records a node-level attribute (one entry per node along its
// varying dimension).
func (s *Store) SetNodeAttr(name string, t *tensor.Dense) error {
	return s.set(name, NodeAttr, t)
}

// SetEdgeAttr records an edge-level attribute. The connectivity attribute
// (KeyEdgeIndex) must be a [2, E] tensor.
func (s *Store) SetEdgeAttr(name string, t *tensor.Dense) error {
	return s.set(name, EdgeAttr, t)
}

// Update replaces the tensor of an existing attribute, keeping its kind.
// Returns ErrUnknownAttr if the attribute is absent.
func (s *Store) Update(name string, t *tensor.Dense) error {
	prev, ok := s.attrs[name]
	if !ok {
		return fmt.Errorf("Store.Update(%q): %w", name, ErrUnknownAttr)
	}

	return s.set(name, prev.kind, t)
}

// Attr returns the tensor stored under name, or false if absent.
func (s *Store) Attr(name string) (*tensor.Dense, bool) {
	e, ok := s.attrs[name]
	if !ok {
		return nil, false
	}

	return e.t, true
}

// Has reports whether the store contains the named attribute.
func (s *Store) Has(name string) bool {
	_, ok := s.attrs[name]

	return ok
}

// Delete removes the named attribute if present.
func (s *Store) Delete(name string) {
	delete(s.attrs, name)
}

// Keys returns the attribute names in sorted order, so iteration over a
// store is deterministic across runs.
func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.attrs))
	for name := range s.attrs {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// IsNodeAttr reports whether name is a node-level attribute of this store.
func (s *Store) IsNodeAttr(name string) bool {
	e, ok := s.attrs[name]

	return ok && e.kind == NodeAttr
}

// IsEdgeAttr reports whether name is an edge-level attribute of this store.
func (s *Store) IsEdgeAttr(name string) bool {
	e, ok := s.attrs[name]

	return ok && e.kind == EdgeAttr
}

// SetNumNodes sets an explicit node count, used when the store carries no
// node attribute to infer it from (or carries only mask attributes whose
// shape should not be trusted as the source of truth).
func (s *Store) SetNumNodes(n int) {
	s.numNodes = n
}

// NumNodes returns the node count: the explicit override when set, otherwise
// the size of the first (sorted) node attribute along its varying dimension.
// Returns ErrNoCount when neither source is available.
func (s *Store) NumNodes() (int, error) {
	if s.numNodes != unsetCount {
		return s.numNodes, nil
	}
	for _, name := range s.Keys() {
		e := s.attrs[name]
		if e.kind != NodeAttr {
			continue
		}
		n, err := e.t.Size(CatDim(name))
		if err != nil {
			return 0, fmt.Errorf("Store.NumNodes(%q): %w", name, err)
		}

		return n, nil
	}

	return 0, fmt.Errorf("Store.NumNodes: %w", ErrNoCount)
}

// NumEdges returns the edge count: the connectivity attribute's column count
// when present, otherwise the size of the first (sorted) edge attribute along
// its varying dimension. Returns ErrNoCount when no edge attribute exists.
func (s *Store) NumEdges() (int, error) {
	if e, ok := s.attrs[KeyEdgeIndex]; ok {
		n, err := e.t.Size(CatDim(KeyEdgeIndex))
		if err != nil {
			return 0, fmt.Errorf("Store.NumEdges: %w", err)
		}

		return n, nil
	}
	for _, name := range s.Keys() {
		e := s.attrs[name]
		if e.kind != EdgeAttr {
			continue
		}
		n, err := e.t.Size(CatDim(name))
		if err != nil {
			return 0, fmt.Errorf("Store.NumEdges(%q): %w", name, err)
		}

		return n, nil
	}

	return 0, fmt.Errorf("Store.NumEdges: %w", ErrNoCount)
}
