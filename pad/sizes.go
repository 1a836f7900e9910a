// SPDX-License-Identifier: MIT
// Package pad: size resolution — target node counts per type and target edge
// counts per (src, rel, dst) triple, with the implicit "fully connect with
// self-loops" default derived from node counts and memoized per triple.

package pad

import (
	"fmt"
	"sync"

	"github.com/graphcore/pytorch-geometric-fork/record"
)

// NodeCount is the small union for Options.MaxNumNodes: a single target
// (homogeneous) or a per-node-type mapping (heterogeneous). The zero value
// means "not provided" and is rejected by New.
type NodeCount struct {
	set    bool
	n      int
	byType map[string]int
}

// Nodes declares a single target node count.
func Nodes(n int) NodeCount {
	return NodeCount{set: true, n: n}
}

// NodesByType declares per-node-type target counts. The mapping is copied.
func NodesByType(counts map[string]int) NodeCount {
	own := make(map[string]int, len(counts))
	for k, v := range counts {
		own[k] = v
	}

	return NodeCount{set: true, byType: own}
}

// EdgeCount is the small union for Options.MaxNumEdges: a single target, a
// per-edge-type mapping, or absent (the zero value), which requests the
// derived full-connectivity default.
type EdgeCount struct {
	set    bool
	n      int
	byType map[record.EdgeType]int
}

// Edges declares a single target edge count.
func Edges(n int) EdgeCount {
	return EdgeCount{set: true, n: n}
}

// EdgesByType declares per-edge-type target counts. Edge types absent from
// the mapping fall back to the derived full-connectivity default at
// resolution time. The mapping is copied.
func EdgesByType(counts map[record.EdgeType]int) EdgeCount {
	own := make(map[record.EdgeType]int, len(counts))
	for k, v := range counts {
		own[k] = v
	}

	return EdgeCount{set: true, byType: own}
}

// numNodes resolves target node counts. Homogeneous mode ignores the type
// key; heterogeneous mode requires the key to be present in the mapping.
type numNodes struct {
	present     bool
	homogeneous bool
	n           int
	byType      map[string]int
}

// newNumNodes normalizes a NodeCount into a resolver. An unset count yields
// an absent resolver (tolerated here; New rejects it for the public surface).
func newNumNodes(c NodeCount) *numNodes {
	if !c.set {
		return &numNodes{}
	}
	if c.byType == nil {
		return &numNodes{present: true, homogeneous: true, n: c.n}
	}

	return &numNodes{present: true, byType: c.byType}
}

// value resolves the target count for a node type. Homogeneous mode returns
// the scalar regardless of the key; a heterogeneous lookup miss fails with
// ErrMissingNodeSize naming the key.
func (r *numNodes) value(typeKey string) (int, error) {
	if r.homogeneous {
		return r.n, nil
	}
	n, ok := r.byType[typeKey]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingNodeSize, typeKey)
	}

	return n, nil
}

// srcDst is the first level of the edge-count cache key.
type srcDst struct {
	src, dst string
}

// edgeMode enumerates the three normalized shapes of an edge-count spec.
type edgeMode int

const (
	// edgesNone: no spec and no way to derive one; edge padding is skipped.
	edgesNone edgeMode = iota
	// edgesScalar: one explicit or derived target for every edge store.
	edgesScalar
	// edgesMapped: per-triple targets, lazily completed from node counts.
	edgesMapped
)

// numEdges resolves target edge counts. In mapped mode the cache is keyed
// first by (source, destination), then by relation; explicit entries are
// pre-seeded and derived entries are inserted append-only — once computed, a
// triple always resolves to the identical value, even if node counts were to
// become unavailable between calls.
//
// The cache is the one shared-mutable point of the whole transform; mu
// serializes first-time derivations so a Transform can be shared across
// goroutines.
type numEdges struct {
	mode  edgeMode
	n     int
	nodes *numNodes

	mu    sync.Mutex
	cache map[srcDst]map[string]int
}

// newNumEdges normalizes an EdgeCount against the node-count resolver:
//   - explicit scalar → scalar mode;
//   - absent spec + homogeneous node count n → scalar mode with n*n
//     (fully connected with self-loops);
//   - explicit mapping, or absent spec + heterogeneous node counts →
//     mapped mode, explicit entries pre-seeded;
//   - absent spec + absent node counts → none mode (skip edge padding).
func newNumEdges(c EdgeCount, nodes *numNodes) *numEdges {
	r := &numEdges{nodes: nodes, cache: make(map[srcDst]map[string]int)}
	switch {
	case c.set && c.byType == nil:
		r.mode = edgesScalar
		r.n = c.n
	case c.set:
		r.mode = edgesMapped
		for edgeType, n := range c.byType {
			r.seed(edgeType, n)
		}
	case nodes.present && nodes.homogeneous:
		r.mode = edgesScalar
		r.n = nodes.n * nodes.n
	case nodes.present:
		r.mode = edgesMapped
	default:
		r.mode = edgesNone
	}

	return r
}

// seed stores an explicit per-triple target (construction time, unlocked).
func (r *numEdges) seed(edgeType record.EdgeType, n int) {
	key := srcDst{src: edgeType.Src, dst: edgeType.Dst}
	rels, ok := r.cache[key]
	if !ok {
		rels = make(map[string]int)
		r.cache[key] = rels
	}
	rels[edgeType.Rel] = n
}

// isNone reports whether the whole spec is absent and underivable, in which
// case edge padding is skipped entirely.
func (r *numEdges) isNone() bool { return r.mode == edgesNone }

// scalar reports whether the resolver is in homogeneous (single-target) mode.
func (r *numEdges) scalar() bool { return r.mode == edgesScalar }

// value resolves the target edge count for a triple. Scalar mode ignores the
// key. Mapped mode returns the cached entry when present; otherwise it
// derives nodes(src) * nodes(dst), inserts it append-only under the triple
// and returns it. A derivation whose endpoint has no declared node count
// fails with ErrMissingNodeSize.
func (r *numEdges) value(edgeType record.EdgeType) (int, error) {
	switch r.mode {
	case edgesScalar:
		return r.n, nil
	case edgesNone:
		return 0, fmt.Errorf("numEdges.value(%s): no edge spec: %w", edgeType, ErrCountKind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := srcDst{src: edgeType.Src, dst: edgeType.Dst}
	if rels, ok := r.cache[key]; ok {
		if n, ok2 := rels[edgeType.Rel]; ok2 {
			return n, nil
		}
	}

	srcN, err := r.nodes.value(edgeType.Src)
	if err != nil {
		return 0, fmt.Errorf("numEdges.value(%s): source: %w", edgeType, err)
	}
	dstN, err := r.nodes.value(edgeType.Dst)
	if err != nil {
		return 0, fmt.Errorf("numEdges.value(%s): destination: %w", edgeType, err)
	}

	n := srcN * dstN
	r.seed(edgeType, n)

	return n, nil
}
