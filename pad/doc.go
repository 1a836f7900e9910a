// Package pad resolves per-attribute fill values and target sizes for graph
// records and pads every qualifying attribute to a fixed, uniform shape, so
// that a batch of variably-sized graphs can be stacked into fixed-size
// tensors.
//
// 🚀 What is pad?
//
//	A deterministic transform over record.Data / record.HeteroData:
//	  • Padding policies — Uniform, AttrNamePadding, NodeTypePadding and
//	    EdgeTypePadding resolve (store type, attribute name) → fill value,
//	    with fallback to a default at every level.
//	  • Size resolution — target node counts per type, target edge counts
//	    per (src, rel, dst) triple, with an implicit "fully connect with
//	    self-loops" default derived from node counts and memoized per triple.
//	  • Orchestration — per store: drop excluded attributes, select what
//	    qualifies, compute the pad length, resolve the fill value and extend
//	    each attribute along its varying dimension.
//
// The connectivity attribute (record.KeyEdgeIndex) is special: its appended
// columns reference the placeholder node — index = the node count before node
// padding — so padded edges form self-loops on the first padded node. Edge
// stores are therefore processed before node stores. It is also always
// retained, even when listed in ExcludeKeys.
//
// All validation is eager: configuration-shape errors surface at New (or at
// config parse time), size and capability errors at Apply, and resolution
// itself never fails.
//
// ⚙️ Usage:
//
//	p, err := pad.New(pad.Options{
//	  MaxNumNodes:  pad.Nodes(32),
//	  NodePadValue: pad.Uniform(0),
//	  ExcludeKeys:  []string{"y"},
//	})
//	if err != nil { ... }
//	if err = p.Apply(data); err != nil { ... }
//
// Concurrency: a Transform may be shared across goroutines; the one mutable
// point, the derived edge-count cache, is guarded by an internal mutex.
//
// See example_test.go for homogeneous and heterogeneous walkthroughs.
package pad
