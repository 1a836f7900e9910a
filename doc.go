// Package geometric pads variably-sized graph records to fixed, uniform
// shapes, so a batch of graphs can be stacked into fixed-size tensors for
// downstream processing.
//
// 🚀 What is in the box?
//
//	Three subpackages, leaves first:
//		• tensor/ — dense row-major N-d float64 tensors + the constant pad primitive
//		• record/ — homogeneous (Data) and heterogeneous (HeteroData) graph records
//		• pad/    — padding policies, size resolution and the pad transform itself
//
// ✨ Why choose it?
//
//   - Hierarchical fill policies – uniform, per attribute name, per node or
//     edge type, or any nested combination, with defaults at every level
//   - Implicit edge targets – an absent edge count pads to full connectivity
//     with self-loops, derived from node counts and memoized per edge type
//   - Connectivity-aware – appended edges reference the placeholder node,
//     never a scalar fill
//   - Fail fast – every configuration error surfaces at construction, never
//     mid-transform
//   - Pure Go – deterministic, no cgo
//
// Quick ASCII example (3 nodes padded to 5; new edges self-loop on node 3):
//
//	    0───1          0───1   3⟲  4
//	     \  │    ⇒      \  │
//	      \ │            \ │
//	        2              2
//
// Start with pad.New or pad.FromYAML; see pad/example_test.go for
// homogeneous and heterogeneous walkthroughs.
package geometric
