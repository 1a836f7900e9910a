// SPDX-License-Identifier: MIT
// Package pad: public configuration surface for the transform.
//
// Options is an exported struct in the spirit of the other option types in
// this module: deterministic defaults, eager validation in New, no globals.

package pad

// Mask attributes always padded with Options.MaskPadValue, regardless of any
// node policy.
const (
	// KeyTrainMask is the training-split mask attribute.
	KeyTrainMask = "train_mask"
	// KeyValMask is the validation-split mask attribute.
	KeyValMask = "val_mask"
	// KeyTestMask is the test-split mask attribute.
	KeyTestMask = "test_mask"
)

// reservedKey is the feature attribute that may never be excluded: a record
// stripped of "x" loses the node count source padding relies on.
const reservedKey = "x"

// Options configures a Transform.
//
// Fields:
//   - MaxNumNodes  — REQUIRED. Target node count: Nodes(n) for homogeneous
//     records, NodesByType(m) for heterogeneous ones (the mapping must cover
//     every node type the records contain).
//   - MaxNumEdges  — optional. Target edge count: Edges(n), EdgesByType(m),
//     or the zero value, which pads edges to full connectivity with
//     self-loops (nodes(src) × nodes(dst), derived lazily per triple and
//     memoized).
//   - NodePadValue — optional fill policy for node attributes; nil means
//     Uniform(0).
//   - EdgePadValue — optional fill policy for edge attributes; nil means
//     Uniform(0). The connectivity attribute ignores this policy: its
//     appended columns hold placeholder node indices.
//   - MaskPadValue — fill for train_mask/val_mask/test_mask; defaults to 0.
//   - ExcludeKeys  — attribute names dropped from every store before
//     padding. "x" is rejected at construction; the connectivity attribute
//     is always retained.
//
// Example:
//
//	p, err := pad.New(pad.Options{
//	  MaxNumNodes:  pad.NodesByType(map[string]int{"v1": 4, "v2": 5}),
//	  NodePadValue: pad.Uniform(-1),
//	})
type Options struct {
	MaxNumNodes  NodeCount
	MaxNumEdges  EdgeCount
	NodePadValue Padding
	EdgePadValue Padding
	MaskPadValue float64
	ExcludeKeys  []string
}
