// SPDX-License-Identifier: MIT
// Package pad: sentinel errors for the pad package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context (field names, both counts) via %w.
//   - No error is ever downgraded to a default; every failure surfaces
//     immediately to the caller.

package pad

import "errors"

// ErrBadPaddingValue indicates a policy mapping value whose type is outside
// the accepted set for that policy kind (e.g. a NodeTypePadding nested inside
// an AttrNamePadding).
// Classification: configuration-shape error (construction time).
var ErrBadPaddingValue = errors.New("pad: padding value outside accepted set")

// ErrBadEdgeType indicates an edge-type key that is not a triple of
// non-empty (source, relation, destination) names.
// Classification: configuration-shape error (construction time).
var ErrBadEdgeType = errors.New("pad: invalid edge type key")

// ErrNoNodeCount indicates that Options.MaxNumNodes was not provided.
// Classification: configuration-shape error (construction time).
var ErrNoNodeCount = errors.New("pad: max_num_nodes is required")

// ErrMissingNodeSize indicates a heterogeneous size lookup for a node type
// absent from the max_num_nodes mapping. Also raised when a derived
// full-connectivity edge target needs a node count that was never declared.
// Usage: if errors.Is(err, ErrMissingNodeSize) { /* declare the type */ }.
var ErrMissingNodeSize = errors.New("pad: node count not specified for type")

// ErrNodeTarget indicates a target node count that is not strictly greater
// than the current count. Padding must add at least one placeholder node.
// Classification: invariant violation (fatal, not retried).
var ErrNodeTarget = errors.New("pad: target node count must exceed current count")

// ErrEdgeTarget indicates a target edge count lower than the current count.
// Padding must never shrink a store.
// Classification: invariant violation (fatal, not retried).
var ErrEdgeTarget = errors.New("pad: target edge count below current count")

// ErrPolicyKind indicates a capability mismatch between the record shape and
// a policy variant: homogeneous records accept only Uniform or
// AttrNamePadding; heterogeneous records additionally accept the matching
// typed variant (NodeTypePadding for nodes, EdgeTypePadding for edges).
var ErrPolicyKind = errors.New("pad: policy kind incompatible with record shape")

// ErrCountKind indicates a capability mismatch between the record shape and
// a size spec: homogeneous records require scalar counts, not mappings.
var ErrCountKind = errors.New("pad: size spec incompatible with record shape")

// ErrExcludeReserved indicates an attempt to exclude the reserved feature
// key "x" from padding.
// Classification: configuration-shape error (construction time).
var ErrExcludeReserved = errors.New("pad: reserved key may not be excluded")

// ErrNilRecord indicates a nil record was passed to Apply/ApplyHetero.
var ErrNilRecord = errors.New("pad: nil record")

// ErrBadConfig indicates a malformed YAML configuration: wrong container
// type, wrong key arity, unknown policy kind, or a non-numeric value where a
// scalar is expected. The wrapping message names the offending field.
var ErrBadConfig = errors.New("pad: invalid configuration")
