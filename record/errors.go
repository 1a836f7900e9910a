// SPDX-License-Identifier: MIT
// Package record: sentinel error set.
// Callers MUST use errors.Is(err, ErrX) to branch on semantics; context is
// attached at call sites via %w wrapping.

package record

import "errors"

var (
	// ErrEmptyAttrName indicates an attribute name was the empty string.
	ErrEmptyAttrName = errors.New("record: attribute name is empty")

	// ErrNilAttr indicates a nil tensor was supplied for an attribute.
	ErrNilAttr = errors.New("record: attribute tensor is nil")

	// ErrUnknownAttr indicates an operation referenced an attribute absent
	// from the store.
	ErrUnknownAttr = errors.New("record: unknown attribute")

	// ErrWrongKind indicates an attribute was set with a kind conflicting
	// with its existing or reserved kind (e.g. edge_index as a node attribute).
	ErrWrongKind = errors.New("record: wrong attribute kind")

	// ErrBadEdgeIndex indicates a connectivity tensor that is not of shape [2, E].
	ErrBadEdgeIndex = errors.New("record: edge_index must have shape [2, E]")

	// ErrNoCount indicates an entity count was requested but no attribute or
	// explicit override can provide it.
	ErrNoCount = errors.New("record: entity count unavailable")

	// ErrEmptyTypeName indicates an edge-type element (source, relation or
	// destination) was the empty string.
	ErrEmptyTypeName = errors.New("record: type name is empty")
)
