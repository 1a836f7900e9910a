// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package tensor

import "errors"

var (
	// ErrInvalidShape is returned when a requested shape is invalid
	// (no dimensions, or a dimension <= 0).
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index or dimension is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRankMismatch indicates an index vector whose length differs from the
	// tensor rank.
	ErrRankMismatch = errors.New("tensor: rank mismatch")

	// ErrBadPadLength signals a negative pad length.
	ErrBadPadLength = errors.New("tensor: pad length must be >= 0")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
