// SPDX-License-Identifier: MIT
// Package tensor: Dense is the concrete, row-major N-dimensional tensor,
// storing elements in a flat slice for performance and cache friendliness.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major N-dimensional tensor of float64 values.
// shape holds the per-dimension sizes, stride the row-major strides,
// and data holds prod(shape) elements.
type Dense struct {
	shape  []int     // per-dimension sizes, all > 0
	stride []int     // row-major strides, stride[rank-1] == 1
	data   []float64 // flat backing storage, length == prod(shape)
}

// strides computes row-major strides for a validated shape.
// Complexity: O(rank).
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		st[d] = acc
		acc *= shape[d]
	}

	return st
}

// NewDense creates a zero-filled tensor with the given shape.
// Stage 1 (Validate): at least one dimension, every dimension > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidShape.
// Complexity: O(prod(shape)) time and memory.
func NewDense(shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("NewDense: empty shape: %w", ErrInvalidShape)
	}
	total := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("NewDense: dimension %d: %w", s, ErrInvalidShape)
		}
		total *= s
	}

	own := make([]int, len(shape))
	copy(own, shape)

	return &Dense{shape: own, stride: strides(own), data: make([]float64, total)}, nil
}

// Full creates a tensor of the given shape with every element set to fill.
// Complexity: O(prod(shape)).
func Full(fill float64, shape ...int) (*Dense, error) {
	t, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = fill
	}

	return t, nil
}

// FromSlice creates a tensor with the given shape, copying values from data.
// The slice length must equal prod(shape).
// Complexity: O(len(data)).
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	t, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("FromSlice: %d values for shape %v: %w",
			len(data), shape, ErrInvalidShape)
	}
	copy(t.data, data)

	return t, nil
}

// Rank returns the number of dimensions. Complexity: O(1).
func (t *Dense) Rank() int { return len(t.shape) }

// Shape returns a copy of the per-dimension sizes. Complexity: O(rank).
func (t *Dense) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

// Size returns the length of dimension dim, or ErrOutOfRange.
// Complexity: O(1).
func (t *Dense) Size(dim int) (int, error) {
	if dim < 0 || dim >= len(t.shape) {
		return 0, fmt.Errorf("Size(%d): %w", dim, ErrOutOfRange)
	}

	return t.shape[dim], nil
}

// Len returns the total number of elements. Complexity: O(1).
func (t *Dense) Len() int { return len(t.data) }

// offsetOf computes the flat offset for an index vector, validating both
// arity and per-dimension bounds.
// Complexity: O(rank).
func (t *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("index %v for rank %d: %w", idx, len(t.shape), ErrRankMismatch)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			return 0, fmt.Errorf("index %v, dim %d: %w", idx, d, ErrOutOfRange)
		}
		off += i * t.stride[d]
	}

	return off, nil
}

// At retrieves the element at the given index vector.
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		return 0, fmt.Errorf("Dense.At: %w", err)
	}

	return t.data[off], nil
}

// Set assigns value v at the given index vector.
// Complexity: O(rank).
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offsetOf(idx)
	if err != nil {
		return fmt.Errorf("Dense.Set: %w", err)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(len) time and memory.
func (t *Dense) Clone() *Dense {
	cp := &Dense{
		shape:  make([]int, len(t.shape)),
		stride: make([]int, len(t.stride)),
		data:   make([]float64, len(t.data)),
	}
	copy(cp.shape, t.shape)
	copy(cp.stride, t.stride)
	copy(cp.data, t.data)

	return cp
}

// Equal reports whether two tensors have identical shapes and element-wise
// equal values within eps. NaN never compares equal.
// Complexity: O(len).
func (t *Dense) Equal(o *Dense, eps float64) bool {
	if o == nil || len(t.shape) != len(o.shape) {
		return false
	}
	for d := range t.shape {
		if t.shape[d] != o.shape[d] {
			return false
		}
	}
	for i := range t.data {
		if math.Abs(t.data[i]-o.data[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: shape plus flat values.
// Complexity: O(len) for string construction.
func (t *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense%v[", t.shape)
	for i, v := range t.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]")

	return b.String()
}
