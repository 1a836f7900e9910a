// SPDX-License-Identifier: MIT
// Package tensor: constant-padding primitive and the tail-region overwrite
// helper. Pad is the collaborator contract consumed by the pad transform:
// a new tensor extended along one dimension, original data preserved at the
// lower indices, new slots filled with a constant.

package tensor

import "fmt"

// Pad returns a new tensor with length additional slots along dimension dim,
// all filled with fill. The original data occupies the lower indices along
// that dimension; t itself is never mutated.
// Stage 1 (Validate): nil receiver, dim in range, length >= 0.
// Stage 2 (Prepare): allocate the extended backing slice.
// Stage 3 (Execute): block-copy each outer slab, filling the appended region.
// Complexity: O(newLen) time and memory.
func Pad(t *Dense, dim, length int, fill float64) (*Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("Pad: %w", ErrNilTensor)
	}
	if dim < 0 || dim >= len(t.shape) {
		return nil, fmt.Errorf("Pad: dim %d for rank %d: %w", dim, len(t.shape), ErrOutOfRange)
	}
	if length < 0 {
		return nil, fmt.Errorf("Pad: length %d: %w", length, ErrBadPadLength)
	}
	if length == 0 {
		return t.Clone(), nil
	}

	newShape := t.Shape()
	newShape[dim] += length
	out := &Dense{shape: newShape, stride: strides(newShape)}
	out.data = make([]float64, t.Len()/t.shape[dim]*newShape[dim])

	// inner is the contiguous run per index along dim; outer counts the slabs.
	inner := t.stride[dim]
	oldBlock := t.shape[dim] * inner
	newBlock := newShape[dim] * inner
	outer := len(t.data) / oldBlock

	for o := 0; o < outer; o++ {
		src := t.data[o*oldBlock : (o+1)*oldBlock]
		dst := out.data[o*newBlock : (o+1)*newBlock]
		copy(dst, src)
		for i := oldBlock; i < newBlock; i++ {
			dst[i] = fill
		}
	}

	return out, nil
}

// FillRowFrom overwrites columns [from, cols) of one row of a rank-2 tensor
// with value v. Used for the selective second step of connectivity padding,
// where only the appended region of the destination row changes.
// Complexity: O(cols - from).
func (t *Dense) FillRowFrom(row, from int, v float64) error {
	if t == nil {
		return fmt.Errorf("FillRowFrom: %w", ErrNilTensor)
	}
	if len(t.shape) != 2 {
		return fmt.Errorf("FillRowFrom: rank %d: %w", len(t.shape), ErrRankMismatch)
	}
	if row < 0 || row >= t.shape[0] {
		return fmt.Errorf("FillRowFrom: row %d of %d: %w", row, t.shape[0], ErrOutOfRange)
	}
	if from < 0 || from > t.shape[1] {
		return fmt.Errorf("FillRowFrom: from %d, cols %d: %w", from, t.shape[1], ErrOutOfRange)
	}

	base := row * t.stride[0]
	for c := from; c < t.shape[1]; c++ {
		t.data[base+c] = v
	}

	return nil
}
