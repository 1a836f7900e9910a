// Package tensor provides a dense, row-major, N-dimensional float64 tensor
// and the constant-padding primitive used by the pad transform.
//
// 🚀 What is tensor?
//
//	A small, deterministic container for per-entity graph features:
//	  • Dense — flat backing slice, row-major strides, O(1) indexing
//	  • Pad — extend a tensor along one dimension with a constant fill
//	  • FillRegion — overwrite the tail region along one dimension
//
// All constructors validate shapes eagerly and return sentinel errors;
// indexing methods return ErrOutOfRange instead of panicking.
//
// Performance:
//
//   - At/Set: O(rank)
//   - Pad/Clone: O(len) time and memory (full materialization, no views)
//
// See example_test.go for usage.
package tensor
