package tensor_test

import (
	"testing"

	"github.com/graphcore/pytorch-geometric-fork/tensor"
)

// benchmarkPad is a helper that pads a rows×cols tensor by length rows.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkPad(b *testing.B, rows, cols, length int) {
	m, err := tensor.NewDense(rows, cols)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = tensor.Pad(m, 0, length, 0); err != nil {
			b.Fatalf("Pad failed: %v", err)
		}
	}
}

// BenchmarkPad_Small benchmarks padding a 100×16 feature tensor by 28 rows.
func BenchmarkPad_Small(b *testing.B) {
	benchmarkPad(b, 100, 16, 28)
}

// BenchmarkPad_Medium benchmarks padding a 1000×64 feature tensor by 500 rows.
func BenchmarkPad_Medium(b *testing.B) {
	benchmarkPad(b, 1000, 64, 500)
}

// BenchmarkPad_Wide benchmarks padding a 2×10000 connectivity tensor by 5000 columns.
func BenchmarkPad_Wide(b *testing.B) {
	m, err := tensor.NewDense(2, 10000)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tensor.Pad(m, 1, 5000, 0); err != nil {
			b.Fatalf("Pad failed: %v", err)
		}
	}
}
