package tensor_test

import (
	"fmt"

	"github.com/graphcore/pytorch-geometric-fork/tensor"
)

// ExamplePad extends a [2, 3] feature tensor by two rows of a constant fill.
func ExamplePad() {
	m, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	out, err := tensor.Pad(m, 0, 2, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(out)
	// Output:
	// Dense[4 3][1, 2, 3, 4, 5, 6, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5]
}
