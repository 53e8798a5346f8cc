package wave_test

import (
	"fmt"

	"github.com/katalvlaran/slitsim/wave"
)

// ExampleCompute evaluates the reference two-slit screen.
func ExampleCompute() {
	pat, err := wave.Compute(wave.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("samples=%d max=%.1f dark=%t\n", pat.Len(), pat.Max(), pat.Min() < 0.1)
	// Output:
	// samples=100 max=1.0 dark=true
}
