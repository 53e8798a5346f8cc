package evolve_test

import (
	"fmt"

	"github.com/katalvlaran/slitsim/evolve"
	"github.com/katalvlaran/slitsim/matrix"
	"github.com/katalvlaran/slitsim/topology"
)

// ExampleQuantum contrasts the two evolvers on the same double-slit topology.
func ExampleQuantum() {
	pm, _ := matrix.FromTopology(topology.ClassicalDoubleSlit())
	qm, _ := matrix.ComplexFromTopology(topology.QuantumDoubleSlit())
	s0, _ := evolve.Basis(6, 0)
	a0, _ := evolve.CBasis(6, 0)

	p, err := evolve.Probabilistic(pm, s0, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	q, err := evolve.Quantum(qm, a0, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("classical targets: %.3f %.3f %.3f\n", p[3], p[4], p[5])
	fmt.Printf("quantum targets:   %.3f %.3f %.3f\n", q.Probabilities[3], q.Probabilities[4], q.Probabilities[5])
	fmt.Printf("quantum total:     %.3f\n", q.Total)
	// Output:
	// classical targets: 0.333 0.333 0.333
	// quantum targets:   0.000 0.667 0.000
	// quantum total:     0.667
}
