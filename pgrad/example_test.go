package pgrad_test

import (
	"fmt"

	"github.com/katalvlaran/boxmin/core"
	"github.com/katalvlaran/boxmin/pgrad"
)

// ExampleNew minimizes the two-dimensional quadratic
// f(x) = (x₀ − 5)² + (x₁ − 5)² over the box [0, 1]²: the
// unconstrained minimum (5, 5) is infeasible, so the solver must walk
// into the corner (1, 1).
func ExampleNew() {
	obj := core.Objective{
		N: 2,
		F: func(x []float64) float64 {
			return (x[0]-5)*(x[0]-5) + (x[1]-5)*(x[1]-5)
		},
		Df: func(x, grad []float64) {
			grad[0] = 2 * (x[0] - 5)
			grad[1] = 2 * (x[1] - 5)
		},
	}

	m, err := core.New(pgrad.New(), 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = m.Set(obj, core.UniformBounds(2, 0, 1), []float64{0.5, 0.5}, pgrad.DefaultParams()); err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < 100 && m.IsOptimal() == core.Continue; i++ {
		if st := m.Iterate(); st != core.Success {
			fmt.Println("stopped:", st)

			return
		}
	}

	fmt.Printf("converged: %v\n", m.IsOptimal() == core.Success)
	fmt.Printf("at corner: %v\n", core.DistInf(m.X, []float64{1, 1}) < 1e-6)
	// Output:
	// converged: true
	// at corner: true
}
