package gencan_test

import (
	"testing"

	"github.com/katalvlaran/boxmin/core"
	"github.com/katalvlaran/boxmin/gencan"
	"github.com/katalvlaran/boxmin/pgrad"
	"github.com/katalvlaran/boxmin/spg"
)

// benchmarkSolve minimizes the n-dimensional seed quadratic to the
// strategy's default tolerance, rebuilding the minimizer every
// iteration so each sample measures a complete solve.
func benchmarkSolve(b *testing.B, build func() core.Strategy, params core.Params, n int) {
	obj := seedObjective(n)
	bounds := core.UniformBounds(n, -3, 3)
	x0 := seedStart(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := core.New(build(), n)
		if err != nil {
			b.Fatalf("new: %v", err)
		}
		if err = m.Set(obj, bounds, x0, params); err != nil {
			b.Fatalf("set: %v", err)
		}
		for k := 0; k < 2000 && m.IsOptimal() == core.Continue; k++ {
			if st := m.Iterate(); st == core.FDDir {
				b.Fatalf("no descent direction")
			}
		}
		if m.IsOptimal() != core.Success {
			b.Fatalf("did not converge")
		}
	}
}

// BenchmarkGencan_Seed100 measures a full gencan solve of the n = 100
// seed problem.
func BenchmarkGencan_Seed100(b *testing.B) {
	benchmarkSolve(b, func() core.Strategy { return gencan.New() }, gencan.DefaultParams(), 100)
}

// BenchmarkSPG_Seed100 measures the same solve with spg.
func BenchmarkSPG_Seed100(b *testing.B) {
	benchmarkSolve(b, func() core.Strategy { return spg.New() }, spg.DefaultParams(), 100)
}

// BenchmarkPGrad_Seed30 measures a projected-gradient solve on a
// smaller instance (pgrad needs far more iterations on the 100-dim
// problem than a benchmark sample should).
func BenchmarkPGrad_Seed30(b *testing.B) {
	benchmarkSolve(b, func() core.Strategy { return pgrad.New() }, pgrad.DefaultParams(), 30)
}
