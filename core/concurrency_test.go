package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boxmin/core"
	"github.com/katalvlaran/boxmin/spg"
)

// runTrajectory minimizes the probe quadratic from a deterministic
// start and returns the sequence of objective values, one per outer
// iteration.
func runTrajectory(n, iters int) ([]float64, error) {
	m, err := core.New(spg.New(), n)
	if err != nil {
		return nil, err
	}

	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = float64(i%7) - 3
	}

	if err = m.Set(probeObjective(n), core.UniformBounds(n, -5, 5), x0, spg.DefaultParams()); err != nil {
		return nil, err
	}

	history := make([]float64, 0, iters)
	for i := 0; i < iters && m.IsOptimal() == core.Continue; i++ {
		if st := m.Iterate(); st != core.Success {
			break
		}
		history = append(history, m.F)
	}

	return history, nil
}

// TestIndependentMinimizers_Deterministic runs several independent
// minimizer instances on separate goroutines and checks each against
// a serial reference run: instances own their scratch exclusively, so
// concurrency must not change a single iterate.
func TestIndependentMinimizers_Deterministic(t *testing.T) {
	const (
		n       = 20
		iters   = 50
		workers = 8
	)

	want, err := runTrajectory(n, iters)
	require.NoError(t, err)
	require.NotEmpty(t, want)

	results := make([][]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			history, err := runTrajectory(n, iters)
			if err != nil {
				return err
			}
			results[w] = history

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w, history := range results {
		assert.Equal(t, want, history, "worker %d diverged from the serial trajectory", w)
	}
}
