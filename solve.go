// Package boxmin: the convenience driver shared by the examples and
// by callers that do not need per-iteration control.
package boxmin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boxmin/core"
)

// Sentinel errors returned by Solve.
var (
	// ErrMaxIterations indicates that the iteration budget ran out
	// before the optimality predicate held.
	ErrMaxIterations = errors.New("boxmin: maximum iterations reached")

	// ErrNoDescent indicates that the solver could not produce a
	// descent direction and stopped at the current iterate.
	ErrNoDescent = errors.New("boxmin: no descent direction")

	// ErrLineSearch indicates a terminally failed line search.
	ErrLineSearch = errors.New("boxmin: line search failed")
)

// Result summarizes a completed Solve run.
type Result struct {
	// Status is the final status: Success for ordinary convergence,
	// UnboundedF for the Fmin cut-off.
	Status core.Status

	// Iterations is the number of outer iterations performed.
	Iterations int

	// FCount, GCount and HCount snapshot the evaluation counters.
	FCount, GCount, HCount int
}

// Solve drives a configured minimizer until its optimality predicate
// holds or maxIter outer iterations have been spent. It is the loop
// every caller would otherwise write:
//
//	for is_optimal says continue { iterate }
//
// with the status plumbing handled: informational codes (FInnerIt,
// FLSearch recovered by the strategy) keep iterating, the Fmin
// cut-off terminates successfully, and terminal codes surface as
// errors wrapping the matching sentinel.
//
// The minimizer must have been Set; its X, F, Gradient and counters
// hold the outcome afterwards.
func Solve(m *core.Minimizer, maxIter int) (Result, error) {
	res := Result{Status: core.Continue}

	snapshot := func() {
		res.FCount = m.FCount()
		res.GCount = m.GCount()
		res.HCount = m.HCount()
	}

	for ; res.Iterations < maxIter; res.Iterations++ {
		if m.IsOptimal() == core.Success {
			res.Status = core.Success
			snapshot()

			return res, nil
		}

		switch st := m.Iterate(); st {
		case core.Success, core.FInnerIt:
			// FInnerIt still commits a point; keep going.
		case core.FLSearch:
			// Surfaced only when the strategy's own fallback failed
			// too; the committed point is as far as this run gets.
			res.Status = st
			res.Iterations++
			snapshot()

			if m.IsOptimal() == core.Success {
				res.Status = core.Success

				return res, nil
			}

			return res, fmt.Errorf("%w after %d iterations", ErrLineSearch, res.Iterations)
		case core.UnboundedF:
			// User-requested cut-off: successful termination.
			res.Status = core.UnboundedF
			res.Iterations++
			snapshot()

			return res, nil
		case core.FDDir:
			res.Status = st
			snapshot()

			return res, fmt.Errorf("%w after %d iterations", ErrNoDescent, res.Iterations)
		default:
			res.Status = st
			snapshot()

			return res, fmt.Errorf("boxmin: iterate failed with status %v", st)
		}
	}

	if m.IsOptimal() == core.Success {
		res.Status = core.Success
		snapshot()

		return res, nil
	}

	res.Status = core.Continue
	snapshot()

	return res, fmt.Errorf("%w: %d", ErrMaxIterations, maxIter)
}
