// Package pgrad: the projected gradient engine.
package pgrad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// Method is the projected gradient strategy. Obtain one from New for
// each minimizer; a Method owns its scratch and must not be shared.
type Method struct {
	n      int
	params Params

	// working vectors: bounds copied at Set, one trial-point scratch
	l, u, xx []float64
}

// New returns a fresh projected gradient strategy.
func New() *Method { return &Method{} }

// compile-time check that Method satisfies the strategy surface.
var _ core.Strategy = (*Method)(nil)

// Name returns "pgrad".
func (s *Method) Name() string { return "pgrad" }

// DefaultParams returns the package defaults as a core.Params.
func (s *Method) DefaultParams() core.Params { return DefaultParams() }

// Init allocates the dimension-dependent scratch.
func (s *Method) Init(n int) error {
	s.n = n
	s.l = make([]float64, n)
	s.u = make([]float64, n)
	s.xx = make([]float64, n)

	return nil
}

// SetParams validates p and stores a copy; the previous block stays
// in effect on failure.
func (s *Method) SetParams(_ *core.Minimizer, p core.Params) error {
	pp, ok := p.(Params)
	if !ok {
		return fmt.Errorf("%w: want pgrad.Params, got %T", core.ErrInvalidParams, p)
	}
	if err := pp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidParams, err)
	}
	s.params = pp

	return nil
}

// Params returns a copy of the block in use.
func (s *Method) Params() core.Params { return s.params }

// Set copies the bounds, projects the iterate into the box and
// evaluates f and ∇f there.
func (s *Method) Set(m *core.Minimizer) core.Status {
	copy(s.l, m.Lower())
	copy(s.u, m.Upper())

	core.Proj(s.l, s.u, m.X)
	m.F = m.EvalFDF(m.X, m.Gradient)
	s.size(m)

	return core.Success
}

// Restart re-projects the current iterate and re-evaluates f and ∇f.
func (s *Method) Restart(m *core.Minimizer) core.Status {
	core.Proj(s.l, s.u, m.X)
	m.F = m.EvalFDF(m.X, m.Gradient)
	s.size(m)

	return core.Success
}

// Iterate performs one backtracking line search along the projected
// steepest-descent arc and refreshes the optimality proxy.
func (s *Method) Iterate(m *core.Minimizer) core.Status {
	s.lineSearch(m)
	s.size(m)

	return core.Success
}

// IsOptimal reports Success when Size ≤ Tol or F ≤ Fmin.
func (s *Method) IsOptimal(m *core.Minimizer) core.Status {
	if m.Size > s.params.Tol && m.F > s.params.Fmin {
		return core.Continue
	}

	return core.Success
}

// lineSearch backtracks on t over trials x_t = P(x − t∇f) until the
// sufficient-decrease condition f(x_t) ≤ f − (Alpha/t)·‖x_t−x‖²
// holds, safeguarding the quadratic interpolant for the next t inside
// [Sigma1·t, Sigma2·t]. On success it commits the trial and
// re-evaluates the gradient.
func (s *Method) lineSearch(m *core.Minimizer) {
	p := s.params
	fx := m.F

	var t, fxx, dif2, gtd float64
	tnew := 1.0
	for {
		t = tnew

		// 1) Trial point: xx = P(x − t·∇f).
		floats.AddScaledTo(s.xx, m.X, -t, m.Gradient)
		core.Proj(s.l, s.u, s.xx)
		fxx = m.EvalF(s.xx)

		// 2) Displacement dx = xx − x, its squared norm, and ⟨∇f,dx⟩.
		floats.SubTo(m.Dx, s.xx, m.X)
		dif2 = floats.Dot(m.Dx, m.Dx)
		gtd = floats.Dot(m.Gradient, m.Dx)

		// 3) Safeguarded quadratic interpolant for the next step.
		tnew = -t * t * gtd / (2 * (fxx - fx - gtd))
		tnew = math.Max(p.Sigma1*t, math.Min(p.Sigma2*t, tnew))

		// 4) Armijo sufficient decrease on the projected arc.
		if fxx <= fx-(p.Alpha/t)*dif2 {
			break
		}
	}

	copy(m.X, s.xx)
	m.F = fxx
	m.EvalDF(m.X, m.Gradient)
}

// size refreshes the optimality proxy ‖P(x−∇f)−x‖∞.
func (s *Method) size(m *core.Minimizer) {
	floats.SubTo(s.xx, m.X, m.Gradient)
	core.Proj(s.l, s.u, s.xx)
	floats.Sub(s.xx, m.X)
	m.Size = floats.Norm(s.xx, math.Inf(1))
}
