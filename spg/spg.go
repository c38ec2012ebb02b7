// Package spg: the spectral projected gradient engine.
package spg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// Method is the spectral projected gradient strategy. Obtain one from
// New for each minimizer; a Method owns its scratch and must not be
// shared.
type Method struct {
	n      int
	params Params

	// working vectors: bounds, trial point, direction, iterate and
	// gradient differences
	l, u, xx, d, s, y []float64

	// spectral steplength
	alpha float64

	// non-monotone ring buffer of past objective values: ring is
	// allocated at Set (its length is the parameter M), tail indexes
	// the most recent entry and count grows toward len(ring)
	ring  []float64
	count int
	tail  int
}

// New returns a fresh spectral projected gradient strategy.
func New() *Method { return &Method{} }

var _ core.Strategy = (*Method)(nil)

// Name returns "spg".
func (s *Method) Name() string { return "spg" }

// DefaultParams returns the package defaults as a core.Params.
func (s *Method) DefaultParams() core.Params { return DefaultParams() }

// Init allocates the dimension-dependent scratch. The ring buffer
// depends on the parameter M and is allocated at Set instead.
func (s *Method) Init(n int) error {
	s.n = n
	s.l = make([]float64, n)
	s.u = make([]float64, n)
	s.xx = make([]float64, n)
	s.d = make([]float64, n)
	s.s = make([]float64, n)
	s.y = make([]float64, n)

	return nil
}

// SetParams validates p and stores a copy; the previous block stays
// in effect on failure. Shrinking or growing the history window M on
// a running minimizer reallocates the ring and reseeds it from the
// current objective value.
func (s *Method) SetParams(m *core.Minimizer, p core.Params) error {
	pp, ok := p.(Params)
	if !ok {
		return fmt.Errorf("%w: want spg.Params, got %T", core.ErrInvalidParams, p)
	}
	if err := pp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidParams, err)
	}
	s.params = pp

	if s.ring != nil && len(s.ring) != pp.M {
		s.ring = make([]float64, pp.M)
		s.count = 1
		s.tail = 0
		s.ring[0] = m.F
	}

	return nil
}

// Params returns a copy of the block in use.
func (s *Method) Params() core.Params { return s.params }

// Set copies the bounds, projects the iterate, evaluates f and ∇f,
// initializes the spectral steplength from ‖∇f‖∞ and seeds the
// non-monotone history with the starting value.
func (s *Method) Set(m *core.Minimizer) core.Status {
	copy(s.l, m.Lower())
	copy(s.u, m.Upper())

	core.Proj(s.l, s.u, m.X)
	m.F = m.EvalFDF(m.X, m.Gradient)
	s.size(m)
	s.initAlpha(m)

	s.ring = make([]float64, s.params.M)
	s.count = 1
	s.tail = 0
	s.ring[0] = m.F

	return core.Success
}

// Restart re-projects, re-evaluates, resets the spectral steplength
// and reseeds the history from the current point.
func (s *Method) Restart(m *core.Minimizer) core.Status {
	core.Proj(s.l, s.u, m.X)
	m.F = m.EvalFDF(m.X, m.Gradient)
	s.initAlpha(m)
	s.size(m)

	s.count = 1
	s.tail = 0
	s.ring[0] = m.F

	return core.Success
}

// Iterate performs one non-monotone line search along the spectral
// projected gradient direction and refreshes the Barzilai–Borwein
// steplength from the new (s, y) pair.
func (s *Method) Iterate(m *core.Minimizer) core.Status {
	p := s.params

	s.lineSearch(m)

	// Spectral update. y holds −(∇f_new − ∇f_old), so b = ⟨s,y⟩ is the
	// negated curvature ⟨s,Δg⟩ and −‖s‖²/b is the standard BB₁ step.
	b := floats.Dot(s.s, s.y)
	if b >= 0 {
		s.alpha = p.AlphaMax
	} else {
		ak := -floats.Dot(s.s, s.s) / b
		s.alpha = math.Min(p.AlphaMax, math.Max(p.AlphaMin, ak))
	}

	copy(m.Dx, s.s)

	return core.Success
}

// IsOptimal reports Success when Size ≤ Tol or F ≤ Fmin.
func (s *Method) IsOptimal(m *core.Minimizer) core.Status {
	if m.Size > s.params.Tol && m.F > s.params.Fmin {
		return core.Continue
	}

	return core.Success
}

// initAlpha sets the starting spectral steplength α₀ = 1/‖∇f‖∞. A
// vanishing gradient means the projected gradient vanishes too, so
// the point is already optimal; α is left at 1 and never used.
func (s *Method) initAlpha(m *core.Minimizer) {
	gsup := floats.Norm(m.Gradient, math.Inf(1))
	if gsup == 0 {
		s.alpha = 1.0

		return
	}
	s.alpha = 1.0 / gsup
}

// lineSearch runs the non-monotone Armijo search of Grippo–Lampariello
// –Lucidi flavor: a trial x + λd is accepted as soon as f(x + λd) is no
// larger than the largest F[k] + Gamma·λ·⟨d,∇f⟩ over the last count
// history slots;
// otherwise λ is reduced by the safeguarded quadratic interpolant.
// On acceptance it commits the point, refreshes the gradient, the
// gradient difference y and the history ring.
func (s *Method) lineSearch(m *core.Minimizer) {
	p := s.params

	// 1) Save the previous gradient; y completes to −Δg after the
	//    new gradient is known.
	copy(s.y, m.Gradient)

	// 2) Spectral direction d = P(x − α∇f) − x and its slope ⟨d,∇f⟩.
	floats.AddScaledTo(s.d, m.X, -s.alpha, m.Gradient)
	core.Proj(s.l, s.u, s.d)
	floats.Sub(s.d, m.X)
	dTg := floats.Dot(s.d, m.Gradient)

	// 3) Non-monotone backtracking on λ.
	var fxx float64
	lambda := 1.0
	for {
		floats.AddScaledTo(s.xx, m.X, lambda, s.d)
		fxx = m.EvalF(s.xx)

		fmax := math.Inf(-1)
		for i := 0; i < s.count; i++ {
			fmax = math.Max(fmax, s.ring[i]+p.Gamma*lambda*dTg)
		}
		if fxx <= fmax {
			break
		}

		// Quadratic model of φ(λ) = f(x+λd), safeguarded into
		// [Sigma1·λ, Sigma2·λ].
		lnew := -lambda * lambda * dTg / (2 * (fxx - m.F - lambda*dTg))
		lambda = math.Max(p.Sigma1*lambda, math.Min(p.Sigma2*lambda, lnew))
	}

	// 4) Commit: s = x⁺ − x, x = x⁺, fresh gradient and value.
	floats.SubTo(s.s, s.xx, m.X)
	copy(m.X, s.xx)
	m.EvalDF(m.X, m.Gradient)
	m.F = fxx

	s.size(m)

	// 5) y = ∇f_old − ∇f_new = −(∇f_new − ∇f_old).
	floats.Sub(s.y, m.Gradient)

	// 6) Push f into the history ring.
	s.count = min(s.count+1, len(s.ring))
	s.tail = (s.tail + 1) % len(s.ring)
	s.ring[s.tail] = m.F
}

// size refreshes the optimality proxy ‖P(x−∇f)−x‖∞.
func (s *Method) size(m *core.Minimizer) {
	floats.SubTo(s.d, m.X, m.Gradient)
	core.Proj(s.l, s.u, s.d)
	floats.Sub(s.d, m.X)
	m.Size = floats.Norm(s.d, math.Inf(1))
}
