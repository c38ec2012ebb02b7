// Package gencan: full-space spectral projected gradient line search.
package gencan

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// spgls performs one monotone Armijo line search along the spectral
// projected gradient direction d = P(x − λ∇f) − x in the full space.
// Unlike the spg engine's search it is monotone (single Armijo
// reference value) and it backtracks with the shared safeguarded
// quadratic interpolation.
//
// Returns Success on acceptance, UnboundedF when a trial that fails
// the Armijo test lies at or below the Fmin cut-off (trial
// committed), and FLSearch when MinInterp
// interpolations produced indistinguishable iterates. The caller
// refreshes the gradient.
func (s *Method) spgls(m *core.Minimizer) core.Status {
	p := s.params

	// 1) First trial: full spectral step, projected.
	alpha := 1.0

	floats.AddScaledTo(s.xtrial, m.X, -s.lambda, m.Gradient)
	core.MinOfMax(s.xtrial, s.u, s.l, s.xtrial)

	// 2) Direction d = xtrial − x and slope ⟨∇f,d⟩.
	floats.SubTo(s.d, s.xtrial, m.X)
	gtd := floats.Dot(m.Gradient, s.d)

	ftrial := m.EvalF(s.xtrial)

	interp := 0

	// 3) Backtrack until the Armijo condition holds.
	for ftrial > m.F+p.Gamma*alpha*gtd {
		// User cut-off: any value at or below Fmin terminates the
		// whole minimization, so commit and surface it.
		if ftrial <= p.Fmin {
			m.F = ftrial
			copy(m.X, s.xtrial)

			return core.UnboundedF
		}

		interp++

		if alpha < p.Sigma1 {
			alpha /= p.NInt
		} else {
			// Quadratic model of φ(α) = f(x+αd), safeguarded into
			// [Sigma1, Sigma2·α].
			atemp := -gtd * alpha * alpha / (2.0 * (ftrial - m.F - alpha*gtd))
			if atemp < p.Sigma1 || atemp > p.Sigma2*alpha {
				alpha /= p.NInt
			} else {
				alpha = atemp
			}
		}

		// New trial xtrial = x + α·d.
		floats.AddScaledTo(s.xtrial, m.X, alpha, s.d)
		ftrial = m.EvalF(s.xtrial)

		// Too many interpolations with indistinguishable iterates:
		// give up on this search and keep the last trial.
		if interp > p.MinInterp &&
			areClose(s.n, alpha, s.d, m.X, p.EpsRel, p.EpsAbs) {
			m.F = ftrial
			copy(m.X, s.xtrial)

			return core.FLSearch
		}
	}

	// 4) Accept.
	m.F = ftrial
	copy(m.X, s.xtrial)

	return core.Success
}
