// Package gencan: truncated-Newton line search with extrapolation and
// interpolation.
package gencan

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// tnls line-searches the reduced-space direction d produced by the
// inner conjugate gradient solver, starting from α = min(1, amax)
// where amax = tnlsAmax is the largest feasible step.
//
// Decision at the first trial x⁺ = x + α·d:
//
//   - amax > 1 (the unit step is interior): accept when both the
//     Armijo condition and the directional-derivative condition
//     ⟨∇f(x⁺),d⟩ ≥ Beta·⟨∇f(x),d⟩ hold; extrapolate when only Armijo
//     holds (the slope is still steep); otherwise interpolate.
//   - amax ≤ 1 (the unit step leaves the box): extrapolate on plain
//     decrease, interpolate otherwise.
//
// Everything runs in the reduced space: x, the gradient and the
// bounds arrive shrunk, and all evaluations go through the
// reduced-space evaluators.
//
// Returns Success (point committed, gradient refreshed) or FLSearch
// (interpolation collapsed; the outer iteration falls back to a
// spectral step).
func (s *Method) tnls(m *core.Minimizer) core.Status {
	p := s.params
	nind := s.nind

	g := m.Gradient[:nind]
	d := s.d[:nind]

	// Directional derivative at the current point.
	gtd := floats.Dot(g, d)

	// First trial.
	alpha := math.Min(1.0, s.tnlsAmax)

	floats.AddScaledTo(s.xtrial[:nind], m.X[:nind], alpha, d)
	fplus := core.ReducedF(m, nind, s.ind, s.xtrial, m.X)

	if s.tnlsAmax > 1.0 {
		// x + d is interior.
		if fplus <= m.F+p.Gamma*alpha*gtd {
			// Armijo holds; check the slope at the trial point.
			core.ReducedG(m, nind, s.ind, s.xtrial, m.X, m.Gradient)

			gptd := floats.Dot(g, d)
			if gptd >= p.Beta*gtd {
				// The unit Newton step is acceptable as is.
				m.F = fplus
				copy(m.X[:nind], s.xtrial[:nind])

				return core.Success
			}

			return s.tnlsExtrapolation(m, alpha, fplus)
		}

		return s.tnlsInterpolation(m, alpha, fplus, gtd)
	}

	// x + d leaves the box.
	if fplus < m.F {
		return s.tnlsExtrapolation(m, alpha, fplus)
	}

	return s.tnlsInterpolation(m, alpha, fplus, gtd)
}

// tnlsExtrapolation pushes the step beyond alpha while the objective
// keeps decreasing: the next trial is amax when it lies inside
// (α, NExt·α), NExt·α otherwise, projected onto the box once past
// amax. It stops on the first non-decrease, when two successive
// projected trials become indistinguishable, or after MaxExtrap
// trials; the surviving point is committed and the gradient
// re-evaluated there.
func (s *Method) tnlsExtrapolation(m *core.Minimizer, alpha, fplus float64) core.Status {
	p := s.params
	nind := s.nind

	d := s.d[:nind]
	xplus := s.xtrial[:nind]
	xtemp := s.tnlsXtemp[:nind]

	for extrap := 1; ; extrap++ {
		// Budget exhausted: keep the best point found so far.
		if extrap > p.MaxExtrap {
			m.F = fplus
			copy(m.X[:nind], xplus)
			core.ReducedG(m, nind, s.ind, m.X, m.X, m.Gradient)

			return core.Success
		}

		// Next step: jump exactly to the feasibility limit when it is
		// within one growth factor, otherwise grow by NExt.
		var atemp float64
		if alpha < s.tnlsAmax && s.tnlsAmax < p.NExt*alpha {
			atemp = s.tnlsAmax
		} else {
			atemp = p.NExt * alpha
		}

		// Trial xtemp = x + atemp·d, projected once infeasible.
		floats.AddScaledTo(xtemp, m.X[:nind], atemp, d)
		if atemp > s.tnlsAmax {
			core.MaxOfMin(xtemp, s.l[:nind], s.tnlsXtemp[:nind], s.u[:nind])
		}

		// Once past the feasibility limit the projection can pin the
		// trial to the previous one; stop when they are numerically
		// the same point.
		if alpha > s.tnlsAmax {
			same := true
			for i := 0; i < nind && same; i++ {
				if math.Abs(xtemp[i]-xplus[i]) >
					math.Max(p.EpsRel*math.Abs(xplus[i]), p.EpsAbs) {
					same = false
				}
			}
			if same {
				m.F = fplus
				copy(m.X[:nind], xplus)
				core.ReducedG(m, nind, s.ind, m.X, m.X, m.Gradient)

				return core.Success
			}
		}

		ftemp := core.ReducedF(m, nind, s.ind, s.tnlsXtemp, m.X)

		if ftemp < fplus {
			// Still descending: adopt the trial and keep going.
			alpha = atemp
			fplus = ftemp
			copy(xplus, xtemp)

			continue
		}

		// The last trial did not improve: finish with the previous
		// point.
		m.F = fplus
		copy(m.X[:nind], xplus)
		core.ReducedG(m, nind, s.ind, m.X, m.X, m.Gradient)

		return core.Success
	}
}

// tnlsInterpolation backtracks with the safeguarded quadratic model
// until the Armijo condition holds, dividing by NInt whenever the
// model minimizer leaves [Sigma1, Sigma2·α]. After MinInterp
// reductions with indistinguishable iterates it reports FLSearch so
// the outer iteration can fall back to a spectral step.
func (s *Method) tnlsInterpolation(m *core.Minimizer, alpha, fplus, gtd float64) core.Status {
	p := s.params
	nind := s.nind

	d := s.d[:nind]
	xplus := s.xtrial[:nind]

	for interp := 1; ; interp++ {
		// Armijo acceptance of the current trial.
		if fplus <= m.F+p.Gamma*alpha*gtd {
			m.F = fplus
			copy(m.X[:nind], xplus)
			core.ReducedG(m, nind, s.ind, m.X, m.X, m.Gradient)

			return core.Success
		}

		// New safeguarded step.
		if alpha < p.Sigma1 {
			alpha /= p.NInt
		} else {
			atemp := -gtd * alpha * alpha / (2 * (fplus - m.F - alpha*gtd))
			if atemp < p.Sigma1 || atemp > p.Sigma2*alpha {
				alpha /= p.NInt
			} else {
				alpha = atemp
			}
		}

		// New trial x⁺ = x + α·d.
		floats.AddScaledTo(xplus, m.X[:nind], alpha, d)
		fplus = core.ReducedF(m, nind, s.ind, s.xtrial, m.X)

		// Step collapsed: report failure so the caller can discard
		// the truncated-Newton direction.
		if interp > p.MinInterp &&
			areClose(nind, alpha, d, m.X[:nind], p.EpsRel, p.EpsAbs) {
			return core.FLSearch
		}
	}
}
