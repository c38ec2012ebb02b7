// Package gencan: the inner conjugate gradient solver.
package gencan

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// cgFlag reports how the inner solver stopped. Everything except
// cgNoDescent still hands a usable direction to the line search.
type cgFlag int

const (
	// cgConverged: residual reduced below the scheduled tolerance.
	cgConverged cgFlag = iota

	// cgTrustRegion: step reached the trust-region boundary.
	cgTrustRegion

	// cgBoxBoundary: step reached the boundary of the box.
	cgBoxBoundary

	// cgAngle: the angle condition ⟨g,s⟩ ≤ −Theta·‖g‖·‖s‖ failed; the
	// previous step was restored.
	cgAngle

	// cgCloseIterate: two consecutive inner iterates were
	// indistinguishable.
	cgCloseIterate

	// cgInsufficientProgress: the quadratic model stalled for
	// CGMaxItNQMP consecutive iterations.
	cgInsufficientProgress

	// cgMaxIter: the iteration budget ran out.
	cgMaxIter

	// cgNoDescent: negative curvature with no boundary point that
	// improves the model — no descent direction exists from here.
	cgNoDescent
)

// cgMaxIterations returns the iteration budget. Explicit user
// coefficients win; a nearly quadratic objective gets the exact-CG
// budget nind; otherwise the budget interpolates between
// max(1, min(nind, 10·log₁₀ nind)) far from optimality and nind close
// to it, driven by how much of the projected-gradient reduction has
// been achieved.
func (s *Method) cgMaxIterations() int {
	p := s.params
	nind := s.nind

	if p.UCGMaxItA >= 0 && p.UCGMaxItB >= 0 {
		return int(math.Max(1, p.UCGMaxItA*float64(nind)+p.UCGMaxItB))
	}

	if p.NearlyQ {
		return nind
	}

	var kappa float64
	if p.CGScre == 1 {
		kappa = math.Log10(s.gpeucn2/s.gpeucn20) / math.Log10(s.epsgpen2/s.gpeucn20)
	} else {
		kappa = math.Log10(s.gpsupn/s.gpsupn0) / math.Log10(p.EpsGPSn/s.gpsupn0)
	}
	kappa = math.Max(0, math.Min(1, kappa))

	aux := math.Min(float64(nind), 10*math.Log10(float64(nind)))

	return int((1-kappa)*math.Max(1, aux) + kappa*float64(nind))
}

// cgTolerance returns the scheduled relative tolerance, clamped into
// [CGEpsF, CGEpsI].
func (s *Method) cgTolerance() float64 {
	p := s.params

	var eps float64
	if p.CGScre == 1 {
		eps = math.Sqrt(math.Pow(10, s.acgeps*math.Log10(s.gpeucn2)+s.bcgeps))
	} else {
		eps = math.Pow(10, s.acgeps*math.Log10(s.gpsupn)+s.bcgeps)
	}

	return math.Max(p.CGEpsF, math.Min(p.CGEpsI, eps))
}

// solveQuadratic finds the two real roots of a·t² + b·t + c = 0 for
// a > 0 and c ≤ 0 (the trust-region equation always has this shape:
// the current step is strictly inside the region), returning them as
// (negative root, positive root) with the numerically stable split.
func solveQuadratic(a, b, c float64) (neg, pos float64) {
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))

	var r1, r2 float64
	if q != 0 {
		r1 = q / a
		r2 = c / q
	} else {
		// b = 0 and c = 0: the step is on the boundary already.
		r1 = 0
		r2 = 0
	}
	if r1 < r2 {
		return r1, r2
	}

	return r2, r1
}

// cg approximately minimizes the quadratic model
// q(s) = ½·sᵀHs + gᵀs over the reduced space of dimension nind,
// subject to the trust region ‖s‖ ≤ cgDelta (ℓ₂ or ℓ∞ by TrType) and
// the shifted box L−x ≤ s ≤ U−x. H acts only through the user's
// Hessian-vector callback. The direction is left in s.d.
func (s *Method) cg(m *core.Minimizer) cgFlag {
	p := s.params
	nind := s.nind

	x := m.X[:nind]
	g := m.Gradient[:nind]
	l := s.l[:nind]
	u := s.u[:nind]
	w := s.cgW[:nind]
	r := s.cgR[:nind]
	d := s.cgD[:nind]
	sprev := s.cgSprev[:nind]

	// The direction under construction, named s in the model above.
	sv := s.d[:nind]

	cgMaxit := s.cgMaxIterations()
	cgEps := s.cgTolerance()
	cgEps2 := cgEps * cgEps

	gnorm2 := floats.Dot(g, g)

	// Start from s = 0: residual r = Hs + g = g, model value q = 0.
	core.SetZero(sv)
	copy(r, g)

	q := 0.0
	snorm2 := 0.0
	rnorm2 := gnorm2

	var (
		qprev, qamax, qamaxn   float64
		dnorm2, dtr, dtw, dts  float64
		snorm2prev, rnorm2prev float64
		amax, amax1, amax1n    float64
		amax2, amax2n, amaxn   float64
		alpha, bestprog        float64
		iter, itnqmp           int
	)

	// Repeat while ‖r‖₂ = ‖Hs + g‖₂ > eps·‖g‖₂.
	for rnorm2 > cgEps2*gnorm2 {
		if iter > cgMaxit {
			return cgMaxIter
		}

		// 1) Direction: steepest descent first, then the conjugate
		// update d = −r + β·d with dnorm² and ⟨d,r⟩ maintained
		// incrementally from the previous iteration.
		if iter == 0 {
			copy(d, r)
			floats.Scale(-1.0, d)

			dnorm2 = rnorm2
			dtr = -rnorm2
		} else {
			beta := rnorm2 / rnorm2prev

			floats.Scale(beta, d)
			floats.AddScaled(d, -1.0, r)

			aux := dtr + alpha*dtw
			dnorm2 = rnorm2 + beta*(beta*dnorm2-2.0*aux)
			dtr = -rnorm2 + beta*aux
		}

		// Rounding can make d an ascent direction of the model
		// (⟨∇q(s),d⟩ = ⟨r,d⟩ > 0); flip it.
		if dtr > 0.0 {
			floats.Scale(-1.0, d)
			dtr = -dtr
		}

		// 2) Curvature along d.
		core.ReducedHv(m, nind, s.ind, m.X, m.X, s.cgD, s.cgW)
		dtw = floats.Dot(d, w)

		// 3) Maximum steps. amax1 > 0 ≥ amax1n bound the step at the
		// trust-region boundary, amax2/amax2n at the box.
		dts = floats.Dot(d, sv)

		if p.TrType == TrustL2 {
			amax1n, amax1 = solveQuadratic(dnorm2, 2*dts, snorm2-s.cgDelta*s.cgDelta)
		} else {
			amax1 = p.InfAbs
			amax1n = -p.InfAbs
			for i := 0; i < nind; i++ {
				if d[i] > 0.0 {
					amax1 = math.Min(amax1, (s.cgDelta-sv[i])/d[i])
					amax1n = math.Max(amax1n, (-s.cgDelta-sv[i])/d[i])
				} else if d[i] < 0.0 {
					amax1 = math.Min(amax1, (-s.cgDelta-sv[i])/d[i])
					amax1n = math.Max(amax1n, (s.cgDelta-sv[i])/d[i])
				}
			}
		}

		amax2 = p.InfAbs
		amax2n = -p.InfAbs
		for i := 0; i < nind; i++ {
			if d[i] > 0.0 {
				amax2 = math.Min(amax2, (u[i]-x[i]-sv[i])/d[i])
				amax2n = math.Max(amax2n, (l[i]-x[i]-sv[i])/d[i])
			} else if d[i] < 0.0 {
				amax2 = math.Min(amax2, (l[i]-x[i]-sv[i])/d[i])
				amax2n = math.Max(amax2n, (u[i]-x[i]-sv[i])/d[i])
			}
		}

		amax = math.Min(amax1, amax2)
		amaxn = math.Max(amax1n, amax2n)

		// 4) Step along d and new model value.
		qprev = q

		if dtw > 0.0 {
			// Positive curvature: plain CG step, clipped at amax.
			alpha = math.Min(amax, rnorm2/dtw)
			q += alpha * (alpha*dtw/2 + dtr)
		} else {
			qamax = q + amax*(amax*dtw/2+dtr)

			switch {
			case iter == 0:
				// First iteration: maximum step straight down −g.
				alpha = amax
				q = qamax
			case p.NearlyQ:
				// Nearly quadratic objectives may profit from jumping
				// to whichever boundary point improves the model.
				qamaxn = q + amaxn*(amaxn*dtw/2+dtr)
				if qamax >= q && qamaxn >= q {
					return cgNoDescent
				}
				if qamax < qamaxn {
					alpha = amax
					q = qamax
				} else {
					alpha = amaxn
					q = qamaxn
				}
			default:
				return cgNoDescent
			}
		}

		// 5) Update s, ‖s‖², the residual r = Hs + g and ‖r‖².
		copy(sprev, sv)
		floats.AddScaled(sv, alpha, d)

		snorm2prev = snorm2
		snorm2 += alpha * (alpha*dnorm2 + 2.0*dts)

		rnorm2prev = rnorm2
		floats.AddScaled(r, alpha, w)
		rnorm2 = floats.Dot(r, r)

		iter++

		// 6) Stopping tests, in order.

		// 6a) Angle condition: s must stay a firm descent direction
		// of f. On failure rewind to the previous step and stop.
		gts := floats.Dot(g, sv)
		if gts > 0.0 || gts*gts < p.Theta*p.Theta*gnorm2*snorm2 {
			copy(sv, sprev)
			snorm2 = snorm2prev
			q = qprev

			return cgAngle
		}

		// 6b/6c) Trust-region boundary.
		if math.Abs(alpha-amax1) < p.EpsAbs || math.Abs(alpha-amax1n) < p.EpsAbs {
			return cgTrustRegion
		}

		// 6d) Box boundary.
		if math.Abs(alpha-amax2) < p.EpsAbs || math.Abs(alpha-amax2n) < p.EpsAbs {
			return cgBoxBoundary
		}

		// 6e) Consecutive inner iterates too close.
		if areClose(nind, alpha, d, sv, p.EpsRel, p.EpsAbs) {
			return cgCloseIterate
		}

		// 6f) Insufficient progress of the quadratic model against the
		// best decrease seen so far.
		currprog := qprev - q
		bestprog = math.Max(currprog, bestprog)
		if currprog < p.CGEpsNQMP*bestprog {
			itnqmp++
			if itnqmp >= p.CGMaxItNQMP {
				return cgInsufficientProgress
			}
		} else {
			itnqmp = 0
		}
	}

	return cgConverged
}
