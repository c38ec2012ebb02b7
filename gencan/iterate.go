// Package gencan: the outer iteration — face routing, boundary snap,
// step statistics, spectral and trust-region updates.
package gencan

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// Iterate performs one outer iteration. Depending on the face test it
// either takes a full-space spectral line-search step or a
// truncated-Newton step on the closure of the current face (conjugate
// gradient direction + line search), then refreshes every statistic
// the next iteration and the optimality predicate need.
//
// Status: Success for a plain step; UnboundedF when a line search
// crossed Fmin (user cut-off, point committed); FInnerIt when the CG
// budget ran out (informational, point committed); FLSearch when the
// truncated-Newton line search failed and the spectral fallback
// failed too; FDDir when CG could not produce a descent direction
// (terminal, iterate unchanged).
func (s *Method) Iterate(m *core.Minimizer) core.Status {
	p := s.params

	// Saving previous values: s = x_k, y = ∇f(x_k) until the step is
	// taken, then both are rewritten as differences.
	copy(s.s, m.X)
	copy(s.y, m.Gradient)

	var lsflag core.Status
	innerOut := false

	if s.gieucn2 <= s.ometa2*s.gpeucn2 {
		// The free coordinates carry too little of the projected
		// gradient: the face is unlikely to survive. Full-space
		// spectral projected gradient step.
		lsflag = s.spgls(m)
		m.EvalDF(m.X, m.Gradient)
	} else {
		// The new iterate stays on the closure of the current face.
		core.Shrink(s.nind, s.ind, m.X)
		core.Shrink(s.nind, s.ind, m.Gradient)
		core.Shrink(s.nind, s.ind, s.l)
		core.Shrink(s.nind, s.ind, s.u)

		cgflag := s.cg(m)

		if cgflag == cgNoDescent {
			// Terminal: undo the permutation and surface FDDir with
			// the iterate untouched.
			core.Expand(s.nind, s.ind, m.X)
			core.Expand(s.nind, s.ind, m.Gradient)
			core.Expand(s.nind, s.ind, s.l)
			core.Expand(s.nind, s.ind, s.u)

			core.SetZero(s.s)
			core.SetZero(m.Dx)
			m.Size = s.gpsupn

			return core.FDDir
		}
		innerOut = cgflag == cgMaxIter

		// Maximum step for the truncated-Newton line search. When CG
		// stopped on the box boundary the full direction is exactly
		// feasible.
		if cgflag == cgBoxBoundary {
			s.tnlsAmax = 1.0
		} else {
			s.tnlsAmax = s.tnlsMaximumStep(m)
		}

		lsflag = s.tnls(m)

		core.Expand(s.nind, s.ind, m.X)
		core.Expand(s.nind, s.ind, m.Gradient)
		core.Expand(s.nind, s.ind, s.l)
		core.Expand(s.nind, s.ind, s.u)

		// A vanishing truncated-Newton step discards the iteration:
		// fall back to a full-space spectral step.
		if lsflag == core.FLSearch {
			lsflag = s.spgls(m)
			m.EvalDF(m.X, m.Gradient)
		}
	}

	// Snap coordinates that are numerically on a boundary exactly onto
	// it. The point may move slightly, but only across the near_l /
	// near_u thresholds, so f and ∇f are not re-evaluated.
	for i := 0; i < s.n; i++ {
		if m.X[i] <= s.nearL[i] {
			m.X[i] = s.l[i]
		} else if m.X[i] >= s.nearU[i] {
			m.X[i] = s.u[i]
		}
	}

	// Iterate norms.
	s.xsupn = floats.Norm(m.X, math.Inf(1))
	s.xeucn = floats.Norm(m.X, 2)

	// Until now s = x_k and y = ∇f(x_k); turn them into
	// s = x_{k+1} − x_k and y = ∇f(x_{k+1}) − ∇f(x_k).
	floats.Sub(s.s, m.X)
	floats.Scale(-1.0, s.s)
	floats.Sub(s.y, m.Gradient)
	floats.Scale(-1.0, s.y)

	s.sts = floats.Dot(s.s, s.s)
	s.sty = floats.Dot(s.s, s.y)
	s.sinf = floats.Norm(s.s, math.Inf(1))

	// Fresh projected-gradient statistics on the new iterate.
	s.projectedGradient(m.X, m.Gradient)

	// Spectral steplength and trust radius for the next iteration.
	s.spectralSteplength()
	if p.TrType == TrustLInf {
		s.cgDelta = math.Max(p.Delmin, 10*s.sinf)
	} else {
		s.cgDelta = math.Max(p.Delmin, 10*math.Sqrt(s.sts))
	}

	// Export the observables.
	m.Size = s.gpsupn
	copy(m.Dx, s.s)

	if innerOut && lsflag == core.Success {
		return core.FInnerIt
	}

	return lsflag
}

// tnlsMaximumStep returns the largest alpha with x + alpha·d inside
// the reduced box, scanning the free coordinates by the sign of d.
func (s *Method) tnlsMaximumStep(m *core.Minimizer) float64 {
	step := s.params.InfAbs
	for i := 0; i < s.nind; i++ {
		if s.d[i] > 0 {
			step = math.Min(step, (s.u[i]-m.X[i])/s.d[i])
		} else if s.d[i] < 0 {
			step = math.Min(step, (s.l[i]-m.X[i])/s.d[i])
		}
	}

	return step
}

// spectralSteplength refreshes the Barzilai–Borwein steplength. On
// non-positive curvature it falls back to max(1,‖x‖₂)/‖gp‖₂, kept
// unchanged when the projected gradient vanishes (the point is then
// optimal and the steplength is never used again).
func (s *Method) spectralSteplength() {
	p := s.params
	if s.sty <= 0.0 {
		if s.gpeucn2 > 0.0 {
			s.lambda = math.Max(1.0, s.xeucn) / math.Sqrt(s.gpeucn2)
		}

		return
	}
	s.lambda = math.Min(p.Lspgma, math.Max(p.Lspgmi, s.sts/s.sty))
}
