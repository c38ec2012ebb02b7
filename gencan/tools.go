// Package gencan: projected-gradient statistics and closeness test.
package gencan

import "math"

// projectedGradient scans the continuous projected gradient
// gp[i] = clamp(x[i]−g[i], l[i], u[i]) − x[i] in one pass, recording
//
//	gpsupn  — ‖gp‖∞
//	gpeucn2 — ‖gp‖₂²
//	gieucn2 — Σ gp[i]² over strictly interior coordinates
//	ind     — the strictly interior (free) coordinates, nind of them
//
// The face test and the optimality predicate both read these.
func (s *Method) projectedGradient(x, g []float64) {
	nind := 0
	gpsupn := 0.0
	gpeucn2 := 0.0
	gieucn2 := 0.0

	for i := 0; i < s.n; i++ {
		gpi := math.Min(s.u[i], math.Max(s.l[i], x[i]-g[i])) - x[i]
		gpi2 := gpi * gpi

		gpsupn = math.Max(gpsupn, math.Abs(gpi))
		gpeucn2 += gpi2

		if x[i] > s.l[i] && x[i] < s.u[i] {
			gieucn2 += gpi2
			s.ind[nind] = i
			nind++
		}
	}

	s.nind = nind
	s.gpsupn = gpsupn
	s.gpeucn2 = gpeucn2
	s.gieucn2 = gieucn2
}

// areClose reports whether the step alpha·d is coordinate-wise
// indistinguishable from x within the (EpsRel·|x[i]|, EpsAbs)
// thresholds — the shared "iterates too close" test of the inner
// solvers.
func areClose(nn int, alpha float64, d, x []float64, epsrel, epsabs float64) bool {
	for i := 0; i < nn; i++ {
		if math.Abs(alpha*d[i]) > math.Max(epsrel*math.Abs(x[i]), epsabs) {
			return false
		}
	}

	return true
}
