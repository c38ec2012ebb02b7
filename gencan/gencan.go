// Package gencan: strategy surface and iteration preparation.
package gencan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/boxmin/core"
)

// Method is the GENCAN strategy. Obtain one from New for each
// minimizer; a Method owns its scratch and must not be shared.
type Method struct {
	n      int
	params Params

	// bounds; Shrink/Expand permute them alongside x and ∇f during a
	// truncated-Newton iteration and restore them before it returns
	l, u []float64

	// numerical boundary thresholds derived from the bounds
	nearL, nearU []float64

	// active face: ind[:nind] lists the free coordinates
	nind int
	ind  []int

	// iterate norms
	xeucn, xsupn float64

	// previous point / gradient, then their differences; d is the
	// current search direction
	s, y, d []float64

	// constants of the face test and the optimality predicate
	ometa2   float64 // (1 − Eta)²
	epsgpen2 float64 // EpsGPEn²

	// spectral steplength and step statistics
	lambda, sts, sty, sinf float64

	// projected-gradient statistics of the current iterate
	gpeucn2, gpsupn, gieucn2 float64

	// affine CG-tolerance schedule and its first-iteration baselines
	acgeps, bcgeps    float64
	gpsupn0, gpeucn20 float64

	// trial points of the line searches
	xtrial, tnlsXtemp []float64

	// truncated-Newton maximum feasible step
	tnlsAmax float64

	// conjugate gradient scratch and trust radius
	cgW, cgR, cgD, cgSprev []float64
	cgDelta                float64
}

// New returns a fresh GENCAN strategy.
func New() *Method { return &Method{} }

var _ core.Strategy = (*Method)(nil)

// Name returns "gencan".
func (s *Method) Name() string { return "gencan" }

// DefaultParams returns the package defaults as a core.Params.
func (s *Method) DefaultParams() core.Params { return DefaultParams() }

// Init allocates the dimension-dependent scratch.
func (s *Method) Init(n int) error {
	s.n = n
	s.ind = make([]int, n)
	s.l = make([]float64, n)
	s.u = make([]float64, n)
	s.s = make([]float64, n)
	s.y = make([]float64, n)
	s.d = make([]float64, n)
	s.nearL = make([]float64, n)
	s.nearU = make([]float64, n)
	s.xtrial = make([]float64, n)
	s.tnlsXtemp = make([]float64, n)
	s.cgW = make([]float64, n)
	s.cgR = make([]float64, n)
	s.cgD = make([]float64, n)
	s.cgSprev = make([]float64, n)

	return nil
}

// SetParams validates p and stores a copy; the previous block stays
// in effect on failure.
func (s *Method) SetParams(_ *core.Minimizer, p core.Params) error {
	pp, ok := p.(Params)
	if !ok {
		return fmt.Errorf("%w: want gencan.Params, got %T", core.ErrInvalidParams, p)
	}
	if err := pp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidParams, err)
	}
	s.params = pp

	return nil
}

// Params returns a copy of the block in use.
func (s *Method) Params() core.Params { return s.params }

// Set copies the bounds and prepares the first iteration.
func (s *Method) Set(m *core.Minimizer) core.Status {
	copy(s.l, m.Lower())
	copy(s.u, m.Upper())

	return s.prepare(m)
}

// Restart re-arms the method at the current iterate.
func (s *Method) Restart(m *core.Minimizer) core.Status {
	return s.prepare(m)
}

// IsOptimal reports Success when gpeucn² ≤ EpsGPEn², gpsupn ≤ EpsGPSn
// or f ≤ Fmin.
func (s *Method) IsOptimal(m *core.Minimizer) core.Status {
	if s.gpeucn2 <= s.epsgpen2 || s.gpsupn <= s.params.EpsGPSn || m.F <= s.params.Fmin {
		return core.Success
	}

	return core.Continue
}

// prepare defines the state variables needed to start iterating:
// feasibility, first evaluation, numerical boundary thresholds,
// projected-gradient statistics, the CG tolerance schedule, the
// spectral steplength and the trust radius.
func (s *Method) prepare(m *core.Minimizer) core.Status {
	p := s.params

	// 1) Impose feasibility and measure the iterate.
	core.MaxOfMin(m.X, s.l, s.u, m.X)
	s.xeucn = floats.Norm(m.X, 2)
	s.xsupn = floats.Norm(m.X, math.Inf(1))

	// 2) First objective and gradient evaluation.
	m.F = m.EvalFDF(m.X, m.Gradient)

	// 3) Numerical boundary thresholds.
	for i := 0; i < s.n; i++ {
		s.nearL[i] = s.l[i] + math.Max(p.EpsRel*math.Abs(s.l[i]), p.EpsAbs)
		s.nearU[i] = s.u[i] - math.Max(p.EpsRel*math.Abs(s.u[i]), p.EpsAbs)
	}

	// 4) Constants of the face test and optimality predicate.
	s.ometa2 = (1.0 - p.Eta) * (1.0 - p.Eta)
	s.epsgpen2 = p.EpsGPEn * p.EpsGPEn

	// 5) Projected-gradient statistics and the active face.
	s.projectedGradient(m.X, m.Gradient)

	// Baselines for the cg_maxit interpolation.
	s.gpsupn0 = s.gpsupn
	s.gpeucn20 = s.gpeucn2

	// A vanishing projected gradient means the starting point is
	// stationary: skip the schedule (its logarithms are undefined at
	// zero) and report optimality on the next IsOptimal call.
	if s.gpeucn2 == 0.0 {
		s.acgeps = 0
		s.bcgeps = 0
		s.lambda = 1.0
		s.initDelta()
		m.Size = s.gpsupn

		return core.Success
	}

	// 6) Affine relation, in log₁₀ space, taking the CG relative
	// tolerance from CGEpsI at the initial projected-gradient norm
	// down to CGEpsF at the target norm.
	if p.CGScre == 1 {
		s.acgeps = 2 * (math.Log10(p.CGEpsF/p.CGEpsI) /
			math.Log10(p.CGGPNF*p.CGGPNF/s.gpeucn2))
		s.bcgeps = 2*math.Log10(p.CGEpsI) - s.acgeps*math.Log10(s.gpeucn2)
	} else {
		s.acgeps = math.Log10(p.CGEpsF/p.CGEpsI) / math.Log10(p.CGGPNF/s.gpsupn)
		s.bcgeps = math.Log10(p.CGEpsI) - s.acgeps*math.Log10(s.gpsupn)
	}

	// 7) Initial spectral steplength.
	s.lambda = math.Max(1.0, s.xeucn) / math.Sqrt(s.gpeucn2)

	// 8) Initial trust-region radius.
	s.initDelta()

	m.Size = s.gpsupn

	return core.Success
}

// initDelta sets the starting trust radius from UDelta0, or from the
// iterate norm matching the trust-region type when UDelta0 < 0.
func (s *Method) initDelta() {
	p := s.params
	if p.UDelta0 < 0.0 {
		var aux float64
		if p.TrType == TrustLInf {
			aux = 0.1 * math.Max(1.0, s.xsupn)
		} else {
			aux = 0.1 * math.Max(1.0, s.xeucn)
		}
		s.cgDelta = math.Max(p.Delmin, aux)

		return
	}
	s.cgDelta = math.Max(p.Delmin, p.UDelta0)
}
