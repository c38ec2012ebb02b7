// Package gencan defines the parameter block, its validation and the
// sentinel errors of the GENCAN method.
package gencan

import "errors"

// Sentinel errors returned by Params.Validate.
var (
	// ErrBadTolerance groups every negative-tolerance rejection
	// (EpsGPEn, EpsGPSn, CGGPNF, CGEpsI, CGEpsF, CGEpsNQMP, EpsRel,
	// EpsAbs, InfRel, InfAbs).
	ErrBadTolerance = errors.New("gencan: tolerances must be non-negative")

	// ErrBadEta indicates a face-test constant outside (0, 1).
	ErrBadEta = errors.New("gencan: Eta must lie in (0, 1)")

	// ErrBadTheta indicates an angle-condition constant outside (0, 1).
	ErrBadTheta = errors.New("gencan: Theta must lie in (0, 1)")

	// ErrBadGamma indicates an Armijo constant outside (0, 0.5).
	ErrBadGamma = errors.New("gencan: Gamma must lie in (0, 0.5)")

	// ErrBadBeta indicates a directional-derivative constant outside
	// (0, 1).
	ErrBadBeta = errors.New("gencan: Beta must lie in (0, 1)")

	// ErrBadSigma indicates a broken safeguard ordering; the
	// interpolation safeguards require 0 < Sigma1 < Sigma2 < 1.
	ErrBadSigma = errors.New("gencan: need 0 < Sigma1 < Sigma2 < 1")

	// ErrBadStepFactor indicates NInt ≤ 1 or NExt ≤ 1.
	ErrBadStepFactor = errors.New("gencan: NInt and NExt must exceed 1")

	// ErrBadInterpCount indicates MinInterp < 1 or CGMaxItNQMP < 1.
	ErrBadInterpCount = errors.New("gencan: iteration counts must be at least 1")

	// ErrBadSpectralClamp indicates an empty spectral clamp interval
	// or a non-positive Lspgmi.
	ErrBadSpectralClamp = errors.New("gencan: need 0 < Lspgmi <= Lspgma")

	// ErrBadDelmin indicates a non-positive minimum trust radius.
	ErrBadDelmin = errors.New("gencan: Delmin must be positive")

	// ErrBadTrustType indicates a trust-region norm outside {TrustL2,
	// TrustLInf}.
	ErrBadTrustType = errors.New("gencan: TrType must be TrustL2 or TrustLInf")
)

// TrustRegion selects the norm of the inner trust region.
type TrustRegion int

const (
	// TrustL2 bounds the inner step by ‖s‖₂ ≤ Δ.
	TrustL2 TrustRegion = iota

	// TrustLInf bounds the inner step by ‖s‖∞ ≤ Δ.
	TrustLInf
)

// Params configures the GENCAN method.
//
// Outer iteration:
//
//	EpsGPEn — tolerance on ‖gp‖₂ (squared in the predicate)
//	EpsGPSn — tolerance on ‖gp‖∞
//	Fmin    — objective cut-off
//	Eta     — face test: a face is kept while gieucn² > (1−Eta)²·gpeucn²
//	Lspgmi  — lower clamp of the spectral steplength
//	Lspgma  — upper clamp of the spectral steplength
//
// Trust region and inner conjugate gradient:
//
//	UDelta0     — initial trust radius; negative means automatic
//	TrType      — trust-region norm (TrustL2 or TrustLInf)
//	Delmin      — minimum trust radius
//	UCGMaxItA   — cg_maxit = UCGMaxItA·nind + UCGMaxItB when both
//	UCGMaxItB     are non-negative; either negative means automatic
//	CGScre      — 1 schedules the CG tolerance on ‖gp‖₂², anything
//	              else on ‖gp‖∞
//	CGGPNF      — target projected-gradient norm of the schedule
//	CGEpsI      — initial (loose) CG relative tolerance
//	CGEpsF      — final (tight) CG relative tolerance
//	CGEpsNQMP   — insufficient-progress fraction of the best model
//	              decrease
//	CGMaxItNQMP — consecutive low-progress iterations tolerated
//	NearlyQ     — the objective is (nearly) quadratic: spend up to
//	              nind CG iterations and allow boundary jumps on
//	              negative curvature
//	Theta       — angle condition: require ⟨g,s⟩ ≤ −Theta·‖g‖·‖s‖
//
// Line searches:
//
//	Gamma     — Armijo constant
//	Beta      — directional-derivative acceptance constant
//	Sigma1    — lower safeguard of step interpolation
//	Sigma2    — upper safeguard of step interpolation
//	NInt      — backtracking reduction factor
//	NExt      — extrapolation growth factor
//	MinInterp — interpolations before the too-small-step test
//	MaxExtrap — extrapolation trials allowed
//
// Numerical guards:
//
//	EpsRel, EpsAbs — relative/absolute closeness thresholds
//	InfRel, InfAbs — relative/absolute stand-ins for infinity
type Params struct {
	EpsGPEn float64
	EpsGPSn float64
	Fmin    float64

	UDelta0   float64
	UCGMaxItA float64
	UCGMaxItB float64
	CGScre    int
	CGGPNF    float64
	CGEpsI    float64
	CGEpsF    float64

	CGEpsNQMP   float64
	CGMaxItNQMP int

	NearlyQ bool

	NInt      float64
	NExt      float64
	MinInterp int
	MaxExtrap int

	TrType TrustRegion
	Eta    float64
	Delmin float64

	Lspgmi float64
	Lspgma float64

	Theta  float64
	Gamma  float64
	Beta   float64
	Sigma1 float64
	Sigma2 float64

	EpsRel float64
	EpsAbs float64
	InfRel float64
	InfAbs float64
}

// DefaultParams returns the documented defaults:
//
//	EpsGPEn = EpsGPSn = 1e-5      Fmin = -1e99
//	UDelta0 = UCGMaxItA = UCGMaxItB = -1 (automatic)
//	CGScre = 1   CGGPNF = EpsGPEn   CGEpsI = 0.1   CGEpsF = 1e-5
//	CGEpsNQMP = 1e-4   CGMaxItNQMP = 5   NearlyQ = false
//	NInt = NExt = 2.0   MinInterp = 4   MaxExtrap = 100
//	TrType = TrustL2   Eta = 0.9   Delmin = 0.1
//	Lspgmi = 1e-10   Lspgma = 1e10
//	Theta = 1e-6   Gamma = 1e-4   Beta = 0.5   Sigma1 = 0.1   Sigma2 = 0.9
//	EpsRel = 1e-7   EpsAbs = 1e-10   InfRel = 1e20   InfAbs = 1e99
func DefaultParams() Params {
	return Params{
		EpsGPEn: 1.0e-05,
		EpsGPSn: 1.0e-05,
		Fmin:    -1.0e+99,

		UDelta0:   -1,
		UCGMaxItA: -1,
		UCGMaxItB: -1,
		CGScre:    1,
		CGGPNF:    1.0e-05,
		CGEpsI:    1.0e-1,
		CGEpsF:    1.0e-5,

		CGEpsNQMP:   1.0e-4,
		CGMaxItNQMP: 5,

		NearlyQ: false,

		NInt:      2.0,
		NExt:      2.0,
		MinInterp: 4,
		MaxExtrap: 100,

		TrType: TrustL2,
		Eta:    0.9,
		Delmin: 0.1,

		Lspgmi: 1.0e-10,
		Lspgma: 1.0e+10,

		Theta:  1.0e-06,
		Gamma:  1.0e-04,
		Beta:   0.5,
		Sigma1: 0.1,
		Sigma2: 0.9,

		EpsRel: 1.0e-07,
		EpsAbs: 1.0e-10,
		InfRel: 1.0e+20,
		InfAbs: 1.0e+99,
	}
}

// Validate reports whether the block is usable.
func (p Params) Validate() error {
	if p.EpsGPSn < 0 || p.EpsGPEn < 0 ||
		p.CGGPNF < 0 || p.CGEpsI < 0 || p.CGEpsF < 0 ||
		p.CGEpsNQMP < 0 ||
		p.EpsRel < 0 || p.EpsAbs < 0 ||
		p.InfRel < 0 || p.InfAbs < 0 {
		return ErrBadTolerance
	}
	if p.CGMaxItNQMP < 1 || p.MinInterp < 1 {
		return ErrBadInterpCount
	}
	if p.NInt <= 1 || p.NExt <= 1 {
		return ErrBadStepFactor
	}
	if p.TrType != TrustL2 && p.TrType != TrustLInf {
		return ErrBadTrustType
	}
	if p.Eta <= 0 || p.Eta >= 1 {
		return ErrBadEta
	}
	if p.Delmin <= 0 {
		return ErrBadDelmin
	}
	if p.Lspgmi <= 0 || p.Lspgma < p.Lspgmi {
		return ErrBadSpectralClamp
	}
	if p.Theta <= 0 || p.Theta >= 1 {
		return ErrBadTheta
	}
	if p.Gamma <= 0 || p.Gamma >= 0.5 {
		return ErrBadGamma
	}
	if p.Beta <= 0 || p.Beta >= 1 {
		return ErrBadBeta
	}
	if p.Sigma1 <= 0 || p.Sigma2 <= p.Sigma1 || p.Sigma2 >= 1 {
		return ErrBadSigma
	}

	return nil
}
