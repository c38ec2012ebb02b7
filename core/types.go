// Package core: objective/bounds handles, the status taxonomy and the
// sentinel errors shared by every boxmin solver.
package core

import "errors"

// Sentinel errors returned by the minimizer framework.
var (
	// ErrBadDimension indicates a non-positive problem dimension.
	ErrBadDimension = errors.New("core: dimension must be positive")

	// ErrBadLen indicates that an objective, bounds vector or starting
	// point does not match the minimizer dimension.
	ErrBadLen = errors.New("core: length not compatible with minimizer")

	// ErrNilCallback indicates that a required objective callback
	// (F or Df) was not supplied.
	ErrNilCallback = errors.New("core: objective callback is nil")

	// ErrInvalidParams indicates that a parameter block failed its
	// strategy validation or has the wrong concrete type.
	ErrInvalidParams = errors.New("core: invalid parameters")

	// ErrInfeasibleBounds indicates Lower[i] > Upper[i] for some i.
	ErrInfeasibleBounds = errors.New("core: lower bound exceeds upper bound")

	// ErrNotSet indicates an operation that requires a configured
	// minimizer (Restart before Set, for example).
	ErrNotSet = errors.New("core: minimizer is not set")
)

// Status is the stable integer status code shared by all solvers.
//
// The numeric values mirror a common numerical error enumeration so
// that codes written to logs or wire formats stay comparable across
// releases; they must never be renumbered.
type Status int

const (
	// Success reports a completed operation or a satisfied optimality
	// condition.
	Success Status = 0

	// Failure is a generic unspecific failure.
	Failure Status = -1

	// Continue reports that the iteration has not converged yet. It is
	// the only non-terminal status returned by IsOptimal.
	Continue Status = -2

	// EDom is an input domain error.
	EDom Status = 1

	// ERange is an output range error.
	ERange Status = 2

	// EInval is an invalid argument supplied by the user.
	EInval Status = 4

	// ENoMem reports an allocation failure.
	ENoMem Status = 8

	// EZeroDiv reports an attempted division by zero.
	EZeroDiv Status = 12

	// EBadLen reports non-conformant vector lengths.
	EBadLen Status = 19

	// UnboundedF reports that the objective dropped below the
	// user-supplied cut-off Fmin during a line search. It is treated
	// as successful, user-requested termination.
	UnboundedF Status = 1101

	// Infeasible reports an infeasible point.
	Infeasible Status = 1102

	// FInnerIt reports that the inner solver spent too many
	// iterations. Informational: the outer iteration still produced a
	// point and Iterate may be called again.
	FInnerIt Status = 1103

	// FLSearch reports a failed line search.
	FLSearch Status = 1104

	// FDDir reports that the inner solver was unable to produce a
	// descent direction. Terminal: the outer loop must stop.
	FDDir Status = 1105
)

// String returns a short human-readable name for the status code.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Continue:
		return "continue"
	case EDom:
		return "input domain error"
	case ERange:
		return "output range error"
	case EInval:
		return "invalid argument"
	case ENoMem:
		return "out of memory"
	case EZeroDiv:
		return "division by zero"
	case EBadLen:
		return "bad vector length"
	case UnboundedF:
		return "objective below fmin"
	case Infeasible:
		return "infeasible point"
	case FInnerIt:
		return "too many inner iterations"
	case FLSearch:
		return "line search failed"
	case FDDir:
		return "no descent direction"
	default:
		return "unknown status"
	}
}

// Objective bundles the problem dimension with the user callbacks.
//
// F and Df are mandatory. Fdf is optional: when nil, the framework
// synthesizes it from F and Df (one function plus one gradient
// evaluation, counted as such). Hv is required only by solvers that
// use Hessian-vector products (gencan); numdiff can supply a
// finite-difference fallback.
//
// Callbacks must be deterministic and must not retain the slices they
// receive: x, v and the output slices are owned by the minimizer and
// reused between calls.
type Objective struct {
	// N is the problem dimension.
	N int

	// F returns the objective value at x.
	F func(x []float64) float64

	// Df writes the gradient of the objective at x into grad.
	Df func(x, grad []float64)

	// Fdf writes the gradient into grad and returns the objective
	// value at x. Optional; see the type comment.
	Fdf func(x, grad []float64) float64

	// Hv writes the Hessian-vector product H(x)·v into hv. Optional;
	// see the type comment.
	Hv func(x, v, hv []float64)
}

// Bounds describes the feasible box L ≤ x ≤ U.
//
// Lower and Upper must both have length N and satisfy
// Lower[i] ≤ Upper[i] for every coordinate; Set rejects a length
// mismatch with ErrBadLen and an inverted coordinate with
// ErrInfeasibleBounds.
type Bounds struct {
	N            int
	Lower, Upper []float64
}

// UniformBounds builds the box [lo, hi]ⁿ. It is a convenience for the
// common case of one interval shared by every coordinate.
func UniformBounds(n int, lo, hi float64) Bounds {
	lower := make([]float64, n)
	upper := make([]float64, n)
	SetAll(lower, lo)
	SetAll(upper, hi)

	return Bounds{N: n, Lower: lower, Upper: upper}
}

// Params is the parameter block of a solver strategy. Each solver
// package exports its own concrete Params struct; blocks are plain
// values, copied into the minimizer on SetParams and copied out on
// Params.
type Params interface {
	// Validate reports whether the block is usable; a non-nil error
	// is returned wrapped in ErrInvalidParams and leaves the minimizer
	// untouched.
	Validate() error
}

// Strategy is the capability set implemented by each solver engine.
//
// A Strategy value owns its scratch state and must not be shared
// between minimizers; obtain a fresh one from the solver package's
// New constructor for every core.New call.
//
// The methods taking a *Minimizer are invoked by the framework only;
// they are exported so that solver engines can live in their own
// packages.
type Strategy interface {
	// Name identifies the method ("pgrad", "spg", "gencan").
	Name() string

	// DefaultParams returns the documented default parameter block.
	DefaultParams() Params

	// Init allocates all dimension-dependent scratch space.
	Init(n int) error

	// SetParams validates p and, on success, stores a copy. On failure
	// the previously stored block is left untouched.
	SetParams(m *Minimizer, p Params) error

	// Params returns a copy of the parameter block in use.
	Params() Params

	// Set initializes the method at the minimizer's current iterate.
	Set(m *Minimizer) Status

	// Restart re-arms the method at the current iterate.
	Restart(m *Minimizer) Status

	// Iterate advances the method by one outer iteration.
	Iterate(m *Minimizer) Status

	// IsOptimal reports Success when the method's optimality predicate
	// holds at the current iterate, Continue otherwise.
	IsOptimal(m *Minimizer) Status
}
