// Package numdiff: central-difference gradient and Hessian-vector
// estimators.
package numdiff

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for estimator validation.
var (
	// ErrBadStep indicates a non-positive differencing step.
	ErrBadStep = errors.New("numdiff: eps must be positive")

	// ErrBadLen indicates mismatched vector lengths.
	ErrBadLen = errors.New("numdiff: vector length mismatch")
)

// Gradient estimates ∇f(x) by central differences with step eps,
// writing the result into grad. x is perturbed in place and restored
// before returning; f is called 2·len(x) times.
func Gradient(f func([]float64) float64, x, grad []float64, eps float64) error {
	if eps <= 0 {
		return ErrBadStep
	}
	if len(grad) != len(x) {
		return ErrBadLen
	}

	for i := range x {
		xi := x[i]

		x[i] = xi + eps
		dfi := f(x)

		x[i] = xi - eps
		dfi -= f(x)

		grad[i] = dfi / (2 * eps)
		x[i] = xi
	}

	return nil
}

// HvAccel is reusable scratch for Hv: two gradient-sized slices that
// would otherwise be allocated on every call.
type HvAccel struct {
	gradf1 []float64
	gradf2 []float64
}

// NewHvAccel returns scratch for dimension-n Hessian-vector products.
func NewHvAccel(n int) *HvAccel {
	return &HvAccel{
		gradf1: make([]float64, n),
		gradf2: make([]float64, n),
	}
}

// Hv estimates the Hessian-vector product H(x)·v by central
// differences of the gradient callback df, writing the result into
// hv. Each coordinate of the estimate is the directional difference
// (∇f(x+eps·eᵢ) − ∇f(x−eps·eᵢ))·v / (2·eps); df runs 2·len(x) times.
//
// accel may be nil, in which case transient scratch is allocated. x
// is perturbed in place and restored before returning.
func Hv(accel *HvAccel, df func(x, grad []float64), x, v, hv []float64, eps float64) error {
	if eps <= 0 {
		return ErrBadStep
	}
	if len(v) != len(x) || len(hv) != len(x) {
		return ErrBadLen
	}

	var gradf1, gradf2 []float64
	if accel == nil {
		gradf1 = make([]float64, len(x))
		gradf2 = make([]float64, len(x))
	} else {
		if len(accel.gradf1) != len(x) {
			return ErrBadLen
		}
		gradf1 = accel.gradf1
		gradf2 = accel.gradf2
	}

	for i := range x {
		xi := x[i]

		x[i] = xi + eps
		df(x, gradf1)

		x[i] = xi - eps
		df(x, gradf2)

		x[i] = xi

		floats.Sub(gradf1, gradf2)
		hv[i] = floats.Dot(gradf1, v) / (2 * eps)
	}

	return nil
}
