// Package core: dense vector kernels shared by the solver engines.
//
// The kernels here have semantics the engines depend on exactly:
// clamp composites for projection, a scale-and-sum-of-squares
// Euclidean distance that neither overflows nor underflows, and
// explicit-assignment fills. Plain dot products, axpy updates and
// norms are done with gonum/floats at the call sites instead.
package core

import "math"

// kernels panic on length mismatch: mixing vector lengths is a
// programmer error, never a data error.
const panicLenMismatch = "core: vector length mismatch"

// MaxOfMin computes dst[i] = max(b[i], min(c[i], d[i])).
// dst may alias any of the inputs.
func MaxOfMin(dst, b, c, d []float64) {
	if len(b) != len(dst) || len(c) != len(dst) || len(d) != len(dst) {
		panic(panicLenMismatch)
	}
	for i := range dst {
		dst[i] = math.Max(b[i], math.Min(c[i], d[i]))
	}
}

// MinOfMax computes dst[i] = min(b[i], max(c[i], d[i])).
// dst may alias any of the inputs.
func MinOfMax(dst, b, c, d []float64) {
	if len(b) != len(dst) || len(c) != len(dst) || len(d) != len(dst) {
		panic(panicLenMismatch)
	}
	for i := range dst {
		dst[i] = math.Min(b[i], math.Max(c[i], d[i]))
	}
}

// Proj projects x onto the box [lower, upper] in place:
// x[i] = max(lower[i], min(x[i], upper[i])).
//
// Proj is idempotent: projecting an already feasible point leaves it
// bit-for-bit unchanged.
func Proj(lower, upper, x []float64) {
	if len(lower) != len(x) || len(upper) != len(x) {
		panic(panicLenMismatch)
	}
	for i := range x {
		x[i] = math.Max(lower[i], math.Min(x[i], upper[i]))
	}
}

// Dist2 returns ‖x−y‖₂ using the scale-and-sum-of-squares method
// (Blue's algorithm) so that intermediate squares neither overflow
// nor underflow. Single-element vectors take a fast path.
func Dist2(x, y []float64) float64 {
	if len(x) != len(y) {
		panic(panicLenMismatch)
	}
	if len(x) == 1 {
		return math.Abs(x[0] - y[0])
	}

	scale := 0.0
	ssq := 1.0
	for i := range x {
		v := x[i] - y[i]
		if v == 0.0 {
			continue
		}
		av := math.Abs(v)
		if scale < av {
			ssq = 1.0 + ssq*(scale/av)*(scale/av)
			scale = av
		} else {
			ssq += (av / scale) * (av / scale)
		}
	}

	return scale * math.Sqrt(ssq)
}

// DistInf returns ‖x−y‖∞.
func DistInf(x, y []float64) float64 {
	if len(x) != len(y) {
		panic(panicLenMismatch)
	}
	dist := 0.0
	for i := range x {
		dist = math.Max(dist, math.Abs(x[i]-y[i]))
	}

	return dist
}

// SetZero assigns 0.0 to every element. The assignment is explicit
// rather than a byte-wise clear: IEEE-754 does not require the double
// zero to be all-zero bits on every platform.
func SetZero(x []float64) {
	for i := range x {
		x[i] = 0.0
	}
}

// SetAll assigns v to every element of x.
func SetAll(x []float64, v float64) {
	for i := range x {
		x[i] = v
	}
}
