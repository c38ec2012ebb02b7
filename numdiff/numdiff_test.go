package numdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boxmin/core"
	"github.com/katalvlaran/boxmin/gencan"
	"github.com/katalvlaran/boxmin/numdiff"
)

// cubic is a non-quadratic objective with a hand-checkable gradient:
// f(x) = Σ x_i³ + 2·x_i, ∇f_i = 3·x_i² + 2.
func cubic(x []float64) float64 {
	f := 0.0
	for _, xi := range x {
		f += xi*xi*xi + 2*xi
	}

	return f
}

func cubicGrad(x, grad []float64) {
	for i, xi := range x {
		grad[i] = 3*xi*xi + 2
	}
}

// TestGradient verifies the central-difference gradient against the
// analytic one and that x is restored.
func TestGradient(t *testing.T) {
	x := []float64{0.5, -1.25, 2}
	orig := append([]float64(nil), x...)
	grad := make([]float64, len(x))

	require.NoError(t, numdiff.Gradient(cubic, x, grad, 1e-6))

	want := make([]float64, len(x))
	cubicGrad(x, want)
	assert.InDeltaSlice(t, want, grad, 1e-6, "central difference matches analytic gradient")
	assert.Equal(t, orig, x, "x restored after differencing")
}

// TestGradient_Validation verifies the estimator guards.
func TestGradient_Validation(t *testing.T) {
	x := []float64{1}
	grad := []float64{0}

	assert.ErrorIs(t, numdiff.Gradient(cubic, x, grad, 0), numdiff.ErrBadStep)
	assert.ErrorIs(t, numdiff.Gradient(cubic, x, grad, -1e-6), numdiff.ErrBadStep)
	assert.ErrorIs(t, numdiff.Gradient(cubic, x, make([]float64, 2), 1e-6), numdiff.ErrBadLen)
}

// TestHv verifies the Hessian-vector estimate against the analytic
// product, with and without the accel scratch. For the cubic,
// H = diag(6·x_i).
func TestHv(t *testing.T) {
	x := []float64{0.5, -1.25, 2}
	v := []float64{1, -2, 0.5}

	want := make([]float64, len(x))
	for i := range x {
		want[i] = 6 * x[i] * v[i]
	}

	// Without scratch.
	hv := make([]float64, len(x))
	require.NoError(t, numdiff.Hv(nil, cubicGrad, x, v, hv, 1e-6))
	assert.InDeltaSlice(t, want, hv, 1e-5, "transient-scratch estimate")

	// With reusable scratch, twice, to confirm the accel is not
	// consumed by a call.
	accel := numdiff.NewHvAccel(len(x))
	for k := 0; k < 2; k++ {
		core.SetZero(hv)
		require.NoError(t, numdiff.Hv(accel, cubicGrad, x, v, hv, 1e-6))
		assert.InDeltaSlice(t, want, hv, 1e-5, "accel-scratch estimate, pass %d", k)
	}
}

// TestHv_Validation verifies the estimator guards, including a stale
// accel sized for a different dimension.
func TestHv_Validation(t *testing.T) {
	x := []float64{1, 2}
	v := []float64{1, 1}
	hv := make([]float64, 2)

	assert.ErrorIs(t, numdiff.Hv(nil, cubicGrad, x, v, hv, 0), numdiff.ErrBadStep)
	assert.ErrorIs(t, numdiff.Hv(nil, cubicGrad, x, []float64{1}, hv, 1e-6), numdiff.ErrBadLen)
	assert.ErrorIs(t, numdiff.Hv(numdiff.NewHvAccel(3), cubicGrad, x, v, hv, 1e-6), numdiff.ErrBadLen)
}

// TestGencanWithNumericHv runs gencan on a quadratic whose
// Hessian-vector product is estimated numerically: the estimators
// are accurate enough to drive the truncated-Newton inner solver.
func TestGencanWithNumericHv(t *testing.T) {
	const n = 10

	f := func(x []float64) float64 {
		v := 0.0
		for i, xi := range x {
			v += float64(i+1) * (xi - 0.5) * (xi - 0.5)
		}

		return v
	}
	df := func(x, grad []float64) {
		for i, xi := range x {
			grad[i] = 2 * float64(i+1) * (xi - 0.5)
		}
	}

	accel := numdiff.NewHvAccel(n)
	obj := core.Objective{
		N:  n,
		F:  f,
		Df: df,
		Hv: func(x, v, hv []float64) {
			_ = numdiff.Hv(accel, df, x, v, hv, 1e-7)
		},
	}

	m, err := core.New(gencan.New(), n)
	require.NoError(t, err)
	require.NoError(t, m.Set(obj, core.UniformBounds(n, -2, 2), make([]float64, n), gencan.DefaultParams()))

	for i := 0; i < 200 && m.IsOptimal() == core.Continue; i++ {
		st := m.Iterate()
		require.Contains(t, []core.Status{core.Success, core.FInnerIt, core.FLSearch}, st)
	}

	require.Equal(t, core.Success, m.IsOptimal())
	for i, xi := range m.X {
		assert.InDelta(t, 0.5, xi, 1e-4, "coordinate %d", i)
	}
}
