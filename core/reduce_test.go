package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boxmin/core"
	"github.com/katalvlaran/boxmin/spg"
)

// TestShrinkExpand_RoundTrip verifies that Shrink followed by Expand
// is the identity for any index set with distinct entries.
func TestShrinkExpand_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		ind  []int
		nind int
	}{
		{name: "empty face", ind: []int{0, 0, 0, 0, 0, 0}, nind: 0},
		{name: "full face", ind: []int{0, 1, 2, 3, 4, 5}, nind: 6},
		{name: "scattered", ind: []int{1, 3, 5}, nind: 3},
		{name: "reversed tail", ind: []int{5, 4, 2}, nind: 3},
		{name: "single", ind: []int{4}, nind: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := []float64{10, 11, 12, 13, 14, 15}
			orig := append([]float64(nil), v...)

			core.Shrink(tc.nind, tc.ind, v)
			core.Expand(tc.nind, tc.ind, v)

			assert.Equal(t, orig, v, "shrink∘expand must be the identity")
		})
	}
}

// TestShrink_MovesFreeCoordinatesFront verifies the permutation
// contract: after Shrink the first nind slots hold the indexed
// coordinates, in index order.
func TestShrink_MovesFreeCoordinatesFront(t *testing.T) {
	v := []float64{10, 11, 12, 13, 14, 15}
	ind := []int{1, 3, 5}

	core.Shrink(3, ind, v)

	assert.Equal(t, []float64{11, 13, 15}, v[:3], "free coordinates packed to the front")
}

// reducedProbe builds a 4-dimensional minimizer around the separable
// quadratic f(x) = Σ (i+1)·x_i² so the reduced-space evaluators can
// be compared against direct full-space evaluation.
func reducedProbe(t *testing.T) *core.Minimizer {
	t.Helper()

	const n = 4
	obj := core.Objective{
		N: n,
		F: func(x []float64) float64 {
			f := 0.0
			for i, xi := range x {
				f += float64(i+1) * xi * xi
			}

			return f
		},
		Df: func(x, grad []float64) {
			for i, xi := range x {
				grad[i] = 2 * float64(i+1) * xi
			}
		},
		Hv: func(_, v, hv []float64) {
			for i, vi := range v {
				hv[i] = 2 * float64(i+1) * vi
			}
		},
	}

	m, err := core.New(spg.New(), n)
	require.NoError(t, err)
	require.NoError(t, m.Set(obj, core.UniformBounds(n, -10, 10), []float64{1, 2, 3, 4}, spg.DefaultParams()))

	return m
}

// TestReducedF verifies that evaluating on a shrunken vector with a
// completed tail equals full-space evaluation at the assembled point.
func TestReducedF(t *testing.T) {
	m := reducedProbe(t)

	// Face {1, 3}: coordinates 1 and 3 free, 0 and 2 pinned.
	ind := []int{1, 3}
	nind := 2

	// xc carries the pinned values (x0=9, x2=5), shrunk into the same
	// layout the reduced vectors use.
	xc := []float64{9, 0, 5, 0}
	core.Shrink(nind, ind, xc)

	// Reduced point: free coordinates first, stale tail.
	x := []float64{-1, -2, 777, 777}

	got := core.ReducedF(m, nind, ind, x, xc)

	// Assembled full-space point: x1=-1, x3=-2, x0 and x2 from xc.
	want := m.EvalF([]float64{9, -1, 5, -2})
	assert.Equal(t, want, got, "reduced evaluation equals assembled full-space evaluation")

	// The reduced layout must be restored.
	assert.Equal(t, []float64{-1, -2}, x[:nind], "free coordinates back in front")
}

// TestReducedG verifies gradient evaluation through the permutation.
func TestReducedG(t *testing.T) {
	m := reducedProbe(t)

	ind := []int{0, 2}
	nind := 2

	xc := []float64{0, 3, 0, 4} // pinned x1=3, x3=4
	core.Shrink(nind, ind, xc)

	x := []float64{1, 2, 0, 0}
	grad := make([]float64, 4)

	core.ReducedG(m, nind, ind, x, xc, grad)

	// Full point (1, 3, 2, 4); gradient 2(i+1)x_i; shrunken gradient
	// leads with coordinates 0 and 2.
	assert.Equal(t, []float64{2, 12}, grad[:nind], "reduced gradient of the free coordinates")
}

// TestReducedHv verifies the zero-padding of the direction: pinned
// coordinates contribute nothing to H·v.
func TestReducedHv(t *testing.T) {
	m := reducedProbe(t)

	ind := []int{0, 2}
	nind := 2

	xc := []float64{0, 3, 0, 4}
	core.Shrink(nind, ind, xc)

	x := []float64{1, 2, 0, 0}
	v := []float64{1, 1, 999, 999} // stale tail must be ignored
	hv := make([]float64, 4)

	core.ReducedHv(m, nind, ind, x, xc, v, hv)

	// H = diag(2, 4, 6, 8); free coordinates 0 and 2 give (2, 6).
	assert.Equal(t, []float64{2, 6}, hv[:nind], "diagonal curvature of the free coordinates")

	hBefore := m.HCount()
	core.ReducedHv(m, nind, ind, x, xc, v, hv)
	assert.Equal(t, hBefore+1, m.HCount(), "each reduced Hv costs one user Hv call")
}
