// Package core: reduced-space index tools.
//
// Active-set methods work on the face Ind = {i : L[i] < x[i] < U[i]}.
// Shrink permutes a vector so its first nind entries are the free
// coordinates; Expand is the exact inverse. The Reduced* evaluators
// let an inner solver of dimension nind call the user's full-space
// callbacks without copying: the shrunken vector's tail is completed
// from a companion vector, expanded, evaluated, and shrunk back.
package core

// Shrink permutes v in place so that the coordinates listed in
// ind[:nind] occupy positions 0..nind-1. Entries of ind must be
// distinct indices < len(v), produced by the same face scan for every
// vector shrunk in one iteration.
func Shrink(nind int, ind []int, v []float64) {
	for i := 0; i < nind; i++ {
		v[i], v[ind[i]] = v[ind[i]], v[i]
	}
}

// Expand undoes Shrink by replaying the swaps in reverse order.
// Shrink followed by Expand is the identity on any vector.
func Expand(nind int, ind []int, v []float64) {
	for i := nind - 1; i >= 0; i-- {
		v[i], v[ind[i]] = v[ind[i]], v[i]
	}
}

// ReducedF evaluates the objective at the reduced-space point x.
// The tail x[nind:] is first completed from xc (which holds the
// bound-pinned coordinates in shrunken order), the whole vector is
// expanded to full space, evaluated, and shrunk back. x is restored
// to its shrunken layout before returning; xc is read-only.
func ReducedF(m *Minimizer, nind int, ind []int, x, xc []float64) float64 {
	missing := len(x) - nind
	if missing > 0 {
		copy(x[nind:], xc[nind:])
		Expand(nind, ind, x)
	}

	f := m.EvalF(x)

	if missing > 0 {
		Shrink(nind, ind, x)
	}

	return f
}

// ReducedG evaluates the gradient at the reduced-space point x into
// grad, leaving both in shrunken layout.
func ReducedG(m *Minimizer, nind int, ind []int, x, xc, grad []float64) {
	missing := len(x) - nind
	if missing > 0 {
		copy(x[nind:], xc[nind:])
		Expand(nind, ind, x)
	}

	m.EvalDF(x, grad)

	if missing > 0 {
		Shrink(nind, ind, x)
		Shrink(nind, ind, grad)
	}
}

// ReducedHv evaluates the Hessian-vector product at the reduced-space
// point x for the reduced direction v, writing into hv. The tail of v
// is zero-padded so pinned coordinates contribute nothing.
func ReducedHv(m *Minimizer, nind int, ind []int, x, xc, v, hv []float64) {
	missing := len(x) - nind
	if missing > 0 {
		copy(x[nind:], xc[nind:])
		SetZero(v[nind:])
		Expand(nind, ind, x)
		Expand(nind, ind, v)
	}

	m.EvalHv(x, v, hv)

	if missing > 0 {
		Shrink(nind, ind, x)
		Shrink(nind, ind, v)
		Shrink(nind, ind, hv)
	}
}
