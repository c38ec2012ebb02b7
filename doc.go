// Package boxmin is a library for box-constrained nonlinear
// minimization in Go.
//
// 🚀 What is boxmin?
//
//	Given a smooth objective f : ℝⁿ → ℝ and simple bounds L ≤ x ≤ U,
//	boxmin searches for a local minimizer satisfying a first-order
//	optimality condition on the feasible box. Three interchangeable
//	solver strategies share one minimizer framework:
//
//	  • pgrad  — projected gradient with Armijo backtracking
//	  • spg    — spectral (Barzilai–Borwein) projected gradient with
//	             a non-monotone line search
//	  • gencan — active-set method mixing spectral steps on faces
//	             likely to change with truncated-Newton conjugate
//	             gradient steps inside the current face
//
// ✨ Why choose boxmin?
//
//   - One surface        — swap solvers without touching caller code
//   - Deterministic      — identical inputs yield identical iterates
//   - Callback driven    — you supply f, ∇f and (optionally) H·v;
//     no matrices are ever formed
//   - Instrumented       — evaluation counters, step and size getters
//     on every iteration
//
// Everything is organized under five subpackages:
//
//	core/    — objective/bounds handles, minimizer framework, vector
//	           kernels, reduced-space index tools
//	pgrad/   — projected gradient engine
//	spg/     — spectral projected gradient engine
//	gencan/  — active-set truncated-Newton engine
//	numdiff/ — finite-difference gradient and Hessian-vector helpers
//
// Quick sketch:
//
//	m, _ := core.New(gencan.New(), n)
//	_ = m.Set(obj, bounds, x0, gencan.DefaultParams())
//	for m.IsOptimal() == core.Continue {
//	    if st := m.Iterate(); st != core.Success && st != core.Continue {
//	        break
//	    }
//	}
//
//	go get github.com/katalvlaran/boxmin
package boxmin
