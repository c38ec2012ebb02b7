// Package gencan implements the GENCAN active-set method
// (Birgin–Martínez) for box-constrained minimization.
//
// 🚀 What is gencan?
//
//	An active-set method that treats the box geometry explicitly.
//	Each outer iteration inspects the projected gradient and decides
//	where the action is:
//
//	  • if most of the projected gradient lives on coordinates pinned
//	    at a bound, the current face is unlikely to survive — take a
//	    spectral projected gradient step in the full space and let
//	    the active set change; otherwise
//	  • stay on the closure of the current face: shrink the problem
//	    to the free coordinates, approximately minimize the quadratic
//	    model with a conjugate gradient solver under a dual (ℓ₂/ℓ∞)
//	    trust region and the box, then line-search the resulting
//	    truncated-Newton direction with extrapolation and
//	    interpolation.
//
// ✨ Character:
//
//   - Second-order — uses Hessian-vector products, never a Hessian
//     matrix
//   - Active-set   — identifies the optimal face in finitely many
//     iterations on nondegenerate problems
//   - Safeguarded  — every inner step is bounded by a trust region,
//     the box, an angle condition and a progress test
//
// Optimality is declared when ‖gp‖₂² ≤ EpsGPEn², ‖gp‖∞ ≤ EpsGPSn or
// f ≤ Fmin, where gp = P(x−∇f)−x is the continuous projected
// gradient.
package gencan
