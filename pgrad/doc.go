// Package pgrad implements the projected gradient method for
// box-constrained minimization.
//
// 🚀 What is pgrad?
//
//	The simplest of the boxmin engines: each iteration walks down the
//	steepest-descent direction, projects the trial back onto the box,
//	and backtracks with a safeguarded quadratic interpolant until the
//	Armijo sufficient-decrease condition holds (the classic scheme
//	from Kelley's "Iterative Methods for Optimization").
//
// ✨ Character:
//
//   - Monotone      — the objective value strictly decreases every
//     iteration
//   - Cheap         — one gradient per iteration, no Hessian products
//   - Robust        — converges slowly but from anywhere in the box
//
// Optimality is declared when ‖P(x−∇f)−x‖∞ ≤ Tol or f ≤ Fmin.
//
// Use spg for a usually much faster non-monotone variant, or gencan
// when Hessian-vector products are available.
package pgrad
