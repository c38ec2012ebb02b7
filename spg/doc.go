// Package spg implements the spectral projected gradient method
// (Birgin–Martínez–Raydan) for box-constrained minimization.
//
// 🚀 What is spg?
//
//	A projected gradient method with two twists that make it fast in
//	practice:
//
//	  • the step along −∇f is scaled by the spectral (Barzilai–
//	    Borwein) coefficient α ≈ ⟨s,s⟩/⟨s,y⟩ built from the last
//	    iterate and gradient differences, and
//	  • the line search is non-monotone: a trial is accepted when it
//	    improves on the worst of the last M objective values, not on
//	    the last one, letting the method take occasional uphill steps
//	    that pay off later.
//
// ✨ Character:
//
//   - Non-monotone — the objective may rise along the trajectory
//   - Gradient-only — no Hessian products required
//   - One ring buffer of M past values; no allocation after Set
//     unless SetParams changes M
//
// Optimality is declared when ‖P(x−∇f)−x‖∞ ≤ Tol or f ≤ Fmin.
package spg
