// Package numdiff provides finite-difference estimators for callers
// whose objectives lack analytic derivatives.
//
// 🚀 What is numdiff?
//
//	Two small helpers that plug straight into core.Objective:
//
//	  • Gradient — central-difference gradient of f
//	  • Hv       — Hessian-vector product from central gradient
//	    differences along each coordinate,
//	    (H(x)·v)ᵢ ≈ (∇f(x+εeᵢ) − ∇f(x−εeᵢ))ᵀv / (2ε), 2·n gradient
//	    evaluations per call
//
// A reusable HvAccel scratch block avoids the two gradient-sized
// allocations per Hv call inside an inner solver loop.
//
// ✨ Choosing eps:
//
//	A good step for the central difference is eps ≈ η^(1/3)·‖x‖∞,
//	where η is the relative accuracy of the objective evaluation
//	(machine epsilon for exact arithmetic).
//
// These estimators are collaborators, not part of the solver core:
// the engines never difference anything themselves.
package numdiff
