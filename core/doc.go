// Package core provides the shared foundation of the boxmin solvers:
// the objective/bounds handles, the minimizer framework with its
// lifecycle and evaluation counters, the dense vector kernels, and the
// reduced-space index tools used by active-set methods.
//
// 🚀 What lives here?
//
//	Objective  — dimension plus the f, ∇f, (f,∇f) and H·v callbacks
//	Bounds     — the feasible box L ≤ x ≤ U
//	Minimizer  — owns the iterate, gradient, last step and counters;
//	             dispatches every operation to a Strategy
//	Strategy   — the capability set each solver engine implements
//	Status     — the stable integer status taxonomy shared by all
//	             solvers
//
// ✨ Framework guarantees:
//
//   - Feasibility  — after Set and after every successful Iterate the
//     iterate satisfies L ≤ x ≤ U
//   - Bookkeeping  — the (FCount, GCount, HCount) triple moves only
//     when a user callback runs, and is the sole measure of work
//   - Ownership    — working vectors belong to the minimizer; the
//     parameter block is copied in and out, never aliased
//   - Determinism  — identical inputs produce identical iterate
//     sequences
//
// The vector kernels (Proj, MaxOfMin, MinOfMax, Dist2, DistInf) and
// the reduced-space tools (Shrink, Expand, ReducedF/ReducedG/ReducedHv)
// are exported for the solver subpackages; ordinary callers only need
// Minimizer, Objective and Bounds.
package core
