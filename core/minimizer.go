// Package core: the minimizer framework — lifecycle, parameter
// discipline, evaluation counters and per-strategy dispatch.
package core

import "fmt"

// Minimizer drives one solver strategy over one problem instance.
//
// The exported vector fields are working storage owned by the
// minimizer. Solver engines mutate them during Iterate; everyone else
// must treat them as read-only views:
//
//	X        — current iterate (always feasible after Set)
//	Gradient — ∇f at X
//	Dx       — the last full-space step X_k − X_{k−1}; zero right
//	           after Set and Restart
//	F        — objective value at X
//	Size     — strategy-defined optimality proxy (projected-gradient
//	           sup-norm for every shipped solver)
//
// A Minimizer is not safe for concurrent use; independent instances
// with independent callbacks may run on separate goroutines.
type Minimizer struct {
	X        []float64
	Gradient []float64
	Dx       []float64
	F        float64
	Size     float64

	strategy Strategy
	n        int
	obj      Objective
	bounds   Bounds

	fcount, gcount, hcount int
	set                    bool
}

// New allocates a minimizer of dimension n driven by the given
// strategy. The strategy value must be freshly constructed and not
// shared with another minimizer.
func New(s Strategy, n int) (*Minimizer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadDimension, n)
	}
	if err := s.Init(n); err != nil {
		return nil, err
	}

	return &Minimizer{
		X:        make([]float64, n),
		Gradient: make([]float64, n),
		Dx:       make([]float64, n),
		strategy: s,
		n:        n,
	}, nil
}

// N returns the problem dimension fixed at allocation.
func (m *Minimizer) N() int { return m.n }

// Name returns the driving strategy's name.
func (m *Minimizer) Name() string { return m.strategy.Name() }

// FCount returns the number of objective evaluations so far.
func (m *Minimizer) FCount() int { return m.fcount }

// GCount returns the number of gradient evaluations so far.
func (m *Minimizer) GCount() int { return m.gcount }

// HCount returns the number of Hessian-vector evaluations so far.
func (m *Minimizer) HCount() int { return m.hcount }

// Lower returns the lower-bound vector supplied at Set.
// Solver engines copy it; callers must not mutate it.
func (m *Minimizer) Lower() []float64 { return m.bounds.Lower }

// Upper returns the upper-bound vector supplied at Set.
func (m *Minimizer) Upper() []float64 { return m.bounds.Upper }

// Set configures the minimizer: objective callbacks, box bounds,
// starting point and parameter block. The starting point is copied
// and, if infeasible, projected onto the box by the strategy before
// the first evaluation.
//
// Validation order: dimensions (ErrBadLen), callbacks
// (ErrNilCallback), bound consistency (ErrInfeasibleBounds),
// parameters (ErrInvalidParams). Nothing is mutated on failure.
func (m *Minimizer) Set(obj Objective, bounds Bounds, x0 []float64, p Params) error {
	// 1) Dimension checks against the allocation-time n.
	if obj.N != m.n {
		return fmt.Errorf("%w: objective dimension %d, minimizer %d", ErrBadLen, obj.N, m.n)
	}
	if len(x0) != m.n {
		return fmt.Errorf("%w: starting point length %d, minimizer %d", ErrBadLen, len(x0), m.n)
	}
	if bounds.N != m.n || len(bounds.Lower) != m.n || len(bounds.Upper) != m.n {
		return fmt.Errorf("%w: bounds dimension not %d", ErrBadLen, m.n)
	}

	// 2) Mandatory callbacks.
	if obj.F == nil || obj.Df == nil {
		return ErrNilCallback
	}

	// 3) The box must be non-empty coordinate-wise.
	for i := 0; i < m.n; i++ {
		if bounds.Lower[i] > bounds.Upper[i] {
			return fmt.Errorf("%w: coordinate %d", ErrInfeasibleBounds, i)
		}
	}

	// 4) Validate and copy the parameter block in.
	if err := m.strategy.SetParams(m, p); err != nil {
		return err
	}

	// 5) Commit: iterate, zero step, fresh counters.
	m.obj = obj
	m.bounds = bounds
	copy(m.X, x0)
	SetZero(m.Dx)
	m.fcount = 0
	m.gcount = 0
	m.hcount = 0
	m.set = true

	if st := m.strategy.Set(m); st != Success {
		m.set = false

		return fmt.Errorf("core: set failed: %v", st)
	}

	return nil
}

// SetParams replaces the parameter block between iterations. An
// invalid block fails with ErrInvalidParams and leaves the previous
// block (retrievable via Params) in effect.
func (m *Minimizer) SetParams(p Params) error {
	return m.strategy.SetParams(m, p)
}

// Params returns a copy of the parameter block currently in use.
func (m *Minimizer) Params() Params { return m.strategy.Params() }

// Restart re-arms the minimizer at its current iterate: Dx and the
// evaluation counters are reset, then f and ∇f are re-evaluated (so
// the counters read one function and one gradient evaluation right
// after Restart returns).
func (m *Minimizer) Restart() error {
	if !m.set {
		return ErrNotSet
	}

	SetZero(m.Dx)
	m.fcount = 0
	m.gcount = 0
	m.hcount = 0

	if st := m.strategy.Restart(m); st != Success {
		return fmt.Errorf("core: restart failed: %v", st)
	}

	return nil
}

// Iterate advances the solver by one outer iteration and reports the
// iteration status. Continue/Success bookkeeping is left to
// IsOptimal; see the Status constants for the terminal codes.
func (m *Minimizer) Iterate() Status {
	if !m.set {
		return EInval
	}

	return m.strategy.Iterate(m)
}

// IsOptimal reports Success when the strategy's optimality predicate
// holds at the current iterate and Continue otherwise.
func (m *Minimizer) IsOptimal() Status {
	if !m.set {
		return EInval
	}

	return m.strategy.IsOptimal(m)
}

// Evaluation helpers. Every user callback runs through exactly one of
// these, so the counter triple is the sole observable measure of
// work. Counters are incremented before the callback is invoked: a
// panicking callback can not leave an evaluation unaccounted for.

// EvalF evaluates the objective at x.
func (m *Minimizer) EvalF(x []float64) float64 {
	m.fcount++

	return m.obj.F(x)
}

// EvalDF evaluates the gradient at x into grad.
func (m *Minimizer) EvalDF(x, grad []float64) {
	m.gcount++
	m.obj.Df(x, grad)
}

// EvalFDF evaluates objective and gradient together, preferring the
// user's combined callback when supplied.
func (m *Minimizer) EvalFDF(x, grad []float64) float64 {
	m.fcount++
	m.gcount++
	if m.obj.Fdf != nil {
		return m.obj.Fdf(x, grad)
	}
	m.obj.Df(x, grad)

	return m.obj.F(x)
}

// EvalHv evaluates the Hessian-vector product H(x)·v into hv.
func (m *Minimizer) EvalHv(x, v, hv []float64) {
	m.hcount++
	m.obj.Hv(x, v, hv)
}
