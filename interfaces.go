// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "gonum.org/v1/gonum/mat"

// Function evaluates the objective function at x. Value must not modify x.
// The returned value may be non-finite; the driver treats NaN and ±Inf
// reported here as a fatal NaNEncountered error.
type Function interface {
	Value(x []float64) float64
}

// Gradient writes ∇f(x) into g, which has the same length as x. Gradient
// must not modify x. A non-finite entry is fatal, the same as Function.
type Gradient interface {
	Gradient(x, g []float64)
}

// Hessian writes ∇²f(x) into hess, a dim(x)×dim(x) symmetric matrix.
// Strategies that require second-order information (DenseNewton,
// SparseNewton) are not eligible for an objective that does not implement
// Hessian; Minimize returns ErrMissingHessian in that case.
type Hessian interface {
	Hessian(x []float64, hess *mat.SymDense)
}

// SolutionChanger is called once before the solve loop begins and again
// after every committed step, so the objective can refresh constraint or
// auxiliary state that depends on the current x.
type SolutionChanger interface {
	SolutionChanged(x []float64)
}

// Stopper lets the objective request an early, successful stop.
type Stopper interface {
	Stop(x []float64) bool
}

// PostStepper is notified after a step has been committed to x.
type PostStepper interface {
	PostStep(iter int, x []float64)
}

// Checkpointer is a side-effecting checkpoint hook invoked after every
// committed step. A no-op implementation is permitted.
type Checkpointer interface {
	SaveToFile(x []float64)
}

// Callbacker is an advisory, non-error termination hook invoked after every
// committed step. Returning false ends Minimize without the exit being
// treated as a failure, distinct from Stopper.
type Callbacker interface {
	Callback(current Criteria, x []float64) bool
}

// LineSearcher scales a descent direction Δx into an acceptable step α.
// Search must return α > 0 such that x+α·dir is finite and sufficiently
// decreased, or report an error if no such α could be found within its
// budget.
type LineSearcher interface {
	// Search scales dir into a step length α. g is ∇f(x), needed by
	// strategies (Armijo and up) that check the sufficient-decrease
	// condition against the initial directional derivative ∇f(x)·dir.
	Search(obj *objective, x, dir, g []float64, f0 float64, timing *lineSearchTiming) (float64, error)
	// Name identifies the method for Info's line_search field.
	Name() string
}

// DescentStrategy produces a proposed update direction from the current
// iterate and maintains whatever curvature state its algorithm needs. Every
// strategy also exposes a fallback ladder: Level 0 is the strategy's
// native behavior, Level 2 is always pure gradient descent (the terminal
// fallback shared by every strategy), and intermediate levels are
// strategy-specific.
type DescentStrategy interface {
	// ComputeUpdateDirection writes a proposed Δx into dir given the
	// current location x and gradient g.
	ComputeUpdateDirection(obj *objective, x, g, dir []float64) error
	// IsDirectionDescent reports whether Δx from ComputeUpdateDirection is
	// nominally a descent direction and therefore must be validated by the
	// driver against the actual gradient.
	IsDirectionDescent() bool
	// IncreaseDescentStrategy advances Level toward the gradient-descent
	// terminal. A no-op once Level is already 2.
	IncreaseDescentStrategy()
	// SetDefaultDescentStrategy resets Level to the strategy's native
	// default. Called by the driver at every iteration commit.
	SetDefaultDescentStrategy()
	// Level reports the current strategy_level.
	Level() int
	// Reset clears all curvature state for a problem of dimension n. Called
	// once at the start of Minimize, and again whenever the strategy
	// demands it internally (e.g. LBFGS after a rejected direction).
	Reset(n int)
	// Name identifies the strategy itself, independent of its current
	// fallback level (e.g. "BFGS").
	Name() string
	// DescentStrategyName identifies the strategy's behavior at its
	// current Level, for diagnostics (e.g. "DenseNewton-regularized" or, at
	// Level 2, "GradientDescent" regardless of the base strategy).
	DescentStrategyName() string
}

// Logger is the leveled logging sink a Solver is constructed with.
// Recoverable errors (strategy fallback, line-search retries) are logged
// at Debugf; a single fatal diagnostic is logged at Errorf before Minimize
// returns a *SolveError. The argument and capability errors
// ErrZeroDimensional, ErrMissingGradient and ErrMissingHessian are returned
// without being logged.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}
