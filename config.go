// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "fmt"

// StrategyKind names a concrete DescentStrategy. Parsing a raw
// configuration document into a typed Config is the caller's job;
// NewSolver consumes the resolved StrategyKind directly.
type StrategyKind string

const (
	StrategyBFGS            StrategyKind = "BFGS"
	StrategyDenseNewton     StrategyKind = "DenseNewton"
	StrategySparseNewton    StrategyKind = "SparseNewton"
	StrategyGradientDescent StrategyKind = "GradientDescent"
	StrategyLBFGS           StrategyKind = "LBFGS"
)

// ParseStrategyKind resolves a strategy name or one of its accepted
// aliases ("dense_newton", "Newton", "sparse_newton", "gradient_descent",
// "L-BFGS") to its canonical StrategyKind.
func ParseStrategyKind(s string) (StrategyKind, error) {
	switch s {
	case string(StrategyBFGS):
		return StrategyBFGS, nil
	case string(StrategyDenseNewton), "dense_newton":
		return StrategyDenseNewton, nil
	case string(StrategySparseNewton), "Newton", "sparse_newton":
		return StrategySparseNewton, nil
	case string(StrategyGradientDescent), "gradient_descent":
		return StrategyGradientDescent, nil
	case string(StrategyLBFGS), "L-BFGS":
		return StrategyLBFGS, nil
	default:
		return "", fmt.Errorf("polysolve: unrecognized solver %q", s)
	}
}

// LineSearchConfig selects and parameterizes the LineSearcher.
type LineSearchConfig struct {
	// Method names the concrete LineSearcher: "None", "Armijo", or
	// "BisectionWolfe". Defaults to "Armijo" if empty.
	Method string
	// UseGradNormTol, if nonzero, is scaled by characteristic_length and
	// wired into the chosen LineSearcher as its gradient-norm acceptance
	// tolerance.
	UseGradNormTol float64
}

// Config is the already-typed solver configuration; parsing a raw
// configuration document into this struct is the caller's concern.
type Config struct {
	Solver StrategyKind

	XDelta   float64
	FDelta   float64
	GradNorm float64

	MaxIterations        int
	FirstGradNormTol     float64
	AllowOutOfIterations bool

	// Condition is an optional conditioning threshold. It is never
	// enforced, only carried through to Info for reporting.
	Condition float64

	LineSearch LineSearchConfig

	// HistorySize is consumed only by StrategyLBFGS; defaults to 10 if
	// zero.
	HistorySize int
}

// LinearSolverConfig is consumed only by DenseNewton/SparseNewton: the
// regularization schedule plus, for SparseNewton, the linsolve settings
// passed straight through to the inner CG solve.
type LinearSolverConfig struct {
	// Increase is the τ growth factor between regularization attempts.
	// Defaults to 5 if zero.
	Increase float64
	// MaxRegularizationAttempts bounds the τ-growth loop, in which τ is
	// multiplied by Increase (not doubled, unless Increase is 2) between
	// attempts. Defaults to 30 if zero.
	MaxRegularizationAttempts int

	// Tolerance and MaxIterations configure SparseNewton's inner CG
	// solve only; DenseNewton ignores them.
	Tolerance     float64
	MaxIterations int
}

// Validate reports a diagnostic error for any out-of-range or missing
// required field.
func (c Config) Validate() error {
	if _, err := ParseStrategyKind(string(c.Solver)); err != nil {
		return err
	}
	if c.XDelta < 0 || c.FDelta < 0 || c.GradNorm < 0 {
		return fmt.Errorf("polysolve: x_delta, f_delta, and grad_norm must be nonnegative")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("polysolve: max_iterations must be positive")
	}
	if c.FirstGradNormTol < 0 {
		return fmt.Errorf("polysolve: first_grad_norm_tol must be nonnegative")
	}
	if c.Condition < 0 {
		return fmt.Errorf("polysolve: condition must be nonnegative")
	}
	if c.LineSearch.UseGradNormTol < 0 {
		return fmt.Errorf("polysolve: line_search.use_grad_norm_tol must be nonnegative")
	}
	switch c.LineSearch.Method {
	case "", "None", "Armijo", "BisectionWolfe":
	default:
		return fmt.Errorf("polysolve: unrecognized line search method %q", c.LineSearch.Method)
	}
	return nil
}

// Scaled returns the stop Criteria with XDelta/FDelta/GradNorm multiplied
// exactly once by characteristicLength; the scaling is never repeated.
// Condition is dimensionless and carried through unscaled.
func (c Config) Scaled(characteristicLength float64) Criteria {
	return Criteria{
		Iterations: c.MaxIterations,
		XDelta:     c.XDelta * characteristicLength,
		FDelta:     c.FDelta * characteristicLength,
		GradNorm:   c.GradNorm * characteristicLength,
		Condition:  c.Condition,
	}
}

// scaledFirstGradNormTol returns FirstGradNormTol scaled the same way,
// used only during iteration 0.
func (c Config) scaledFirstGradNormTol(characteristicLength float64) float64 {
	return c.FirstGradNormTol * characteristicLength
}
