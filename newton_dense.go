// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultNewtonIncrease               = 5.0
	defaultNewtonRegularizationAttempts = 30
)

// DenseNewton is a second-order DescentStrategy for objectives that
// implement Hessian. At its native ladder level it first attempts the
// unregularized Newton system H·Δx = -g via Cholesky; whenever that fails
// (H not positive definite) it regularizes within the same call, adding τI
// on a growing schedule until the factorization succeeds, with the initial
// τ seeded from the smallest diagonal entry. At level 1 the unregularized
// attempt is skipped and every solve is regularized. Once
// MaxRegularizationAttempts is exhausted the emitted direction is NaN, which
// the driver rejects, advancing the ladder. Level 2 is the shared
// gradient-descent terminal.
type DenseNewton struct {
	ladder

	// Increase is the factor τ is multiplied by between regularization
	// attempts. Defaults to 5.
	Increase float64
	// MaxRegularizationAttempts bounds the τ-growth loop. Defaults to 30,
	// matching SparseNewton.
	MaxRegularizationAttempts int

	dim  int
	hess *mat.SymDense
	reg  *mat.SymDense
	chol mat.Cholesky
}

func (n *DenseNewton) Reset(dim int) {
	n.ladder.setDefault()
	n.dim = dim
	n.hess = mat.NewSymDense(dim, nil)
	n.reg = mat.NewSymDense(dim, nil)
	if n.Increase == 0 {
		n.Increase = defaultNewtonIncrease
	}
	if n.MaxRegularizationAttempts == 0 {
		n.MaxRegularizationAttempts = defaultNewtonRegularizationAttempts
	}
}

func (n *DenseNewton) ComputeUpdateDirection(obj *objective, x, g, dir []float64) error {
	if n.atTerminal() {
		copy(dir, g)
		floats.Scale(-1, dir)
		return nil
	}
	if !obj.hasHess {
		return ErrMissingHessian
	}

	obj.hessian(x, n.hess)

	if n.Level() == levelNative && n.chol.Factorize(n.hess) && n.solve(g, dir) {
		return nil
	}

	// The unregularized system failed (or, at level 1, was never tried):
	// add τI on a growing schedule, seeding τ from the smallest diagonal
	// entry.
	minDiag := n.hess.At(0, 0)
	for i := 1; i < n.dim; i++ {
		if a := n.hess.At(i, i); a < minDiag {
			minDiag = a
		}
	}
	var tau float64
	if minDiag <= 0 {
		tau = -minDiag + 0.001
	}

	for attempt := 0; attempt < n.MaxRegularizationAttempts; attempt++ {
		n.reg.CopySym(n.hess)
		for i := 0; i < n.dim; i++ {
			n.reg.SetSym(i, i, n.hess.At(i, i)+tau)
		}
		if n.chol.Factorize(n.reg) && n.solve(g, dir) {
			return nil
		}
		tau = math.Max(n.Increase*tau, 0.001)
	}

	// Regularization exhausted: emit a direction the driver must reject
	// so the ladder advances.
	for i := range dir {
		dir[i] = math.NaN()
	}
	return nil
}

// solve computes dir = -H⁻¹g from the current factorization, reporting
// whether the triangular solve succeeded.
func (n *DenseNewton) solve(g, dir []float64) bool {
	gVec := mat.NewVecDense(n.dim, g)
	dVec := mat.NewVecDense(n.dim, nil)
	if err := n.chol.SolveVecTo(dVec, gVec); err != nil {
		return false
	}
	copy(dir, dVec.RawVector().Data)
	floats.Scale(-1, dir)
	return true
}

func (n *DenseNewton) IsDirectionDescent() bool { return true }

func (n *DenseNewton) IncreaseDescentStrategy()   { n.ladder.increase() }
func (n *DenseNewton) SetDefaultDescentStrategy() { n.ladder.setDefault() }

func (n *DenseNewton) Name() string { return "DenseNewton" }

func (n *DenseNewton) DescentStrategyName() string {
	switch n.Level() {
	case levelNative:
		return "DenseNewton"
	case levelGradientDescent:
		return "GradientDescent"
	default:
		return "DenseNewton-regularized"
	}
}
