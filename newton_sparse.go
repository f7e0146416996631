// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"math"

	"github.com/mtao/polysolve/internal/sparsemat"
	"gonum.org/v1/exp/linsolve"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultSparseNewtonIncrease               = 5.0
	defaultSparseNewtonRegularizationAttempts = 30
)

// SparseNewton is DenseNewton's counterpart for objectives whose Hessian is
// expected to be sparse: instead of a dense Cholesky factorization, it
// solves H·Δx = -g with gonum.org/v1/exp/linsolve's Conjugate Gradient
// method against a triplet-backed internal/sparsemat.Matrix. Whenever CG
// fails to converge — the symmetric-positive-definite precondition it
// silently assumes — the solve is regularized within the same call, with
// the same τI growth schedule as DenseNewton, and the emitted direction is
// NaN once MaxRegularizationAttempts is exhausted so the driver rejects it
// and advances the ladder.
//
// CG can also converge on an indefinite system and hand back an ascent
// direction; the driver's descent validation catches that case and retries
// at level 1, where the unregularized attempt is skipped.
type SparseNewton struct {
	ladder

	// Increase is the τ growth factor between regularization attempts.
	// Defaults to 5, matching DenseNewton.
	Increase float64
	// Tolerance and MaxIterations configure the inner CG solve, passed
	// straight through to linsolve.Settings.
	Tolerance     float64
	MaxIterations int
	// MaxRegularizationAttempts bounds the τ-growth loop. Defaults to 30.
	MaxRegularizationAttempts int

	dim         int
	hessScratch *mat.SymDense
	sparse      *sparsemat.Matrix
}

func (n *SparseNewton) Reset(dim int) {
	n.ladder.setDefault()
	n.dim = dim
	n.hessScratch = mat.NewSymDense(dim, nil)
	n.sparse = sparsemat.NewMatrix(dim)
	if n.Increase == 0 {
		n.Increase = defaultSparseNewtonIncrease
	}
	if n.MaxRegularizationAttempts == 0 {
		n.MaxRegularizationAttempts = defaultSparseNewtonRegularizationAttempts
	}
}

// fill rebuilds the sparse operator from the dense Hessian the objective
// wrote into hessScratch, dropping explicit zeros. The Hessian capability
// interface is dense for every strategy; SparseNewton's contribution is
// solving the system without a dense factorization, not avoiding the dense
// assembly step.
func (n *SparseNewton) fill() {
	n.sparse.Reset()
	for i := 0; i < n.dim; i++ {
		for j := i; j < n.dim; j++ {
			v := n.hessScratch.At(i, j)
			if i == j {
				n.sparse.Set(i, i, v)
				continue
			}
			if v == 0 {
				continue
			}
			n.sparse.Set(i, j, v)
			n.sparse.Set(j, i, v)
		}
	}
}

func (n *SparseNewton) solve(g, dir []float64) error {
	b := mat.NewVecDense(n.dim, g)
	dst := mat.NewVecDense(n.dim, nil)
	settings := &linsolve.Settings{
		Dst:           dst,
		Tolerance:     n.Tolerance,
		MaxIterations: n.MaxIterations,
	}
	_, err := linsolve.Iterative(n.sparse, b, &linsolve.CG{}, settings)
	if err != nil {
		return err
	}
	copy(dir, dst.RawVector().Data)
	floats.Scale(-1, dir)
	return nil
}

func (n *SparseNewton) ComputeUpdateDirection(obj *objective, x, g, dir []float64) error {
	if n.atTerminal() {
		copy(dir, g)
		floats.Scale(-1, dir)
		return nil
	}
	if !obj.hasHess {
		return ErrMissingHessian
	}

	obj.hessian(x, n.hessScratch)
	n.fill()

	if n.Level() == levelNative && n.solve(g, dir) == nil {
		return nil
	}

	minDiag := n.hessScratch.At(0, 0)
	for i := 1; i < n.dim; i++ {
		if a := n.hessScratch.At(i, i); a < minDiag {
			minDiag = a
		}
	}
	var tau float64
	if minDiag <= 0 {
		tau = -minDiag + 0.001
	}

	for attempt := 0; attempt < n.MaxRegularizationAttempts; attempt++ {
		n.fill()
		if tau != 0 {
			n.sparse.AddToDiag(tau)
		}
		if n.solve(g, dir) == nil {
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

func (n *SparseNewton) IsDirectionDescent() bool { return true }

func (n *SparseNewton) IncreaseDescentStrategy()   { n.ladder.increase() }
func (n *SparseNewton) SetDefaultDescentStrategy() { n.ladder.setDefault() }

func (n *SparseNewton) Name() string { return "SparseNewton" }

func (n *SparseNewton) DescentStrategyName() string {
	switch n.Level() {
	case levelNative:
		return "SparseNewton"
	case levelGradientDescent:
		return "GradientDescent"
	default:
		return "SparseNewton-regularized"
	}
}
