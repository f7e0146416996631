// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BFGS is a quasi-Newton DescentStrategy that maintains a dense
// inverse-Hessian approximation and performs the standard rank-two BFGS
// update after every committed step.
//
// At the ladder's terminal level BFGS behaves exactly like
// GradientDescent: Δx = -g, ignoring and leaving untouched whatever
// curvature state it holds, so that a later SetDefaultDescentStrategy
// resumes quasi-Newton behavior without having been corrupted by a
// gradient-descent iteration.
type BFGS struct {
	ladder

	dim  int
	x    []float64 // location at the last committed iteration
	grad []float64 // gradient at the last committed iteration

	s, y    []float64 // scratch: step and gradient differences
	invHess *mat.Dense

	haveState bool // false until the first ComputeUpdateDirection after Reset
	first     bool // true until the first rank-two update rescales invHess
}

func (b *BFGS) Reset(n int) {
	b.ladder.setDefault()
	b.dim = n
	b.x = resize(b.x, n)
	b.grad = resize(b.grad, n)
	b.s = resize(b.s, n)
	b.y = resize(b.y, n)
	b.invHess = mat.NewDense(n, n, nil)
	b.haveState = false
}

func (b *BFGS) ComputeUpdateDirection(obj *objective, x, g, dir []float64) error {
	if b.atTerminal() {
		copy(dir, g)
		floats.Scale(-1, dir)
		return nil
	}

	if !b.haveState {
		// First call since Reset: the inverse Hessian is still the zero
		// matrix, so take a scaled steepest-descent step and seed the
		// approximation with the identity.
		copy(dir, g)
		floats.Scale(-1, dir)
		norm := floats.Norm(dir, 2)
		if norm > 0 {
			floats.Scale(1/math.Sqrt(norm), dir)
		}
		for i := 0; i < b.dim; i++ {
			b.invHess.Set(i, i, 1)
		}
		copy(b.x, x)
		copy(b.grad, g)
		b.haveState = true
		b.first = true
		return nil
	}

	floats.SubTo(b.y, g, b.grad)
	floats.SubTo(b.s, x, b.x)

	sDotY := floats.Dot(b.s, b.y)
	if sDotY <= 0 {
		// Curvature condition violated: the update would destroy
		// positive-definiteness. Skip the update and fall through to a
		// plain -H·g step using the existing (stale) inverse Hessian;
		// recorded state still advances so the next call has a fresh
		// (s, y) pair to try.
		copy(b.x, x)
		copy(b.grad, g)
		return b.direction(g, dir)
	}

	if b.first {
		// Rescale the initial Hessian.
		// From: Numerical optimization, Nocedal and Wright, Page 200 eq. 8.20.
		scale := sDotY / floats.Dot(b.y, b.y)
		for i := 0; i < b.dim; i++ {
			b.invHess.Set(i, i, scale)
		}
		b.first = false
	}

	yVec := mat.NewVecDense(b.dim, b.y)
	sVec := mat.NewVecDense(b.dim, b.s)

	hy := mat.NewVecDense(b.dim, nil)
	hy.MulVec(b.invHess, yVec)
	yHy := mat.Dot(yVec, hy)

	sDotYSquared := sDotY * sDotY
	firstTermConst := (sDotY + yHy) / sDotYSquared

	// invHess is symmetric by construction, so H·y is the same vector
	// whichever side it is formed from; reuse hy for both outer-product
	// correction terms instead of recomputing it transposed.
	tmp := mat.NewDense(b.dim, b.dim, nil)
	tmp.Mul(hy, sVec.T())
	tmp.Scale(-1/sDotY, tmp)

	tmp2 := mat.NewDense(b.dim, b.dim, nil)
	tmp2.Mul(sVec, hy.T())
	tmp2.Scale(-1/sDotY, tmp2)

	b.invHess.Add(b.invHess, tmp)
	b.invHess.Add(b.invHess, tmp2)
	b.invHess.RankOne(b.invHess, firstTermConst, sVec, sVec)

	copy(b.x, x)
	copy(b.grad, g)

	return b.direction(g, dir)
}

// direction computes dir = -invHess·g.
func (b *BFGS) direction(g, dir []float64) error {
	gVec := mat.NewVecDense(b.dim, g)
	dVec := mat.NewVecDense(b.dim, nil)
	dVec.MulVec(b.invHess, gVec)
	copy(dir, dVec.RawVector().Data)
	floats.Scale(-1, dir)
	return nil
}

func (b *BFGS) IsDirectionDescent() bool { return true }

func (b *BFGS) IncreaseDescentStrategy()   { b.ladder.increase() }
func (b *BFGS) SetDefaultDescentStrategy() { b.ladder.setDefault() }

func (b *BFGS) Name() string { return "BFGS" }

func (b *BFGS) DescentStrategyName() string {
	if b.atTerminal() {
		return "GradientDescent"
	}
	return "BFGS"
}
