// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "gonum.org/v1/gonum/floats"

const defaultLBFGSStore = 10

// LBFGS is the limited-memory BFGS DescentStrategy: instead of BFGS's full
// n×n inverse-Hessian approximation, it reconstructs Hg on the fly from the
// last Store (s, y) pairs via the two-loop recursion (Nocedal & Wright,
// chapter 7). Cost is O(Store·n) instead of BFGS's O(n²). Store defaults
// to 10.
//
// A LineSearcher paired with LBFGS should enforce the strong Wolfe
// curvature condition (BisectionWolfe), since the two-loop recursion only
// produces a sound direction when s·y > 0 held at every stored pair.
type LBFGS struct {
	ladder
	Store int

	dim  int
	x    []float64
	grad []float64

	oldest int
	y      [][]float64
	s      [][]float64
	rho    []float64
	a      []float64

	haveState bool
}

func (l *LBFGS) Reset(n int) {
	l.ladder.setDefault()
	if l.Store == 0 {
		l.Store = defaultLBFGSStore
	}
	l.dim = n
	l.oldest = 0
	l.a = resize(l.a, l.Store)
	l.rho = resize(l.rho, l.Store)
	l.y = initHistory(l.y, l.Store, n)
	l.s = initHistory(l.s, l.Store, n)
	l.x = resize(l.x, n)
	l.grad = resize(l.grad, n)
	l.haveState = false
}

func initHistory(hist [][]float64, store, dim int) [][]float64 {
	c := cap(hist)
	if c < store {
		hist = append(hist[:c], make([][]float64, store-c)...)
	}
	hist = hist[:store]
	for i := range hist {
		hist[i] = resize(hist[i], dim)
		for j := range hist[i] {
			hist[i][j] = 0
		}
	}
	return hist
}

func (l *LBFGS) ComputeUpdateDirection(obj *objective, x, g, dir []float64) error {
	if l.atTerminal() {
		copy(dir, g)
		floats.Scale(-1, dir)
		return nil
	}

	if !l.haveState {
		copy(l.x, x)
		copy(l.grad, g)
		copy(dir, g)
		floats.Scale(-1, dir)
		l.haveState = true
		return nil
	}

	y := l.y[l.oldest]
	floats.SubTo(y, g, l.grad)
	s := l.s[l.oldest]
	floats.SubTo(s, x, l.x)
	sDotY := floats.Dot(s, y)
	if sDotY <= 0 {
		// Curvature condition failed for this pair; skip folding it into
		// the history (leave l.oldest where it is, overwrite it again
		// next call) and fall back to plain steepest descent this step.
		copy(l.x, x)
		copy(l.grad, g)
		copy(dir, g)
		floats.Scale(-1, dir)
		return nil
	}
	l.rho[l.oldest] = 1 / sDotY
	l.oldest = (l.oldest + 1) % l.Store

	copy(l.x, x)
	copy(l.grad, g)
	copy(dir, g)

	for i := 0; i < l.Store; i++ {
		idx := l.oldest - i - 1
		if idx < 0 {
			idx += l.Store
		}
		l.a[idx] = l.rho[idx] * floats.Dot(l.s[idx], dir)
		floats.AddScaled(dir, -l.a[idx], l.y[idx])
	}

	gamma := sDotY / floats.Dot(y, y)
	floats.Scale(gamma, dir)

	for i := 0; i < l.Store; i++ {
		idx := i + l.oldest
		if idx >= l.Store {
			idx -= l.Store
		}
		beta := l.rho[idx] * floats.Dot(l.y[idx], dir)
		floats.AddScaled(dir, l.a[idx]-beta, l.s[idx])
	}

	floats.Scale(-1, dir)
	return nil
}

func (l *LBFGS) IsDirectionDescent() bool { return true }

// IncreaseDescentStrategy advances the ladder and, because the rejected
// direction was built from the stored (s, y) pairs, clears that history via
// Reset so the retry starts again from steepest descent.
func (l *LBFGS) IncreaseDescentStrategy() {
	level := l.level
	l.Reset(l.dim)
	l.level = level
	l.ladder.increase()
}

func (l *LBFGS) SetDefaultDescentStrategy() { l.ladder.setDefault() }

func (l *LBFGS) Name() string { return "LBFGS" }

func (l *LBFGS) DescentStrategyName() string {
	if l.atTerminal() {
		return "GradientDescent"
	}
	return "LBFGS"
}
