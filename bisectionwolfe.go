// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

const (
	defaultWolfeFunConst      = 1e-4
	defaultWolfeGradConst     = 0.9
	defaultWolfeInitialStep   = 1.0
	defaultWolfeMaxIterations = 50
)

// BisectionWolfe brackets and bisects toward a step satisfying the strong
// Wolfe conditions: sufficient decrease plus a curvature condition on the
// projected gradient.
//
// LBFGS's two-loop recursion only produces a usable next direction when the
// curvature condition s·y > 0 holds; a pure Armijo search cannot guarantee
// that, so BisectionWolfe is the line search an LBFGS configuration should
// be paired with.
type BisectionWolfe struct {
	FunConst      float64 // c1 in the sufficient-decrease test; default 1e-4.
	GradConst     float64 // c2 in the curvature test; default 0.9.
	InitialStep   float64 // starting step; default 1.
	MaxIterations int     // bracket/bisect cap; default 50.

	// UseGradNormTol, if nonzero, additionally requires
	// ‖∇f(x+αΔx)‖ < UseGradNormTol for α to be accepted.
	UseGradNormTol float64

	xTrial []float64
	gTrial []float64
}

func (w *BisectionWolfe) Search(obj *objective, x, dir, g []float64, f0 float64, timing *lineSearchTiming) (float64, error) {
	if !obj.hasGrad {
		return math.NaN(), ErrLineSearchFailed
	}

	funConst := w.FunConst
	if funConst == 0 {
		funConst = defaultWolfeFunConst
	}
	gradConst := w.GradConst
	if gradConst == 0 {
		gradConst = defaultWolfeGradConst
	}
	step := w.InitialStep
	if step == 0 {
		step = defaultWolfeInitialStep
	}
	maxIter := w.MaxIterations
	if maxIter == 0 {
		maxIter = defaultWolfeMaxIterations
	}

	initGrad := floats.Dot(g, dir)
	if initGrad >= 0 {
		return math.NaN(), ErrLineSearchFailed
	}

	lo, hi := 0.0, math.Inf(1)
	w.xTrial = resize(w.xTrial, len(x))
	w.gTrial = resize(w.gTrial, len(x))

	classicalStart := time.Now()
	var constraintTime time.Duration

	for i := 0; i < maxIter; i++ {
		floats.AddScaledTo(w.xTrial, x, step, dir)

		cuStart := time.Now()
		obj.solutionChanged(w.xTrial)
		cuDur := time.Since(cuStart)
		constraintTime += cuDur
		timing.addConstraintSetUpdate(cuDur)

		nfStart := time.Now()
		fTrial := obj.value(w.xTrial)
		finite := !math.IsNaN(fTrial) && !math.IsInf(fTrial, 0)
		timing.addCheckNonfinite(time.Since(nfStart))

		if !finite || !armijoConditionMet(fTrial, f0, initGrad, step, funConst) {
			hi = step
			step = 0.5 * (lo + hi)
			continue
		}

		obj.gradient(w.xTrial, w.gTrial)
		trialGrad := floats.Dot(w.gTrial, dir)

		if !strongWolfeConditionsMet(fTrial, trialGrad, f0, initGrad, step, funConst, gradConst) {
			if trialGrad < 0 {
				lo = step
				if math.IsInf(hi, 1) {
					step *= 2
				} else {
					step = 0.5 * (lo + hi)
				}
			} else {
				hi = step
				step = 0.5 * (lo + hi)
			}
			continue
		}

		if w.UseGradNormTol > 0 && floats.Norm(w.gTrial, 2) >= w.UseGradNormTol {
			hi = step
			step = 0.5 * (lo + hi)
			continue
		}

		timing.iterations += i + 1
		timing.addClassical(time.Since(classicalStart), constraintTime)
		return step, nil
	}

	timing.iterations += maxIter
	timing.addClassical(time.Since(classicalStart), constraintTime)
	return math.NaN(), ErrLineSearchFailed
}

func (w *BisectionWolfe) Name() string { return "BisectionWolfe" }

// strongWolfeConditionsMet reports whether the strong Wolfe conditions hold:
// sufficient decrease plus |∇f(x+αΔx)·Δx| ≤ c2|∇f(x)·Δx|.
func strongWolfeConditionsMet(trialF, trialGrad, initF, initGrad, step, funConst, gradConst float64) bool {
	if !armijoConditionMet(trialF, initF, initGrad, step, funConst) {
		return false
	}
	return math.Abs(trialGrad) <= gradConst*math.Abs(initGrad)
}
