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
	defaultBacktrackingDecrease    = 0.5
	defaultBacktrackingFunConst    = 1e-4
	defaultBacktrackingInitialStep = 1.0
	defaultBacktrackingMaxHalvings = 50
)

// Backtracking implements an Armijo (sufficient-decrease) backtracking line
// search: starting from InitialStep, it shrinks the step by Decrease while
// either f(x+αΔx) is non-finite or the Armijo condition fails, giving up
// after MaxHalvings.
//
// Before each trial evaluation, obj.SolutionChanged(x+αΔx) is invoked so
// the objective can refresh constraint-dependent state; the time spent in
// that hook is tracked separately from the rest of the search so it can be
// excluded from the classical-line-search bucket.
type Backtracking struct {
	FunConst    float64 // Armijo constant c; default 1e-4.
	Decrease    float64 // step multiplier per halving; default 0.5.
	InitialStep float64 // starting step; default 1.
	MaxHalvings int     // halving cap before giving up; default 50.

	// UseGradNormTol, if nonzero, additionally requires
	// ‖∇f(x+αΔx)‖ < UseGradNormTol for α to be accepted. It is wired from
	// Config.LineSearch.UseGradNormTol, already scaled by the
	// characteristic length.
	UseGradNormTol float64

	xTrial []float64
	gTrial []float64
}

func (b *Backtracking) Search(obj *objective, x, dir, g []float64, f0 float64, timing *lineSearchTiming) (float64, error) {
	decrease := b.Decrease
	if decrease == 0 {
		decrease = defaultBacktrackingDecrease
	}
	funConst := b.FunConst
	if funConst == 0 {
		funConst = defaultBacktrackingFunConst
	}
	step := b.InitialStep
	if step == 0 {
		step = defaultBacktrackingInitialStep
	}
	maxHalvings := b.MaxHalvings
	if maxHalvings == 0 {
		maxHalvings = defaultBacktrackingMaxHalvings
	}

	initGrad := floats.Dot(g, dir)

	b.xTrial = resize(b.xTrial, len(x))
	classicalStart := time.Now()
	var constraintTime time.Duration

	for i := 0; i < maxHalvings; i++ {
		floats.AddScaledTo(b.xTrial, x, step, dir)

		cuStart := time.Now()
		obj.solutionChanged(b.xTrial)
		cuDur := time.Since(cuStart)
		constraintTime += cuDur
		timing.addConstraintSetUpdate(cuDur)

		nfStart := time.Now()
		fTrial := obj.value(b.xTrial)
		finite := !math.IsNaN(fTrial) && !math.IsInf(fTrial, 0)
		timing.addCheckNonfinite(time.Since(nfStart))

		if finite && armijoConditionMet(fTrial, f0, initGrad, step, funConst) {
			if b.UseGradNormTol > 0 {
				if !obj.hasGrad {
					timing.iterations += i + 1
					timing.addClassical(time.Since(classicalStart), constraintTime)
					return step, nil
				}
				b.gTrial = resize(b.gTrial, len(x))
				obj.gradient(b.xTrial, b.gTrial)
				if floats.Norm(b.gTrial, 2) >= b.UseGradNormTol {
					step *= decrease
					continue
				}
			}
			timing.iterations += i + 1
			timing.addClassical(time.Since(classicalStart), constraintTime)
			return step, nil
		}
		step *= decrease
	}

	timing.iterations += maxHalvings
	timing.addClassical(time.Since(classicalStart), constraintTime)
	return math.NaN(), ErrLineSearchFailed
}

func (b *Backtracking) Name() string { return "Armijo" }

// armijoConditionMet reports whether the sufficient-decrease (Armijo)
// condition holds: f(x+αΔx) ≤ f(x) + c·α·∇f(x)·Δx.
func armijoConditionMet(trialF, initF, initGrad, step, funConst float64) bool {
	return trialF <= initF+funConst*step*initGrad
}
