// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// NoLineSearch always takes a fixed step. Step defaults to 1 if zero. The
// trial point must still evaluate to a finite value for the step to be
// accepted.
type NoLineSearch struct {
	Step float64

	x []float64
}

func (n *NoLineSearch) Search(obj *objective, x, dir, g []float64, f0 float64, timing *lineSearchTiming) (float64, error) {
	step := n.Step
	if step == 0 {
		step = 1
	}

	start := time.Now()
	n.x = resize(n.x, len(x))
	floats.AddScaledTo(n.x, x, step, dir)
	cuStart := time.Now()
	obj.solutionChanged(n.x)
	cuDur := time.Since(cuStart)
	timing.addConstraintSetUpdate(cuDur)
	nfStart := time.Now()
	f := obj.value(n.x)
	timing.addCheckNonfinite(time.Since(nfStart))
	timing.addClassical(time.Since(start), cuDur)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN(), ErrLineSearchFailed
	}
	return step, nil
}

func (n *NoLineSearch) Name() string { return "None" }
