// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "time"

// Info is the structured statistics record accumulated across a Minimize
// call and queryable afterward via (*Solver).Info.
type Info struct {
	Status    Status
	ErrorCode ErrorCode

	Energy     float64
	Iterations int
	XDelta     float64
	FDelta     float64
	GradNorm   float64
	Condition  float64

	LineSearch string

	TotalTime time.Duration

	// Per-iteration-averaged timings, divided by max(Iterations, 1).
	// TimeClassicalLineSearch excludes TimeLineSearchConstraintSetUpdate
	// to avoid double counting.
	TimeGrad                          time.Duration
	TimeAssembly                      time.Duration
	TimeInverting                     time.Duration
	TimeLineSearch                    time.Duration
	TimeConstraintSetUpdate           time.Duration
	TimeObjFun                        time.Duration
	TimeCheckingForNanInf             time.Duration
	TimeBroadPhaseCCD                 time.Duration
	TimeCCD                           time.Duration
	TimeClassicalLineSearch           time.Duration
	TimeLineSearchConstraintSetUpdate time.Duration
	LineSearchIterations              float64
}

// infoAccumulator holds raw (un-averaged) sums across the life of a
// Minimize call; Info is produced from it by dividing by max(iterations, 1)
// at query time.
//
// TimeBroadPhaseCCD and TimeCCD have no corresponding computation here
// (continuous collision detection belongs to a constrained-contact
// extension); they are carried as always-zero fields so Info's key set
// stays stable for consumers that expect them.
type infoAccumulator struct {
	status    Status
	errorCode ErrorCode

	energy     float64
	iterations int
	xDelta     float64
	fDelta     float64
	gradNorm   float64
	condition  float64

	lineSearchName string

	start time.Time
	total time.Duration

	sumGrad                    time.Duration
	sumAssembly                time.Duration
	sumInverting               time.Duration
	sumLineSearch              time.Duration
	sumConstraintSetUpdate     time.Duration
	sumObjFun                  time.Duration
	sumCheckingForNanInf       time.Duration
	sumClassicalLineSearch     time.Duration
	sumLineSearchConstraintSet time.Duration
	sumLineSearchIterations    int
}

func (a *infoAccumulator) reset() {
	*a = infoAccumulator{start: time.Now()}
}

func (a *infoAccumulator) snapshot() Info {
	n := a.iterations
	div := n
	if div < 1 {
		div = 1
	}
	fdiv := float64(div)
	return Info{
		Status:     a.status,
		ErrorCode:  a.errorCode,
		Energy:     a.energy,
		Iterations: a.iterations,
		XDelta:     a.xDelta,
		FDelta:     a.fDelta,
		GradNorm:   a.gradNorm,
		Condition:  a.condition,
		LineSearch: a.lineSearchName,
		TotalTime:  a.total,

		TimeGrad:                          a.sumGrad / time.Duration(div),
		TimeAssembly:                      a.sumAssembly / time.Duration(div),
		TimeInverting:                     a.sumInverting / time.Duration(div),
		TimeLineSearch:                    a.sumLineSearch / time.Duration(div),
		TimeConstraintSetUpdate:           a.sumConstraintSetUpdate / time.Duration(div),
		TimeObjFun:                        a.sumObjFun / time.Duration(div),
		TimeCheckingForNanInf:             a.sumCheckingForNanInf / time.Duration(div),
		TimeClassicalLineSearch:           a.sumClassicalLineSearch / time.Duration(div),
		TimeLineSearchConstraintSetUpdate: a.sumLineSearchConstraintSet / time.Duration(div),
		LineSearchIterations:              float64(a.sumLineSearchIterations) / fdiv,
	}
}
