// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"testing"
	"time"
)

func TestInfoAccumulatorSnapshotDividesByIterations(t *testing.T) {
	var a infoAccumulator
	a.reset()
	a.iterations = 4
	a.sumGrad = 400 * time.Millisecond
	a.sumInverting = 40 * time.Millisecond
	a.sumLineSearchIterations = 8

	info := a.snapshot()
	if info.Iterations != 4 {
		t.Errorf("Iterations = %d, want 4", info.Iterations)
	}
	if info.TimeGrad != 100*time.Millisecond {
		t.Errorf("TimeGrad = %v, want 100ms", info.TimeGrad)
	}
	if info.TimeInverting != 10*time.Millisecond {
		t.Errorf("TimeInverting = %v, want 10ms", info.TimeInverting)
	}
	if info.LineSearchIterations != 2 {
		t.Errorf("LineSearchIterations = %v, want 2", info.LineSearchIterations)
	}
}

func TestInfoAccumulatorSnapshotAtZeroIterationsDividesByOne(t *testing.T) {
	var a infoAccumulator
	a.reset()
	a.sumGrad = 5 * time.Millisecond

	info := a.snapshot()
	if info.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0", info.Iterations)
	}
	if info.TimeGrad != 5*time.Millisecond {
		t.Errorf("TimeGrad = %v, want 5ms (divide by max(0,1)=1)", info.TimeGrad)
	}
}

func TestInfoAccumulatorResetClearsSums(t *testing.T) {
	var a infoAccumulator
	a.iterations = 7
	a.sumGrad = time.Second
	a.reset()
	if a.iterations != 0 || a.sumGrad != 0 {
		t.Errorf("reset left stale state: iterations=%d sumGrad=%v", a.iterations, a.sumGrad)
	}
}
