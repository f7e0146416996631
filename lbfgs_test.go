// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestLBFGSResetDefaultsStore(t *testing.T) {
	l := &LBFGS{}
	l.Reset(3)
	if l.Store != defaultLBFGSStore {
		t.Errorf("Store = %d, want default %d", l.Store, defaultLBFGSStore)
	}
	if len(l.s) != defaultLBFGSStore || len(l.y) != defaultLBFGSStore {
		t.Errorf("history length = %d/%d, want %d", len(l.s), len(l.y), defaultLBFGSStore)
	}
}

func TestLBFGSFirstStepIsSteepestDescent(t *testing.T) {
	l := &LBFGS{Store: 4}
	l.Reset(2)
	g := []float64{1, -2}
	dir := make([]float64, 2)
	if err := l.ComputeUpdateDirection(newObjective(quadraticND{}), []float64{5, 5}, g, dir); err != nil {
		t.Fatalf("ComputeUpdateDirection: %v", err)
	}
	want := []float64{-1, 2}
	if !floats.Equal(dir, want) {
		t.Errorf("first dir = %v, want %v", dir, want)
	}
}

func TestLBFGSSubsequentStepStaysDescent(t *testing.T) {
	l := &LBFGS{Store: 4}
	l.Reset(1)
	obj := newObjective(quadraticND{})
	dir := make([]float64, 1)

	if err := l.ComputeUpdateDirection(obj, []float64{4}, []float64{8}, dir); err != nil {
		t.Fatalf("first ComputeUpdateDirection: %v", err)
	}
	if err := l.ComputeUpdateDirection(obj, []float64{2}, []float64{4}, dir); err != nil {
		t.Fatalf("second ComputeUpdateDirection: %v", err)
	}
	if dir[0]*4 >= 0 {
		t.Errorf("second direction is not a descent direction relative to g=4: dir=%v", dir)
	}
}

func TestLBFGSTerminalLevelIsPlainGradientDescent(t *testing.T) {
	l := &LBFGS{}
	l.Reset(2)
	l.increase()
	l.increase()

	g := []float64{2, -5}
	dir := make([]float64, 2)
	if err := l.ComputeUpdateDirection(newObjective(quadraticND{}), []float64{0, 0}, g, dir); err != nil {
		t.Fatalf("ComputeUpdateDirection: %v", err)
	}
	want := []float64{-2, 5}
	if !floats.Equal(dir, want) {
		t.Errorf("dir = %v, want %v", dir, want)
	}
	if got := l.DescentStrategyName(); got != "GradientDescent" {
		t.Errorf("DescentStrategyName() = %q, want GradientDescent", got)
	}
}
