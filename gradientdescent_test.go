// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestGradientDescentDirectionIsNegativeGradient(t *testing.T) {
	var gd GradientDescent
	g := []float64{1, -2, 3}
	dir := make([]float64, 3)
	if err := gd.ComputeUpdateDirection(newObjective(quadraticND{}), []float64{0, 0, 0}, g, dir); err != nil {
		t.Fatalf("ComputeUpdateDirection: %v", err)
	}
	want := []float64{-1, 2, -3}
	if !floats.Equal(dir, want) {
		t.Errorf("dir = %v, want %v", dir, want)
	}
}

func TestGradientDescentIsAlwaysAtTerminalLevel(t *testing.T) {
	var gd GradientDescent
	if gd.Level() != levelGradientDescent {
		t.Errorf("Level() = %d, want %d", gd.Level(), levelGradientDescent)
	}
	gd.IncreaseDescentStrategy() // must be a no-op
	if gd.Level() != levelGradientDescent {
		t.Errorf("Level() after IncreaseDescentStrategy = %d, want unchanged %d", gd.Level(), levelGradientDescent)
	}
	if !gd.IsDirectionDescent() {
		t.Error("IsDirectionDescent() should always be true")
	}
}
