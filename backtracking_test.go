// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "testing"

// constObjective reports a fixed value everywhere but a nonzero gradient,
// so no positive step can ever satisfy a sufficient-decrease condition.
type constObjective struct{ v float64 }

func (c constObjective) Value(x []float64) float64 { return c.v }
func (c constObjective) Gradient(x, g []float64) {
	for i := range g {
		g[i] = 1
	}
}

func TestBacktrackingAcceptsAStepThatDecreasesEnergy(t *testing.T) {
	b := &Backtracking{}
	obj := newObjective(quadraticND{})
	x := []float64{2}
	g := []float64{4}
	dir := []float64{-4}
	timing := &lineSearchTiming{}

	alpha, err := b.Search(obj, x, dir, g, 4, timing)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if alpha <= 0 || alpha > 1 {
		t.Errorf("alpha = %v, want in (0, 1]", alpha)
	}
	trial := x[0] + alpha*dir[0]
	if trial*trial >= 4 {
		t.Errorf("accepted step did not decrease energy: f(trial)=%v, f0=4", trial*trial)
	}
}

func TestBacktrackingFailsWhenNoDecreaseIsPossible(t *testing.T) {
	b := &Backtracking{MaxHalvings: 5}
	obj := newObjective(constObjective{v: 5})
	x := []float64{0}
	g := []float64{1}
	dir := []float64{-1}
	timing := &lineSearchTiming{}

	_, err := b.Search(obj, x, dir, g, 5, timing)
	if err != ErrLineSearchFailed {
		t.Errorf("err = %v, want ErrLineSearchFailed", err)
	}
	if timing.iterations != 5 {
		t.Errorf("timing.iterations = %d, want 5 (MaxHalvings)", timing.iterations)
	}
}

func TestBacktrackingUseGradNormTolRejectsUnreachableTarget(t *testing.T) {
	b := &Backtracking{UseGradNormTol: 1e-9, MaxHalvings: 3}
	obj := newObjective(quadraticND{})
	x := []float64{10}
	g := []float64{20}
	dir := []float64{-1}
	timing := &lineSearchTiming{}

	// ‖∇f‖ stays near 18-20 across 3 halvings of a unit-length direction,
	// far above the 1e-9 target, so the search must exhaust its budget.
	_, err := b.Search(obj, x, dir, g, 100, timing)
	if err != ErrLineSearchFailed {
		t.Errorf("err = %v, want ErrLineSearchFailed", err)
	}
}

func TestBacktrackingName(t *testing.T) {
	b := &Backtracking{}
	if b.Name() != "Armijo" {
		t.Errorf("Name() = %q, want Armijo", b.Name())
	}
}
