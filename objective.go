// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "gonum.org/v1/gonum/mat"

// objective wraps a user-supplied Function, type-asserting the optional
// capabilities once so the hot loop never repeats a type switch. The
// capability set is computed at the start of Minimize and consulted for
// the life of the call.
type objective struct {
	fn Function

	grad       Gradient
	hasGrad    bool
	hess       Hessian
	hasHess    bool
	solChanged SolutionChanger
	hasSolChg  bool
	stopper    Stopper
	hasStop    bool
	postStep   PostStepper
	hasPost    bool
	checkpoint Checkpointer
	hasCheck   bool
	callback   Callbacker
	hasCall    bool
}

func newObjective(fn Function) *objective {
	o := &objective{fn: fn}
	o.grad, o.hasGrad = fn.(Gradient)
	o.hess, o.hasHess = fn.(Hessian)
	o.solChanged, o.hasSolChg = fn.(SolutionChanger)
	o.stopper, o.hasStop = fn.(Stopper)
	o.postStep, o.hasPost = fn.(PostStepper)
	o.checkpoint, o.hasCheck = fn.(Checkpointer)
	o.callback, o.hasCall = fn.(Callbacker)
	return o
}

func (o *objective) value(x []float64) float64 { return o.fn.Value(x) }

func (o *objective) gradient(x, g []float64) {
	o.grad.Gradient(x, g)
}

func (o *objective) hessian(x []float64, hess *mat.SymDense) {
	o.hess.Hessian(x, hess)
}

func (o *objective) solutionChanged(x []float64) {
	if o.hasSolChg {
		o.solChanged.SolutionChanged(x)
	}
}

func (o *objective) stop(x []float64) bool {
	if o.hasStop {
		return o.stopper.Stop(x)
	}
	return false
}

func (o *objective) postStepHook(iter int, x []float64) {
	if o.hasPost {
		o.postStep.PostStep(iter, x)
	}
}

func (o *objective) saveToFile(x []float64) {
	if o.hasCheck {
		o.checkpoint.SaveToFile(x)
	}
}

func (o *objective) runCallback(current Criteria, x []float64) bool {
	if o.hasCall {
		return o.callback.Callback(current, x)
	}
	return true
}
