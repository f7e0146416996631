// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

// Check reports the terminal Status implied by comparing the receiver
// (the current iterate's measured quantities) against stop (the configured
// thresholds). The order of the checks matters: an iteration limit is
// reported before any tolerance, and fDelta before xDelta before gradNorm.
//
// A current field that was not set this iteration is NaN, and a NaN never
// compares ≤ a threshold, so unset fields are silently skipped.
func (current Criteria) Check(stop Criteria) Status {
	if current.Iterations >= stop.Iterations {
		return IterationLimit
	}
	if current.FDelta <= stop.FDelta {
		return FDeltaTolerance
	}
	if current.XDelta <= stop.XDelta {
		return XDeltaTolerance
	}
	if current.GradNorm <= stop.GradNorm {
		return GradNormTolerance
	}
	return Continue
}
