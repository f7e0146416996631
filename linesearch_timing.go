// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "time"

// lineSearchTiming accumulates the timing buckets every line search
// reports: time spent checking for non-finite values, time spent letting
// the objective refresh constraint-dependent state, and the total time
// spent in the classical (sufficient-decrease) search loop, which excludes
// the constraint-set-update time to avoid double counting. The struct is
// reused across calls and reset at the start of every Minimize call.
type lineSearchTiming struct {
	checkNonfinite      time.Duration
	constraintSetUpdate time.Duration
	classical           time.Duration
	iterations          int
}

func (t *lineSearchTiming) reset() {
	*t = lineSearchTiming{}
}

func (t *lineSearchTiming) addCheckNonfinite(d time.Duration)      { t.checkNonfinite += d }
func (t *lineSearchTiming) addConstraintSetUpdate(d time.Duration) { t.constraintSetUpdate += d }

// addClassical records time spent in the search loop outside of
// constraint-set updates.
func (t *lineSearchTiming) addClassical(total, constraintSetUpdate time.Duration) {
	t.classical += total - constraintSetUpdate
}
