// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

// Status reports why a call to Solver.Minimize terminated, or Continue if
// the optimization is still in progress.
type Status int

const (
	Continue Status = iota
	IterationLimit
	GradNormTolerance
	XDeltaTolerance
	FDeltaTolerance
	UserDefined
)

func (s Status) String() string {
	str, ok := statusNames[s]
	if !ok {
		return "Status(unknown)"
	}
	return str
}

var statusNames = map[Status]string{
	Continue:          "Continue",
	IterationLimit:    "IterationLimit",
	GradNormTolerance: "GradNormTolerance",
	XDeltaTolerance:   "XDeltaTolerance",
	FDeltaTolerance:   "FDeltaTolerance",
	UserDefined:       "UserDefined",
}

// ErrorCode classifies why Minimize returned a *SolveError. Success is the
// code recorded for every success exit, including a UserDefined status that
// is not actually a failure (the objective requested an early, successful
// stop); it is also the code of the fatal IterationLimit exit, whose Status
// alone explains it.
type ErrorCode int

const (
	Success ErrorCode = iota
	NaNEncountered
	LineSearchFailed
	NotDescentDirection
)

func (e ErrorCode) String() string {
	str, ok := errorCodeNames[e]
	if !ok {
		return "ErrorCode(unknown)"
	}
	return str
}

var errorCodeNames = map[ErrorCode]string{
	Success:             "Success",
	NaNEncountered:      "NaNEncountered",
	LineSearchFailed:    "LineSearchFailed",
	NotDescentDirection: "NotDescentDirection",
}

// Criteria is used both as a set of stopping thresholds (configured once,
// scaled by the characteristic length) and, reused, as the record of the
// current iterate's measured quantities. An unset current-iteration value
// is represented as NaN, which never compares ≤ against any threshold.
type Criteria struct {
	// Iterations is a nonnegative iteration counter, or, as a threshold,
	// the iteration cap.
	Iterations int
	// XDelta is ‖Δx‖ of the proposed direction, measured before the line
	// search scales it (NaN at the gradient-descent ladder level), or, as a
	// threshold, the convergence tolerance on it.
	XDelta float64
	// FDelta is |f_k - f_{k-1}|, or, as a threshold, its tolerance.
	FDelta float64
	// GradNorm is ‖g‖, or, as a threshold, its tolerance.
	GradNorm float64
	// Condition is an optional conditioning estimate. It is never compared
	// against by Check; it exists purely for reporting in Info.
	Condition float64
}
