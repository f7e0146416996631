// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"errors"
	"fmt"
)

// ErrZeroDimensional signifies Minimize was called with an input of length 0.
var ErrZeroDimensional = errors.New("polysolve: zero dimensional input")

// ErrMissingHessian signifies a Hessian-based strategy was configured for an
// objective that does not implement Hessian.
var ErrMissingHessian = errors.New("polysolve: objective does not implement Hessian")

// ErrMissingGradient signifies Minimize was called with an objective that
// does not implement Gradient, which every DescentStrategy requires.
var ErrMissingGradient = errors.New("polysolve: objective does not implement Gradient")

// ErrNaN signifies a non-finite function value or gradient was encountered.
var ErrNaN = errors.New("polysolve: non-finite function value or gradient")

// ErrLineSearchFailed signifies the line search could not find a step that
// satisfies its acceptance criteria. A LineSearcher returns it on every such
// failure; Minimize returns it, inside a *SolveError, only once the fallback
// ladder is exhausted.
var ErrLineSearchFailed = errors.New("polysolve: line search failed and the fallback ladder is exhausted")

// ErrNotDescentDirection signifies a descent strategy, even at its terminal
// gradient-descent fallback level, produced a direction that is not a
// descent direction (or is NaN), with the fallback ladder exhausted.
var ErrNotDescentDirection = errors.New("polysolve: not a descent direction and the fallback ladder is exhausted")

// ErrIterationLimit signifies Minimize exhausted Config.MaxIterations with
// AllowOutOfIterations unset.
var ErrIterationLimit = errors.New("polysolve: iteration limit reached")

// SolveError is returned by Minimize on fatal termination. It carries both
// the terminal Status and the ErrorCode that explains it, in addition to
// an underlying error for Unwrap.
type SolveError struct {
	Status Status
	Code   ErrorCode
	Err    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("polysolve: minimize failed (status=%v, code=%v): %v", e.Status, e.Code, e.Err)
}

func (e *SolveError) Unwrap() error { return e.Err }
