// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polysolve implements the core of a nonlinear unconstrained
// optimization engine. A Solver repeatedly chooses a descent direction for
// a twice-differentiable objective via a pluggable DescentStrategy (BFGS,
// L-BFGS, dense or sparse Newton, gradient descent), scales it with a
// pluggable LineSearcher, and applies convergence and safeguarding logic
// until one of a handful of stopping criteria is met.
//
// Parsing of configuration documents, dispatch-by-name construction of
// concrete strategies, and the objective function itself are external
// concerns; polysolve consumes already-constructed values for all three.
package polysolve
