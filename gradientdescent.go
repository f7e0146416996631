// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import "gonum.org/v1/gonum/floats"

// GradientDescent is the simplest DescentStrategy: Δx = -g, always. It is
// permanently at the terminal ladder level, the fallback every other
// strategy's ladder converges to. The step length is entirely the line
// search's responsibility.
type GradientDescent struct{}

func (GradientDescent) Reset(int) {}

func (GradientDescent) ComputeUpdateDirection(obj *objective, x, g, dir []float64) error {
	copy(dir, g)
	floats.Scale(-1, dir)
	return nil
}

func (GradientDescent) IsDirectionDescent() bool { return true }

func (GradientDescent) IncreaseDescentStrategy()   {}
func (GradientDescent) SetDefaultDescentStrategy() {}

func (GradientDescent) Level() int { return levelGradientDescent }

func (GradientDescent) Name() string { return "GradientDescent" }

func (GradientDescent) DescentStrategyName() string { return "GradientDescent" }
