// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStrategyKind(t *testing.T) {
	cases := []struct {
		in   string
		want StrategyKind
	}{
		{"BFGS", StrategyBFGS},
		{"DenseNewton", StrategyDenseNewton},
		{"dense_newton", StrategyDenseNewton},
		{"SparseNewton", StrategySparseNewton},
		{"Newton", StrategySparseNewton},
		{"sparse_newton", StrategySparseNewton},
		{"GradientDescent", StrategyGradientDescent},
		{"gradient_descent", StrategyGradientDescent},
		{"LBFGS", StrategyLBFGS},
		{"L-BFGS", StrategyLBFGS},
	}
	for _, c := range cases {
		got, err := ParseStrategyKind(c.in)
		if err != nil {
			t.Errorf("ParseStrategyKind(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseStrategyKind(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseStrategyKind("nonsense"); err == nil {
		t.Error("ParseStrategyKind(\"nonsense\") should error")
	}
}

func TestConfigValidate(t *testing.T) {
	base := Config{Solver: StrategyBFGS, MaxIterations: 100}
	if err := base.Validate(); err != nil {
		t.Errorf("base config should validate, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(c Config) Config
	}{
		{"unknown solver", func(c Config) Config { c.Solver = "nope"; return c }},
		{"negative xDelta", func(c Config) Config { c.XDelta = -1; return c }},
		{"negative fDelta", func(c Config) Config { c.FDelta = -1; return c }},
		{"negative gradNorm", func(c Config) Config { c.GradNorm = -1; return c }},
		{"zero max iterations", func(c Config) Config { c.MaxIterations = 0; return c }},
		{"negative first grad norm tol", func(c Config) Config { c.FirstGradNormTol = -1; return c }},
		{"negative condition", func(c Config) Config { c.Condition = -1; return c }},
		{"negative line search grad tol", func(c Config) Config { c.LineSearch.UseGradNormTol = -1; return c }},
		{"unknown line search method", func(c Config) Config { c.LineSearch.Method = "nope"; return c }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.mut(base).Validate(); err == nil {
				t.Errorf("expected Validate() error for %s", c.name)
			}
		})
	}
}

func TestConfigScaled(t *testing.T) {
	cfg := Config{
		Solver:        StrategyBFGS,
		XDelta:        1e-3,
		FDelta:        1e-4,
		GradNorm:      1e-5,
		MaxIterations: 50,
		Condition:     1e8,
	}
	const charLen = 2.5
	got := cfg.Scaled(charLen)
	want := Criteria{
		Iterations: 50,
		XDelta:     1e-3 * charLen,
		FDelta:     1e-4 * charLen,
		GradNorm:   1e-5 * charLen,
		Condition:  1e8, // reporting-only, never scaled
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected Scaled() result (-want +got):\n%s", diff)
	}

	// Threshold scaling must be exact multiplication, not some other
	// normalization.
	if got.XDelta != cfg.XDelta*charLen {
		t.Errorf("XDelta scaling not exact: got %v want %v", got.XDelta, cfg.XDelta*charLen)
	}
}
