// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Solver iteratively minimizes a twice-differentiable objective: it
// repeatedly asks a DescentStrategy for a direction, scales it with a
// LineSearcher, and applies Criteria-based convergence and fallback-ladder
// safeguarding.
//
// A Solver is not safe for concurrent Minimize calls on the same instance.
type Solver struct {
	cfg     Config
	linCfg  LinearSolverConfig
	charLen float64
	logger  Logger

	strategy DescentStrategy
	search   LineSearcher

	stopCriteria Criteria

	g   []float64
	dir []float64

	info infoAccumulator
}

// NewSolver validates cfg and constructs the DescentStrategy and
// LineSearcher it names, wiring linCfg into the Newton variants and
// characteristicLength into every scaled tolerance. An invalid
// configuration causes construction to fail with a diagnostic.
func NewSolver(cfg Config, linCfg LinearSolverConfig, characteristicLength float64, logger Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if characteristicLength <= 0 {
		return nil, fmt.Errorf("polysolve: characteristic length must be positive")
	}
	if logger == nil {
		logger = NopLogger{}
	}

	kind, err := ParseStrategyKind(string(cfg.Solver))
	if err != nil {
		return nil, err
	}

	strategy, err := newDescentStrategy(kind, cfg, linCfg)
	if err != nil {
		return nil, err
	}

	search := newLineSearcher(cfg.LineSearch, characteristicLength)

	return &Solver{
		cfg:          cfg,
		linCfg:       linCfg,
		charLen:      characteristicLength,
		logger:       logger,
		strategy:     strategy,
		search:       search,
		stopCriteria: cfg.Scaled(characteristicLength),
	}, nil
}

func newDescentStrategy(kind StrategyKind, cfg Config, linCfg LinearSolverConfig) (DescentStrategy, error) {
	switch kind {
	case StrategyBFGS:
		return &BFGS{}, nil
	case StrategyLBFGS:
		return &LBFGS{Store: cfg.HistorySize}, nil
	case StrategyDenseNewton:
		return &DenseNewton{
			Increase:                  linCfg.Increase,
			MaxRegularizationAttempts: linCfg.MaxRegularizationAttempts,
		}, nil
	case StrategySparseNewton:
		return &SparseNewton{
			Increase:                  linCfg.Increase,
			MaxRegularizationAttempts: linCfg.MaxRegularizationAttempts,
			Tolerance:                 linCfg.Tolerance,
			MaxIterations:             linCfg.MaxIterations,
		}, nil
	case StrategyGradientDescent:
		return GradientDescent{}, nil
	default:
		// Unreachable: ParseStrategyKind already validated kind.
		return nil, fmt.Errorf("polysolve: unrecognized solver %q", kind)
	}
}

func newLineSearcher(cfg LineSearchConfig, characteristicLength float64) LineSearcher {
	tol := cfg.UseGradNormTol * characteristicLength
	switch cfg.Method {
	case "None":
		return &NoLineSearch{}
	case "BisectionWolfe":
		return &BisectionWolfe{UseGradNormTol: tol}
	case "", "Armijo":
		return &Backtracking{UseGradNormTol: tol}
	default:
		// Config.Validate already rejects unrecognized methods, so this
		// branch is unreachable for a Solver constructed via NewSolver.
		return &Backtracking{UseGradNormTol: tol}
	}
}

// Info returns the statistics record for the most recently completed
// Minimize call.
func (s *Solver) Info() Info { return s.info.snapshot() }

// Minimize mutates x in place toward a minimizer of fn. It returns nil on
// every success exit (a *Tolerance status, an objective-requested stop, a
// callback-requested stop, or an allowed iteration-limit exit) and a
// non-nil error, usually a *SolveError, on every fatal one.
//
// All internal state is reset at the start of the call, so the same Solver
// may be reused across successive calls as long as they do not overlap.
func (s *Solver) Minimize(fn Function, x []float64) error {
	dim := len(x)
	if dim == 0 {
		return ErrZeroDimensional
	}

	obj := newObjective(fn)
	if !obj.hasGrad {
		return ErrMissingGradient
	}

	s.info.reset()
	s.strategy.Reset(dim)
	s.g = resize(s.g, dim)
	s.dir = resize(s.dir, dim)
	s.info.lineSearchName = s.search.Name()

	var lsTiming lineSearchTiming

	obj.solutionChanged(x)

	var current Criteria
	fPrev := math.NaN()

	for {
		// Step 1: clear the per-iteration measured quantities.
		current.XDelta = math.NaN()
		current.FDelta = math.NaN()
		current.GradNorm = math.NaN()

		// Step 2: energy.
		t0 := time.Now()
		f := obj.value(x)
		s.info.sumObjFun += time.Since(t0)
		if !finite(f) {
			return s.fail(&current, math.NaN(), UserDefined, NaNEncountered, ErrNaN)
		}

		// Step 3: fDelta against the previous committed energy. fPrev is
		// overwritten here even when a non-descent retry below rejects
		// this attempt, so the next attempt's fDelta is computed against
		// this same energy and comes out 0. Harmless as long as the
		// fDelta stop threshold is positive; do not "fix" by deferring
		// the assignment.
		if !math.IsNaN(fPrev) {
			current.FDelta = math.Abs(fPrev - f)
		}
		fPrev = f

		// Step 4.
		effectiveStop := s.stopCriteria
		if current.Iterations == 0 {
			effectiveStop.GradNorm = s.cfg.scaledFirstGradNormTol(s.charLen)
		}
		if status := current.Check(effectiveStop); status != Continue {
			return s.succeed(&current, f, status)
		}

		// Step 5: gradient.
		t0 = time.Now()
		obj.gradient(x, s.g)
		s.info.sumGrad += time.Since(t0)
		gnorm := floats.Norm(s.g, 2)
		if !finite(gnorm) {
			return s.fail(&current, f, UserDefined, NaNEncountered, ErrNaN)
		}

		// Step 6.
		current.GradNorm = gnorm
		if status := current.Check(effectiveStop); status != Continue {
			return s.succeed(&current, f, status)
		}

		committed, status, err := s.attemptIteration(obj, x, f, gnorm, &current, effectiveStop, &lsTiming)
		if err != nil {
			return err
		}
		if !committed {
			// Step 10's criteria check exited before a line search was
			// even attempted; every other non-commit path inside
			// attemptIteration returns a non-nil err instead.
			return s.succeed(&current, f, status)
		}

		// Step 14.
		if obj.stop(x) {
			return s.succeed(&current, f, UserDefined)
		}

		// Step 15.
		obj.postStepHook(current.Iterations, x)
		obj.saveToFile(x)

		// Step 16.
		current.Iterations++
		limitHit := current.Iterations >= s.stopCriteria.Iterations

		// Step 17: restore the non-first grad norm tolerance; nothing to
		// do here since effectiveStop was a local copy and the next loop
		// iteration recomputes it from s.stopCriteria when iter != 0.

		// Step 18. A callback stop is advisory, never an error, even when
		// the iteration limit was reached on the same commit.
		if !obj.runCallback(current, x) {
			status := Continue
			if limitHit {
				status = IterationLimit
			}
			return s.succeed(&current, f, status)
		}

		if limitHit {
			if !s.cfg.AllowOutOfIterations {
				return s.fail(&current, f, IterationLimit, Success, ErrIterationLimit)
			}
			return s.succeed(&current, f, IterationLimit)
		}
	}
}

// attemptIteration runs steps 7 through 13 of an iteration: it repeatedly
// asks the strategy for a direction, validates it, and line-searches, retrying
// within the same iteration attempt (without touching current.Iterations or
// f_prev) on any recoverable failure, and falling further down the
// strategy's fallback ladder each time. committed is true once x has been
// updated. When committed is false, a non-nil error is fatal, and a nil
// error means step 10's criteria check ended the solve with the returned
// status.
func (s *Solver) attemptIteration(obj *objective, x []float64, f, gnorm float64, current *Criteria, effectiveStop Criteria, lsTiming *lineSearchTiming) (committed bool, status Status, err error) {
	for {
		// Step 7. DescentStrategy exposes no finer-grained timing than
		// the whole call, so the entire direction computation (Hessian
		// assembly and linear solve alike, for the Newton variants) is
		// charged to TimeInverting; TimeAssembly stays 0 for every
		// strategy.
		t0 := time.Now()
		computeErr := s.strategy.ComputeUpdateDirection(obj, x, s.g, s.dir)
		s.info.sumInverting += time.Since(t0)
		if computeErr != nil {
			return false, Continue, computeErr
		}

		// Step 8: descent-direction validation.
		if s.strategy.IsDirectionDescent() && gnorm != 0 {
			if floats.Dot(s.dir, s.g) >= 0 {
				if s.strategy.Level() >= levelGradientDescent {
					return false, Continue, s.fail(current, f, UserDefined, NotDescentDirection, ErrNotDescentDirection)
				}
				s.logger.Debugf("polysolve: direction from %s is not a descent direction, falling back", s.strategy.DescentStrategyName())
				s.strategy.IncreaseDescentStrategy()
				continue
			}
		}

		// Step 9. A NaN norm means the strategy could not produce a
		// direction; a zero norm against a nonzero gradient is equally
		// unusable (no descent strategy can legitimately map g ≠ 0 to
		// Δx = 0) and must not be mistaken for ‖Δx‖ ≈ 0 convergence
		// below.
		dirNorm := floats.Norm(s.dir, 2)
		if math.IsNaN(dirNorm) || (dirNorm == 0 && gnorm != 0) {
			if s.strategy.Level() >= levelGradientDescent {
				return false, Continue, s.fail(current, f, UserDefined, NotDescentDirection, ErrNotDescentDirection)
			}
			s.logger.Debugf("polysolve: direction from %s is unusable, falling back", s.strategy.DescentStrategyName())
			s.strategy.IncreaseDescentStrategy()
			continue
		}

		// Step 10.
		if s.strategy.Level() >= levelGradientDescent {
			current.XDelta = math.NaN()
		} else {
			current.XDelta = dirNorm
		}
		if st := current.Check(effectiveStop); st != Continue {
			return false, st, nil
		}

		// Step 11: line search.
		t0 := time.Now()
		alpha, lsErr := s.search.Search(obj, x, s.dir, s.g, f, lsTiming)
		s.info.sumLineSearch += time.Since(t0)
		if lsErr != nil || math.IsNaN(alpha) {
			if s.strategy.Level() < levelGradientDescent {
				s.logger.Debugf("polysolve: line search failed from %s, falling back", s.strategy.DescentStrategyName())
				s.strategy.IncreaseDescentStrategy()
				continue
			}
			return false, Continue, s.fail(current, f, UserDefined, LineSearchFailed, ErrLineSearchFailed)
		}

		// Step 12: commit.
		floats.AddScaled(x, alpha, s.dir)
		obj.solutionChanged(x)

		// Step 13.
		s.strategy.SetDefaultDescentStrategy()

		s.foldLineSearchTiming(lsTiming)
		return true, Continue, nil
	}
}

func (s *Solver) foldLineSearchTiming(t *lineSearchTiming) {
	s.info.sumCheckingForNanInf += t.checkNonfinite
	s.info.sumConstraintSetUpdate += t.constraintSetUpdate
	s.info.sumClassicalLineSearch += t.classical
	s.info.sumLineSearchConstraintSet += t.constraintSetUpdate
	s.info.sumLineSearchIterations += t.iterations
	t.reset()
}

// succeed finalizes the accumulator for a non-fatal termination and
// returns nil: IterationLimit (when allowed), every *Tolerance status, and
// UserDefined with ErrorCode Success are all success exits.
func (s *Solver) succeed(current *Criteria, energy float64, status Status) error {
	s.info.status = status
	s.info.errorCode = Success
	s.info.energy = energy
	s.info.iterations = current.Iterations
	s.info.xDelta = current.XDelta
	s.info.fDelta = current.FDelta
	s.info.gradNorm = current.GradNorm
	s.info.condition = s.stopCriteria.Condition
	s.info.total = time.Since(s.info.start)
	return nil
}

// fail finalizes the accumulator for a fatal termination, logs a single
// diagnostic, and returns the *SolveError.
func (s *Solver) fail(current *Criteria, energy float64, status Status, code ErrorCode, underlying error) error {
	s.info.status = status
	s.info.errorCode = code
	s.info.energy = energy
	s.info.iterations = current.Iterations
	s.info.xDelta = current.XDelta
	s.info.fDelta = current.FDelta
	s.info.gradNorm = current.GradNorm
	s.info.condition = s.stopCriteria.Condition
	s.info.total = time.Since(s.info.start)

	solveErr := &SolveError{Status: status, Code: code, Err: underlying}
	s.logger.Errorf("polysolve: minimize failed: %v", solveErr)
	return solveErr
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
