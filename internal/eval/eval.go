// Package eval runs config scenarios against the vec3 API.
package eval

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/chewxy/math32"

	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/pkg/concurrent"
	"github.com/zeusync/vecmath/pkg/vec3"
)

// Result is the outcome of one scenario. Err is nil when the operation ran
// and every expectation held.
type Result struct {
	Name    string
	Op      string
	Kind    Kind
	Vector  vec3.Vec3
	Scalar  float32
	Checked bool
	Err     error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Summary counts the results of a run.
type Summary struct {
	Total   int
	Checked int
	Failed  int
	Elapsed time.Duration
}

type Evaluator struct {
	logger  log.Log
	workers int
}

func New(logger log.Log) *Evaluator {
	return &Evaluator{
		logger:  logger.With(log.String("component", "eval")),
		workers: runtime.GOMAXPROCS(0),
	}
}

// Evaluate runs a single scenario. The returned error is also stored in
// Result.Err.
func (e *Evaluator) Evaluate(sc config.Scenario) (Result, error) {
	res := run(sc)
	if res.Err != nil {
		res.Err = fmt.Errorf("%s: %w", sc.Name, res.Err)
	}
	e.logResult(res)
	return res, res.Err
}

func run(sc config.Scenario) Result {
	res := Result{Name: sc.Name, Op: sc.Op}

	o, ok := registry[sc.Op]
	if !ok {
		res.Err = fmt.Errorf("%w: %q", ErrUnknownOp, sc.Op)
		return res
	}
	res.Kind = o.kind()

	in, err := bind(sc, o.needs)
	if err != nil {
		res.Err = err
		return res
	}

	if o.scalar != nil {
		res.Scalar = o.scalar(in)
	} else {
		res.Vector = o.vector(in)
	}

	res.Checked, res.Err = check(sc, res)
	return res
}

// EvaluateAll evaluates scenarios concurrently and returns their results in
// input order. Scenario failures are reported through Result.Err; the
// returned error is only set when ctx is done before every scenario ran.
func (e *Evaluator) EvaluateAll(ctx context.Context, scenarios []config.Scenario) ([]Result, Summary, error) {
	start := time.Now()
	results, err := concurrent.ParallelMap(ctx, scenarios, e.workers, func(ctx context.Context, sc config.Scenario) (Result, error) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res, _ := e.Evaluate(sc)
		return res, nil
	})
	if err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{Total: len(results), Elapsed: time.Since(start)}
	for _, r := range results {
		if r.Checked {
			summary.Checked++
		}
		if !r.Passed() {
			summary.Failed++
		}
	}
	return results, summary, nil
}

func (e *Evaluator) logResult(res Result) {
	fields := []log.Field{log.String("scenario", res.Name), log.String("op", res.Op)}
	if res.Kind == KindScalar {
		fields = append(fields, log.Float32("result", res.Scalar))
	} else {
		fields = append(fields, log.Vec3("result", res.Vector))
	}

	if res.Err != nil {
		e.logger.Warn("scenario failed", append(fields, log.Error(res.Err))...)
		return
	}
	e.logger.Debug("scenario evaluated", append(fields, log.Bool("checked", res.Checked))...)
}

func bind(sc config.Scenario, needs operand) (operands, error) {
	var in operands
	missing := func(name string) error {
		return fmt.Errorf("%w: %s requires %s", ErrMissingOperand, sc.Op, name)
	}

	if needs&needA != 0 {
		if !sc.A.Set {
			return in, missing("a")
		}
		in.a = sc.A.V
	}
	if needs&needB != 0 {
		if !sc.B.Set {
			return in, missing("b")
		}
		in.b = sc.B.V
	}
	if needs&needC != 0 {
		if !sc.C.Set {
			return in, missing("c")
		}
		in.c = sc.C.V
	}
	if needs&needS != 0 {
		if sc.S == nil {
			return in, missing("s")
		}
		in.s = *sc.S
	}
	return in, nil
}

func check(sc config.Scenario, res Result) (bool, error) {
	eps := sc.Tolerance()

	switch res.Kind {
	case KindVector:
		if sc.ExpectScalar != nil {
			return true, fmt.Errorf("%w: %s returns a %s", ErrWrongExpectation, sc.Op, res.Kind)
		}
		if !sc.Expect.Set {
			return false, nil
		}
		want := sc.Expect.V
		if !near(res.Vector.X, want.X, eps) || !near(res.Vector.Y, want.Y, eps) || !near(res.Vector.Z, want.Z, eps) {
			return true, fmt.Errorf("%w: got %v, want %v", ErrExpectationFailed, res.Vector, want)
		}
	case KindScalar:
		if sc.Expect.Set {
			return true, fmt.Errorf("%w: %s returns a %s", ErrWrongExpectation, sc.Op, res.Kind)
		}
		if sc.ExpectScalar == nil {
			return false, nil
		}
		if want := *sc.ExpectScalar; !near(res.Scalar, want, eps) {
			return true, fmt.Errorf("%w: got %v, want %v", ErrExpectationFailed, res.Scalar, want)
		}
	}
	return true, nil
}

// near treats NaN as equal to NaN and infinities as equal when they share a
// sign, so degenerate results can be expected explicitly.
func near(got, want, eps float32) bool {
	switch {
	case math32.IsNaN(want) || math32.IsNaN(got):
		return math32.IsNaN(want) && math32.IsNaN(got)
	case math32.IsInf(want, 0) || math32.IsInf(got, 0):
		return got == want
	}
	return math32.Abs(got-want) <= eps
}
