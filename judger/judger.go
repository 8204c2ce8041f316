// Package judger drives a solution through its recorded test cases and
// judges every run as pass or fail.
package judger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/acmob/solrun/executor"
	"github.com/acmob/solrun/language"
	"github.com/acmob/solrun/pkg/toolcheck"
	"github.com/acmob/solrun/problem"
)

// CompileFailureMark is the observed output recorded for the synthetic
// verdict produced when compilation fails.
const CompileFailureMark = "COMPILATION ERROR\n"

// Judger runs solutions case by case, strictly sequentially: one child
// process at a time, one verdict at a time.
type Judger struct {
	checker *toolcheck.Checker
	logger  *zap.Logger
	metrics *Metrics // nil disables instrumentation
}

// New creates a judger. metrics may be nil.
func New(checker *toolcheck.Checker, logger *zap.Logger, metrics *Metrics) *Judger {
	return &Judger{checker: checker, logger: logger, metrics: metrics}
}

// Run builds the executor for spec and judges every case in order.
//
// Only a missing tool is fatal. A compile failure collapses the run into a
// single synthetic failing verdict — the build fails once, so no further
// case can be attempted. Everything else is captured per case.
func (j *Judger) Run(ctx context.Context, spec language.Language, sourcePath string, cases []problem.Case) (Report, error) {
	exe, err := executor.New(spec, sourcePath, j.checker, j.logger)
	if err != nil {
		return Report{}, err
	}

	verdicts := make([]Verdict, 0, len(cases))
	for i, c := range cases {
		start := time.Now()
		out, err := exe.Run(ctx, []byte(c.Input))
		var ce *executor.CompileError
		if errors.As(err, &ce) {
			j.logger.Info("compilation failed",
				zap.String("language", spec.Name),
				zap.String("source", sourcePath))
			v := Verdict{Index: 1, Passed: false, Output: CompileFailureMark}
			j.observe(v, time.Since(start))
			return Report{Verdicts: []Verdict{v}}, nil
		}
		if err != nil {
			return Report{}, err
		}
		v := judge(i+1, c, out)
		j.observe(v, time.Since(start))
		j.logger.Debug("case judged",
			zap.Int("index", v.Index),
			zap.Bool("passed", v.Passed))
		verdicts = append(verdicts, v)
	}
	return Report{Verdicts: verdicts}, nil
}

// judge classifies one outcome. Any stderr output fails the case
// unconditionally with the stderr text as observed output; stdout is not
// compared in that case. Otherwise stdout must equal the answer exactly,
// trailing newline included.
func judge(index int, c problem.Case, out executor.Outcome) Verdict {
	if len(out.Stderr) != 0 {
		return Verdict{Index: index, Passed: false, Output: string(out.Stderr)}
	}
	observed := string(out.Stdout)
	return Verdict{Index: index, Passed: observed == c.Answer, Output: observed}
}

func (j *Judger) observe(v Verdict, d time.Duration) {
	if j.metrics == nil {
		return
	}
	j.metrics.observe(v, d)
}
