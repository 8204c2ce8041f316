// Package executor turns a solution source file plus input bytes into
// captured stdout and stderr, either by interpreting the source directly or
// by compiling it to a temporary binary first.
package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/acmob/solrun/language"
	"github.com/acmob/solrun/pkg/toolcheck"
	"github.com/acmob/solrun/procexec"
)

// Outcome is the collected result of one solution run.
type Outcome = procexec.Result

// Executor runs a solution source against raw input bytes. Run blocks
// until the solution process exits; cancellation comes from the context
// only.
type Executor interface {
	Run(ctx context.Context, input []byte) (Outcome, error)
}

// New builds the executor for the language's kind. The language's tool is
// verified through the checker before anything else; a missing tool aborts
// construction with a toolcheck.ToolNotFoundError.
func New(spec language.Language, sourcePath string, checker *toolcheck.Checker, logger *zap.Logger) (Executor, error) {
	if err := checker.Check(spec.Command[0]); err != nil {
		return nil, err
	}
	switch spec.Kind {
	case language.Interpreted:
		return newInterpreted(spec.Command, sourcePath, logger), nil
	case language.Compiled:
		return newCompiled(spec.Command, sourcePath, logger)
	default:
		return nil, fmt.Errorf("executor: unknown kind %v for language %s", spec.Kind, spec.Name)
	}
}
