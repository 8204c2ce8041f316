package executor

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/acmob/solrun/procexec"
)

// interpretedExecutor joins the command prefix with the source path and
// hands the invocation to procexec. It also serves as the run stage for
// compiled languages, executing the already-built binary through the shell.
type interpretedExecutor struct {
	args   []string
	logger *zap.Logger
}

func newInterpreted(command []string, sourcePath string, logger *zap.Logger) *interpretedExecutor {
	return &interpretedExecutor{
		args:   append(slices.Clone(command), sourcePath),
		logger: logger,
	}
}

// newShell builds the run stage for a compiled binary: a `sh -c` invocation
// of the quoted binary path. This is the one sanctioned shell call site;
// quoting keeps paths with spaces intact.
func newShell(binPath string, logger *zap.Logger) *interpretedExecutor {
	return &interpretedExecutor{
		args:   []string{"sh", "-c", procexec.ShellQuote(binPath)},
		logger: logger,
	}
}

func (e *interpretedExecutor) Run(ctx context.Context, input []byte) (Outcome, error) {
	e.logger.Debug("run", zap.Strings("args", e.args))
	return procexec.Run(ctx, e.args, input)
}
