package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/acmob/solrun/procexec"
)

// binaryName is the fixed output name for compiled solutions. It lives next
// to the source file, so concurrent runs against the same directory collide;
// the runner assumes single-runner-at-a-time usage and takes no lock.
const binaryName = "solution_out"

// CompileError reports a failed compilation. It is recovered by the harness
// into a single synthetic failing verdict, never propagated as fatal.
type CompileError struct {
	Output string // compiler stderr
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed: %s", e.Output)
}

// compiledExecutor compiles the source to a temporary binary, runs it
// through a shell invocation, and removes the binary afterward.
type compiledExecutor struct {
	command []string
	source  string
	binPath string
	logger  *zap.Logger
}

func newCompiled(command []string, sourcePath string, logger *zap.Logger) (*compiledExecutor, error) {
	binPath, err := filepath.Abs(filepath.Join(filepath.Dir(sourcePath), binaryName))
	if err != nil {
		return nil, fmt.Errorf("executor: resolve binary path: %w", err)
	}
	return &compiledExecutor{
		command: command,
		source:  sourcePath,
		binPath: binPath,
		logger:  logger,
	}, nil
}

func (e *compiledExecutor) Run(ctx context.Context, input []byte) (Outcome, error) {
	args := append(slices.Clone(e.command), e.source, "-o", e.binPath)
	e.logger.Debug("compile", zap.Strings("args", args))
	rt, err := procexec.Run(ctx, args, nil)
	if err != nil {
		return Outcome{}, err
	}
	// Success is the compiler's exit status, nothing else.
	if !rt.Success {
		return Outcome{}, &CompileError{Output: string(rt.Stderr)}
	}

	out, err := e.runBinary(ctx, input)
	if err != nil {
		// The binary stays on disk here. Removal happens only on the
		// success path, keeping the artifact around for post-mortem
		// inspection of the failed run.
		return Outcome{}, err
	}
	if err := os.Remove(e.binPath); err != nil {
		e.logger.Warn("remove compiled binary", zap.String("path", e.binPath), zap.Error(err))
	}
	return out, nil
}

func (e *compiledExecutor) runBinary(ctx context.Context, input []byte) (Outcome, error) {
	return newShell(e.binPath, e.logger).Run(ctx, input)
}
