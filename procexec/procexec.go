// Package procexec spawns child processes and collects their full output.
//
// Commands are given as explicit argument lists; no shell interpolation
// happens here. The one caller that needs a shell (executing a compiled
// binary path) quotes it with ShellQuote and passes `sh -c` explicitly.
package procexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds the collected output of a finished process.
type Result struct {
	Stdout  []byte
	Stderr  []byte
	Success bool // exit status was zero
}

// Run spawns args[0] with the remaining tokens as arguments, writes input
// to its stdin and closes it, then blocks until the process exits with both
// output streams fully collected. No timeout is applied: a hung child
// blocks the caller for as long as the context stays alive.
//
// A non-zero exit is not an error; it is reported through Result.Success.
// An error is returned only when the process could not be run at all.
func Run(ctx context.Context, args []string, input []byte) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("procexec: empty argument list")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	rt := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), Success: err == nil}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Result{}, fmt.Errorf("procexec: run %s: %w", args[0], err)
	}
	return rt, nil
}

// ShellQuote wraps p in single quotes for safe use inside a shell command,
// escaping any single quotes in p itself.
func ShellQuote(p string) string {
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}
