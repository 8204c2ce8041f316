// Package toolcheck verifies that interpreter and compiler executables
// resolve on the search path before any build or run is attempted.
package toolcheck

import (
	"fmt"
	"os/exec"
	"sync"
)

// ToolNotFoundError reports a command token that did not resolve on PATH.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool not found in PATH: %s", e.Tool)
}

// Checker remembers which command tokens were already verified, so repeated
// checks for the same tool skip path resolution. The verified set is never
// invalidated within a run.
type Checker struct {
	mu       sync.Mutex
	verified map[string]struct{}
	lookPath func(string) (string, error)
}

// New creates an empty checker backed by exec.LookPath.
func New() *Checker {
	return &Checker{
		verified: make(map[string]struct{}),
		lookPath: exec.LookPath,
	}
}

// Check verifies that tool resolves on the search path. Failure returns a
// ToolNotFoundError and is fatal to the caller: executor construction must
// abort, not retry.
func (c *Checker) Check(tool string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.verified[tool]; ok {
		return nil
	}
	if _, err := c.lookPath(tool); err != nil {
		return &ToolNotFoundError{Tool: tool}
	}
	c.verified[tool] = struct{}{}
	return nil
}
