// Package problem models the contest archive layout and loads the recorded
// test cases for a problem.
//
// The archive is laid out as
//
//	<root>/<year>/<event>/<problem>/__TESTS__/            paired case files
//	<root>/<year>/<event>/<problem>/<language>/solution_<id>.<ext>
package problem

import (
	"fmt"
	"path/filepath"
)

// TestsDirName is the fixed directory holding a problem's case files.
const TestsDirName = "__TESTS__"

// Event names a contest round within a year.
type Event string

const (
	EventMain    Event = "Main"
	EventWarming Event = "Warming"
)

// ParseEvent validates an event name from the CLI surface.
func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventMain, EventWarming:
		return Event(s), nil
	}
	return "", fmt.Errorf("unknown event %q (want Main or Warming)", s)
}

// TestsDir returns the test case directory for a problem.
func TestsDir(root, year string, event Event, prob string) string {
	return filepath.Join(root, year, string(event), prob, TestsDirName)
}

// SolutionPath returns the path of a numbered solution source file.
func SolutionPath(root, year string, event Event, prob, langName, ext string, solution int) string {
	name := fmt.Sprintf("solution_%d.%s", solution, ext)
	return filepath.Join(root, year, string(event), prob, langName, name)
}
