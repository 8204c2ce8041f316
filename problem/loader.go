package problem

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Case pairs one input with its expected answer. Both are full file
// contents, read into memory when the case list is built.
type Case struct {
	Input  string
	Answer string
}

// LoadCases reads a problem's test directory and pairs its files in
// lexicographic (byte) order: file 2i is the input of case i+1 and file
// 2i+1 its answer. The pairing depends on the sort being stable and
// deterministic, so the order is pinned here rather than trusted to the
// directory listing.
//
// A trailing unpaired file is dropped silently; an odd file count is a
// documented property of the archive layout, not an error.
func LoadCases(dir string) ([]Case, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list test directory: %w", err)
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	cases := make([]Case, 0, len(names)/2)
	for i := 0; i+1 < len(names); i += 2 {
		input, err := os.ReadFile(filepath.Join(dir, names[i]))
		if err != nil {
			return nil, fmt.Errorf("read case input %s: %w", names[i], err)
		}
		answer, err := os.ReadFile(filepath.Join(dir, names[i+1]))
		if err != nil {
			return nil, fmt.Errorf("read case answer %s: %w", names[i+1], err)
		}
		cases = append(cases, Case{Input: string(input), Answer: string(answer)})
	}
	return cases, nil
}
