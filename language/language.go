// Package language defines the static descriptors that tell the runner how
// to build and execute a solution for each supported language.
package language

import (
	"fmt"
)

// Kind selects the execution strategy for a language. The set is closed:
// executors dispatch on it exhaustively.
type Kind int

const (
	// Interpreted languages run the source file directly through the
	// command prefix.
	Interpreted Kind = iota
	// Compiled languages are compiled to a temporary binary first.
	Compiled
)

var kindNames = map[Kind]string{
	Interpreted: "interpreted",
	Compiled:    "compiled",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalYAML encodes the kind as its lowercase name.
func (k Kind) MarshalYAML() ([]byte, error) {
	n, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown language kind: %d", int(k))
	}
	return []byte(n), nil
}

// UnmarshalYAML decodes a kind from its lowercase name.
func (k *Kind) UnmarshalYAML(b []byte) error {
	s := string(b)
	for kind, n := range kindNames {
		if s == n {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown language kind: %q", s)
}

// Language describes how solutions for one language are built and run.
// Command holds the command prefix tokens; the first token is the
// interpreter or compiler executable and must resolve on PATH.
type Language struct {
	Name    string
	Command []string
	Ext     string
	Kind    Kind
}
