package language

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/shlex"
)

// Registry maps language display names to their descriptors.
type Registry struct {
	langs map[string]Language
}

// NewRegistry builds a registry from a list of languages. Duplicate names
// are rejected.
func NewRegistry(langs []Language) (*Registry, error) {
	m := make(map[string]Language, len(langs))
	for _, l := range langs {
		if l.Name == "" {
			return nil, fmt.Errorf("language with empty name")
		}
		if len(l.Command) == 0 {
			return nil, fmt.Errorf("language %s: empty command", l.Name)
		}
		if _, ok := m[l.Name]; ok {
			return nil, fmt.Errorf("duplicate language: %s", l.Name)
		}
		m[l.Name] = l
	}
	return &Registry{langs: m}, nil
}

// Get looks up a language by display name. Lookup is case sensitive.
func (r *Registry) Get(name string) (Language, bool) {
	l, ok := r.langs[name]
	return l, ok
}

// languageConf is the on-disk form of a language entry. The command is a
// single string split with shell-like rules into prefix tokens.
type languageConf struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
	Ext     string `yaml:"ext"`
	Kind    Kind   `yaml:"kind"`
}

type registryConf struct {
	Languages []languageConf `yaml:"languages"`
}

// Load reads a registry from a YAML file. A missing file is returned as an
// os.IsNotExist error so callers can fall back to Defaults.
func Load(p string) (*Registry, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var c registryConf
	if err := yaml.Unmarshal(d, &c); err != nil {
		return nil, fmt.Errorf("parse language config %s: %w", p, err)
	}
	langs := make([]Language, 0, len(c.Languages))
	for _, lc := range c.Languages {
		cmd, err := shlex.Split(lc.Command)
		if err != nil {
			return nil, fmt.Errorf("language %s: bad command %q: %w", lc.Name, lc.Command, err)
		}
		langs = append(langs, Language{
			Name:    lc.Name,
			Command: cmd,
			Ext:     lc.Ext,
			Kind:    lc.Kind,
		})
	}
	return NewRegistry(langs)
}

// Defaults returns the built-in registry used when no config file exists.
// Compiled entries must accept the `<compiler> <source> -o <binary>`
// invocation shape.
func Defaults() *Registry {
	r, err := NewRegistry([]Language{
		{Name: "Python", Command: []string{"python3"}, Ext: "py", Kind: Interpreted},
		{Name: "Node.js", Command: []string{"node"}, Ext: "js", Kind: Interpreted},
		{Name: "Ruby", Command: []string{"ruby"}, Ext: "rb", Kind: Interpreted},
		{Name: "C", Command: []string{"gcc", "-O2"}, Ext: "c", Kind: Compiled},
		{Name: "C++", Command: []string{"g++", "-O2", "-std=c++17"}, Ext: "cpp", Kind: Compiled},
		{Name: "Rust", Command: []string{"rustc", "-O"}, Ext: "rs", Kind: Compiled},
	})
	if err != nil {
		panic(err)
	}
	return r
}
