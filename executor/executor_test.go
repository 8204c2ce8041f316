package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/acmob/solrun/language"
	"github.com/acmob/solrun/pkg/toolcheck"
)

// installFakeCompiler puts a `fakecc` script on PATH that accepts the
// `<src> -o <out>` shape and "compiles" a shell script by copying it and
// marking it executable.
func installFakeCompiler(t *testing.T, fail bool) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\ncp \"$1\" \"$3\"\nchmod +x \"$3\"\n"
	if fail {
		script = "#!/bin/sh\necho 'syntax error' >&2\nexit 1\n"
	}
	if err := os.WriteFile(filepath.Join(dir, "fakecc"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "solution_1.sh")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNew_ToolNotFound(t *testing.T) {
	spec := language.Language{Name: "Ghost", Command: []string{"no-such-compiler-xyz"}, Kind: language.Compiled}
	_, err := New(spec, "solution_1.x", toolcheck.New(), zaptest.NewLogger(t))
	var tnf *toolcheck.ToolNotFoundError
	if !errors.As(err, &tnf) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
}

func TestInterpreted_Run(t *testing.T) {
	src := writeSource(t, "read x\necho $((x * x))\n")
	spec := language.Language{Name: "Shell", Command: []string{"sh"}, Ext: "sh", Kind: language.Interpreted}
	e, err := New(spec, src, toolcheck.New(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out, err := e.Run(context.Background(), []byte("3\n"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if string(out.Stdout) != "9\n" {
		t.Errorf("unexpected stdout: %q", out.Stdout)
	}
	if len(out.Stderr) != 0 {
		t.Errorf("unexpected stderr: %q", out.Stderr)
	}
}

func TestCompiled_RunAndCleanup(t *testing.T) {
	installFakeCompiler(t, false)
	src := writeSource(t, "#!/bin/sh\nread x\necho $((x + 1))\n")
	spec := language.Language{Name: "Fake", Command: []string{"fakecc"}, Ext: "sh", Kind: language.Compiled}
	e, err := New(spec, src, toolcheck.New(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out, err := e.Run(context.Background(), []byte("41\n"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if string(out.Stdout) != "42\n" {
		t.Errorf("unexpected stdout: %q", out.Stdout)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(src), binaryName)); !os.IsNotExist(err) {
		t.Error("compiled binary left on disk after successful run")
	}
}

func TestCompiled_CompileFailure(t *testing.T) {
	installFakeCompiler(t, true)
	src := writeSource(t, "broken(\n")
	spec := language.Language{Name: "Fake", Command: []string{"fakecc"}, Ext: "sh", Kind: language.Compiled}
	e, err := New(spec, src, toolcheck.New(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	_, err = e.Run(context.Background(), nil)
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %v", err)
	}
	if ce.Output != "syntax error\n" {
		t.Errorf("unexpected compiler output: %q", ce.Output)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(src), binaryName)); !os.IsNotExist(err) {
		t.Error("binary should not exist after failed compile")
	}
}

func TestCompiled_BinaryPathWithSpaces(t *testing.T) {
	installFakeCompiler(t, false)
	dir := filepath.Join(t.TempDir(), "dir with space")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "solution_1.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\necho ok\n"), 0644); err != nil {
		t.Fatal(err)
	}
	spec := language.Language{Name: "Fake", Command: []string{"fakecc"}, Ext: "sh", Kind: language.Compiled}
	e, err := New(spec, src, toolcheck.New(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out, err := e.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if string(out.Stdout) != "ok\n" {
		t.Errorf("unexpected stdout: %q", out.Stdout)
	}
}
