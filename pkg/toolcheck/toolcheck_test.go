package toolcheck

import (
	"errors"
	"os/exec"
	"testing"
)

func TestCheck_NotFound(t *testing.T) {
	c := New()
	err := c.Check("definitely-not-a-real-tool-xyz")
	if err == nil {
		t.Fatal("expected error for missing tool")
	}
	var tnf *ToolNotFoundError
	if !errors.As(err, &tnf) {
		t.Fatalf("expected ToolNotFoundError, got %T", err)
	}
	if tnf.Tool != "definitely-not-a-real-tool-xyz" {
		t.Errorf("unexpected tool in error: %s", tnf.Tool)
	}
}

func TestCheck_Caches(t *testing.T) {
	calls := 0
	c := New()
	c.lookPath = func(name string) (string, error) {
		calls++
		return "/usr/bin/" + name, nil
	}
	for i := 0; i < 3; i++ {
		if err := c.Check("python3"); err != nil {
			t.Fatalf("Check error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 lookup, got %d", calls)
	}
}

func TestCheck_FailureNotCached(t *testing.T) {
	calls := 0
	c := New()
	c.lookPath = func(name string) (string, error) {
		calls++
		return "", exec.ErrNotFound
	}
	c.Check("missing")
	c.Check("missing")
	if calls != 2 {
		t.Errorf("expected failed lookups not to be cached, got %d calls", calls)
	}
}
