package problem

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadCases_Pairing(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.in":  "3\n",
		"2.sol": "9\n",
		"3.in":  "4\n",
		"4.sol": "16\n",
	})
	cases, err := LoadCases(dir)
	if err != nil {
		t.Fatalf("LoadCases error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Input != "3\n" || cases[0].Answer != "9\n" {
		t.Errorf("unexpected first case: %+v", cases[0])
	}
	if cases[1].Input != "4\n" || cases[1].Answer != "16\n" {
		t.Errorf("unexpected second case: %+v", cases[1])
	}
}

func TestLoadCases_ByteOrderSort(t *testing.T) {
	// "10.in" sorts before "2.in" in byte order; the pairing follows the
	// sort, not numeric intuition.
	dir := writeFiles(t, map[string]string{
		"10.in": "b-in\n",
		"2.in":  "c-in\n",
		"1.in":  "a-in\n",
		"Z.sol": "z\n",
	})
	cases, err := LoadCases(dir)
	if err != nil {
		t.Fatalf("LoadCases error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Input != "a-in\n" || cases[0].Answer != "b-in\n" {
		t.Errorf("unexpected first pair: %+v", cases[0])
	}
	if cases[1].Input != "c-in\n" || cases[1].Answer != "z\n" {
		t.Errorf("unexpected second pair: %+v", cases[1])
	}
}

func TestLoadCases_OddFileDropped(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.in":  "3\n",
		"2.sol": "9\n",
		"3.in":  "orphan\n",
	})
	cases, err := LoadCases(dir)
	if err != nil {
		t.Fatalf("LoadCases error: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("expected trailing file to be dropped, got %d cases", len(cases))
	}
}

func TestLoadCases_Empty(t *testing.T) {
	cases, err := LoadCases(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCases error: %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("expected no cases, got %d", len(cases))
	}
}

func TestLoadCases_MissingDir(t *testing.T) {
	if _, err := LoadCases(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestPaths(t *testing.T) {
	if _, err := ParseEvent("Qualifier"); err == nil {
		t.Error("expected error for unknown event")
	}
	ev, err := ParseEvent("Warming")
	if err != nil {
		t.Fatalf("ParseEvent error: %v", err)
	}
	got := TestsDir("/arc", "2020", ev, "A")
	want := filepath.Join("/arc", "2020", "Warming", "A", TestsDirName)
	if got != want {
		t.Errorf("TestsDir: got %s, want %s", got, want)
	}
	got = SolutionPath("/arc", "2020", EventMain, "A", "Python", "py", 2)
	want = filepath.Join("/arc", "2020", "Main", "A", "Python", "solution_2.py")
	if got != want {
		t.Errorf("SolutionPath: got %s, want %s", got, want)
	}
}
