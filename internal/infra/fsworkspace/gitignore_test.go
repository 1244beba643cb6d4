package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(b) != "# patternkit\nruns/\n.patternkit/\n" {
		t.Fatalf("unexpected .gitignore:\n%s", b)
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	if err := os.WriteFile(path, []byte("node_modules/\nruns/"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, _ := os.ReadFile(path)
	s := string(b)
	if strings.Count(s, "runs/") != 1 {
		t.Fatalf("runs/ should not be duplicated:\n%s", s)
	}
	if !strings.Contains(s, "node_modules/\nruns/\n\n# patternkit\n.patternkit/\n") {
		t.Fatalf("unexpected .gitignore:\n%s", s)
	}
}

func TestEnsureGitignore_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	_ = ensureGitignore(tmp)
	first, _ := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	_ = ensureGitignore(tmp)
	second, _ := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if string(first) != string(second) {
		t.Fatalf("second run changed the file:\n%s", second)
	}
}
