package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONFile(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	Component("test").Debug("test.event", "k", "v")

	want := filepath.Join(root, ".patternkit", "logs", "patternkit.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("logger should be reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	for _, frag := range []string{`"msg":"logger.initialized"`, `"msg":"test.event"`, `"component":"test"`} {
		if !strings.Contains(s, frag) {
			t.Errorf("expected %s in log:\n%s", frag, s)
		}
	}
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected log output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `"source"`) {
		t.Fatalf("source should only be added in debug mode")
	}
}
