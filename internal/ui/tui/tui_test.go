package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
	"github.com/aalvaropc/patternkit/internal/usecase"
)

type fakeCatalog struct{ refs []domain.DemoRef }

func (f fakeCatalog) List() []domain.DemoRef { return f.refs }
func (f fakeCatalog) Lookup(string) (ports.Demo, error) {
	return nil, errors.New("not used")
}

type fakeRunner struct {
	lines []string
	err   error
	calls []string
}

func (f *fakeRunner) Execute(_ context.Context, name string, _ io.Writer, _ bool) (usecase.RunOutcome, error) {
	f.calls = append(f.calls, name)
	start := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	return usecase.RunOutcome{Transcript: domain.Transcript{
		Demo:      name,
		StartedAt: start,
		EndedAt:   start.Add(time.Millisecond),
		Lines:     f.lines,
	}}, f.err
}

func testModel(r *fakeRunner) model {
	deps := Deps{
		Catalog: fakeCatalog{refs: []domain.DemoRef{
			{Name: "visitor.shape", Pattern: "visitor", Summary: "areas"},
			{Name: "chain.form", Pattern: "chain-of-responsibility", Summary: "form"},
		}},
		Runner: r,
	}
	m := newModel(context.Background(), deps)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_EnterRunsSelectedDemo(t *testing.T) {
	r := &fakeRunner{lines: []string{"Area of Circle: 78.54"}}
	m := testModel(r)

	next, cmd := m.Update(key("enter"))
	m = next.(model)
	if m.scr != screenRunning || !m.running {
		t.Fatalf("expected running screen, got scr=%v running=%v", m.scr, m.running)
	}
	if cmd == nil {
		t.Fatal("expected a run command")
	}

	msg := cmd()
	done, ok := msg.(demoDoneMsg)
	if !ok {
		t.Fatalf("expected demoDoneMsg, got %T", msg)
	}
	if len(r.calls) != 1 || r.calls[0] != "visitor.shape" {
		t.Errorf("unexpected runner calls %v", r.calls)
	}

	next, _ = m.Update(done)
	m = next.(model)
	if m.scr != screenTranscript || m.running {
		t.Fatalf("expected transcript screen, got scr=%v running=%v", m.scr, m.running)
	}
	if v := m.View(); !strings.Contains(v, "Area of Circle: 78.54") {
		t.Errorf("expected transcript in view:\n%s", v)
	}
}

func TestModel_BackReturnsHome(t *testing.T) {
	m := testModel(&fakeRunner{})
	next, _ := m.Update(demoDoneMsg{ref: domain.DemoRef{Name: "visitor.shape"}})
	m = next.(model)

	next, _ = m.Update(key("esc"))
	m = next.(model)
	if m.scr != screenHome {
		t.Errorf("expected home after esc, got %v", m.scr)
	}
}

func TestModel_QuitFromHome(t *testing.T) {
	m := testModel(&fakeRunner{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_FailedRunShowsToast(t *testing.T) {
	r := &fakeRunner{err: &domain.OpError{Op: "run_demo", Kind: domain.KindExecution, Err: errors.New("boom")}}
	m := testModel(r)

	_, cmd := m.Update(key("enter"))
	next, _ := m.Update(cmd())
	m = next.(model)
	if m.toast != "Demo failed: boom" {
		t.Errorf("unexpected toast %q", m.toast)
	}
}

func TestCmdRunDemo_NilRunner(t *testing.T) {
	msg := cmdRunDemo(context.Background(), Deps{}, domain.DemoRef{Name: "x"})()
	done := msg.(demoDoneMsg)
	if done.err == nil {
		t.Error("expected error for nil runner")
	}
}

func TestSafeModel_RecoversFromViewPanic(t *testing.T) {
	s := wrapSafe(model{}, nil)
	// A zero model has no list delegate; View must not escape a panic.
	out := s.View()
	if out == "" {
		t.Error("expected some output")
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&domain.OpError{Op: "demo.lookup", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Demo not found"},
		{&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Err: errors.New("bad")}, "Invalid config"},
		{&domain.OpError{Op: "payment", Kind: domain.KindValidation, Err: fmt.Errorf("wrap: %w", errors.New("amount"))}, "Rejected: amount"},
		{fmt.Errorf("x: %w", domain.ErrNotFound), "Not found"},
		{errors.New("weird"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestRenderTranscript(t *testing.T) {
	out := renderTranscript(domain.Transcript{Lines: []string{"abcdefghij"}, Error: "bad"}, 4)
	if !strings.Contains(out, "abcd…") {
		t.Errorf("expected clamped line, got:\n%s", out)
	}
	if !strings.Contains(out, "Error: bad") {
		t.Errorf("expected error line, got:\n%s", out)
	}
	if got := renderTranscript(domain.Transcript{}, 0); !strings.Contains(got, "(no output)") {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("héllo", 3); got != "hél…" {
		t.Errorf("clampString = %q", got)
	}
	if got := clampString("hi", 5); got != "hi" {
		t.Errorf("clampString = %q", got)
	}
	if got := clampString("hi", 0); got != "" {
		t.Errorf("clampString = %q", got)
	}
}

func TestSafeModel_UpdateReturnsSafeModel(t *testing.T) {
	s := wrapSafe(testModel(&fakeRunner{}), nil)
	next, _ := s.Update(key("j"))
	if _, ok := next.(safeModel); !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
}
