package bank

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/patternkit/internal/pattern/command"
)

func TestApp_Buttons(t *testing.T) {
	var out bytes.Buffer
	acc := NewAccount("Minh", &out)
	app := NewApp(OpenAccount(acc), CloseAccount(acc), &out, nil)

	if err := app.ClickOpenAccount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acc.IsOpen() {
		t.Fatalf("expected account to be open")
	}
	if err := app.ClickCloseAccount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.IsOpen() {
		t.Fatalf("expected account to be closed")
	}

	want := "User click open an account\nAccount Minh Opened\nUser click close an account\nAccount Minh Closed\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestApp_CloseBeforeOpenFails(t *testing.T) {
	var out bytes.Buffer
	acc := NewAccount("Minh", &out)
	app := NewApp(OpenAccount(acc), CloseAccount(acc), &out, nil)

	err := app.ClickCloseAccount()
	if !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}

func TestOpenAccount_UndoThroughHistory(t *testing.T) {
	var out bytes.Buffer
	acc := NewAccount("Minh", &out)
	h := command.NewHistory()

	if _, err := h.Execute(OpenAccount(acc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, err := h.Undo(); !ok || err != nil {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if acc.IsOpen() {
		t.Fatalf("undo should close the account")
	}
	if ok, err := h.Redo(); !ok || err != nil {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if !acc.IsOpen() {
		t.Fatalf("redo should reopen the account")
	}
}

func TestDemo_Run(t *testing.T) {
	var out bytes.Buffer
	if err := NewDemo(nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Account Minh Closed") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
