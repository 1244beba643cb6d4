// Package bank binds the open/close buttons of a tiny banking app to account
// commands.
package bank

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/command"
)

var (
	ErrAlreadyOpen = errors.New("account already open")
	ErrNotOpen     = errors.New("account not open")
)

const (
	TriggerOpen  = "open-account"
	TriggerClose = "close-account"
)

// Account is the receiver.
type Account struct {
	Name string
	open bool
	out  io.Writer
}

func NewAccount(name string, out io.Writer) *Account {
	return &Account{Name: name, out: out}
}

func (a *Account) IsOpen() bool { return a.open }

func (a *Account) Open() error {
	if a.open {
		return fmt.Errorf("%s: %w", a.Name, ErrAlreadyOpen)
	}
	a.open = true
	fmt.Fprintf(a.out, "Account %s Opened\n", a.Name)
	return nil
}

func (a *Account) Close() error {
	if !a.open {
		return fmt.Errorf("%s: %w", a.Name, ErrNotOpen)
	}
	a.open = false
	fmt.Fprintf(a.out, "Account %s Closed\n", a.Name)
	return nil
}

// OpenAccount opens the account; undo closes it again.
func OpenAccount(a *Account) command.Command {
	return command.Func{Name: "open " + a.Name, Do: a.Open, Revert: a.Close}
}

// CloseAccount closes the account; undo reopens it.
func CloseAccount(a *Account) command.Command {
	return command.Func{Name: "close " + a.Name, Do: a.Close, Revert: a.Open}
}

// App is the invoker: its buttons only know which trigger to fire.
type App struct {
	invoker *command.Invoker
	out     io.Writer
}

func NewApp(open, closeCmd command.Command, out io.Writer, log *slog.Logger) *App {
	inv := command.NewInvoker(log)
	inv.Bind(TriggerOpen, open)
	inv.Bind(TriggerClose, closeCmd)
	return &App{invoker: inv, out: out}
}

func (a *App) ClickOpenAccount() error {
	fmt.Fprintln(a.out, "User click open an account")
	return a.invoker.Trigger(TriggerOpen)
}

func (a *App) ClickCloseAccount() error {
	fmt.Fprintln(a.out, "User click close an account")
	return a.invoker.Trigger(TriggerClose)
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "command.bank",
		Pattern: "command",
		Summary: "Bank app buttons bound to open and close account commands",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	acc := NewAccount("Minh", out)
	app := NewApp(OpenAccount(acc), CloseAccount(acc), out, d.log)

	if err := app.ClickOpenAccount(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return app.ClickCloseAccount()
}
