package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var ErrUnknownTrigger = errors.New("unknown trigger")

// Invoker binds named triggers (buttons, menu entries) to commands. It knows
// nothing about what the commands do.
type Invoker struct {
	bindings map[string]Command
	order    []string
	log      *slog.Logger
}

func NewInvoker(log *slog.Logger) *Invoker {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Invoker{bindings: map[string]Command{}, log: log}
}

// Bind maps trigger to cmd, replacing any previous binding.
func (i *Invoker) Bind(trigger string, cmd Command) {
	if _, ok := i.bindings[trigger]; !ok {
		i.order = append(i.order, trigger)
	}
	i.bindings[trigger] = cmd
}

// Trigger executes the command bound to trigger.
func (i *Invoker) Trigger(trigger string) error {
	cmd, ok := i.bindings[trigger]
	if !ok || cmd == nil {
		return fmt.Errorf("trigger %q: %w", trigger, ErrUnknownTrigger)
	}
	i.log.Debug("command.triggered", "trigger", trigger, "command", cmd.Describe())
	return cmd.Execute()
}

// Triggers lists bound triggers in binding order.
func (i *Invoker) Triggers() []string {
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}
