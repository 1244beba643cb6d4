// Package command decouples triggers from actions and keeps an undo/redo
// history of executed commands.
package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Command is an invertible action. Undo must restore the state captured when
// the command was built, not the state seen at Execute time.
type Command interface {
	Execute() error
	Undo() error
	Describe() string
}

// Func builds a Command from two closures. A nil Revert makes Undo a no-op.
type Func struct {
	Name   string
	Do     func() error
	Revert func() error
}

func (f Func) Execute() error {
	if f.Do == nil {
		return nil
	}
	return f.Do()
}

func (f Func) Undo() error {
	if f.Revert == nil {
		return nil
	}
	return f.Revert()
}

func (f Func) Describe() string { return f.Name }

// Entry is the public view of a recorded command.
type Entry struct {
	ID          uuid.UUID
	Description string
	At          time.Time
}

type record struct {
	entry Entry
	cmd   Command
}

// History is the invoker with undo and redo stacks. Any fresh Execute clears
// the redo stack, so there is a single timeline.
type History struct {
	mu     sync.Mutex
	done   []record
	undone []record

	limit int
	newID func() uuid.UUID
	now   func() time.Time
	log   *slog.Logger
}

type Option func(*History)

// WithLimit caps the undo depth; the oldest entries are dropped first.
// Zero or negative means unlimited.
func WithLimit(n int) Option {
	return func(h *History) { h.limit = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.log = l
		}
	}
}

// WithIDs overrides entry ID generation (useful for tests).
func WithIDs(gen func() uuid.UUID) Option {
	return func(h *History) { h.newID = gen }
}

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(h *History) { h.now = now }
}

func NewHistory(opts ...Option) *History {
	h := &History{
		newID: uuid.New,
		now:   time.Now,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute runs cmd and records it. A failing command is not recorded and the
// redo stack is left untouched. Commands run outside the lock, so they may
// query their own History.
func (h *History) Execute(cmd Command) (Entry, error) {
	if cmd == nil {
		return Entry{}, errors.New("command: nil command")
	}

	if err := cmd.Execute(); err != nil {
		h.log.Warn("command.execute.failed", "command", cmd.Describe(), "error", err)
		return Entry{}, fmt.Errorf("execute %q: %w", cmd.Describe(), err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	e := Entry{ID: h.newID(), Description: cmd.Describe(), At: h.now()}
	h.done = append(h.done, record{entry: e, cmd: cmd})
	if h.limit > 0 && len(h.done) > h.limit {
		h.done = h.done[len(h.done)-h.limit:]
	}
	h.undone = nil

	h.log.Debug("command.executed", "id", e.ID.String(), "command", e.Description)
	return e, nil
}

// Undo reverts the most recent command. It returns false when there is
// nothing to undo. On error the command goes back on the history stack.
func (h *History) Undo() (bool, error) {
	r, ok := pop(&h.mu, &h.done)
	if !ok {
		return false, nil
	}

	if err := r.cmd.Undo(); err != nil {
		push(&h.mu, &h.done, r)
		return false, fmt.Errorf("undo %q: %w", r.entry.Description, err)
	}
	push(&h.mu, &h.undone, r)

	h.log.Debug("command.undone", "id", r.entry.ID.String(), "command", r.entry.Description)
	return true, nil
}

// Redo re-executes the most recently undone command. It returns false when
// there is nothing to redo. On error the command goes back on the redo stack.
func (h *History) Redo() (bool, error) {
	r, ok := pop(&h.mu, &h.undone)
	if !ok {
		return false, nil
	}

	if err := r.cmd.Execute(); err != nil {
		push(&h.mu, &h.undone, r)
		return false, fmt.Errorf("redo %q: %w", r.entry.Description, err)
	}
	push(&h.mu, &h.done, r)

	h.log.Debug("command.redone", "id", r.entry.ID.String(), "command", r.entry.Description)
	return true, nil
}

func pop(mu *sync.Mutex, stack *[]record) (record, bool) {
	mu.Lock()
	defer mu.Unlock()

	n := len(*stack)
	if n == 0 {
		return record{}, false
	}
	r := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return r, true
}

func push(mu *sync.Mutex, stack *[]record, r record) {
	mu.Lock()
	defer mu.Unlock()
	*stack = append(*stack, r)
}

func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.done) > 0
}

func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undone) > 0
}

// Entries lists the undoable commands, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.done))
	for i, r := range h.done {
		out[i] = r.entry
	}
	return out
}

// Clear drops both stacks without touching any receiver.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.done = nil
	h.undone = nil
}
