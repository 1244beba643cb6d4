// Package schedule holds the vessel schedule demos: a validation chain that
// guards appended rows, and undoable add/edit/remove commands.
package schedule

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/patternkit/internal/domain"
)

var demoStart = time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)

// ValidationDemo feeds a few candidate rows through a Book.
type ValidationDemo struct {
	log *slog.Logger
}

func NewValidationDemo(log *slog.Logger) *ValidationDemo {
	return &ValidationDemo{log: log}
}

func (d *ValidationDemo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "chain.schedule",
		Pattern: "chain-of-responsibility",
		Summary: "Schedule rows checked by a validation chain before they are appended",
	}
}

func (d *ValidationDemo) Run(ctx context.Context, out io.Writer) error {
	book := NewBook(d.log)
	at := func(h int) time.Time { return demoStart.Add(time.Duration(h) * time.Hour) }

	candidates := []domain.ScheduleRow{
		{VesselCode: "V001", ETA: at(0), ETB: at(2), ETD: at(6), Port: "HKG"},
		{VesselCode: "V002", ETA: at(30), ETB: at(32), ETD: at(36), Port: "SIN"},
		{VesselCode: "V002", ETA: at(60), ETB: at(62), ETD: at(66), Port: "SHG"},
		{VesselCode: "V003", ETA: at(70), ETB: at(68), ETD: at(72), Port: "NGB"},
		{VesselCode: "V004", ETA: at(34), ETB: at(40), ETD: at(44), Port: "QIN"},
		{VesselCode: "V005", ETA: at(60), ETB: at(61), ETD: at(65), Port: "HAN"},
	}
	for _, row := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		got, msg, ok := book.Add(row)
		if !ok {
			fmt.Fprintf(out, "rejected %s: %s\n", row.VesselCode, msg)
			continue
		}
		fmt.Fprintf(out, "accepted %s\n", got)
	}
	fmt.Fprintf(out, "%d rows in schedule\n", len(book.Rows()))
	return nil
}

// CommandDemo walks a Manager through add, edit and remove with undo/redo.
type CommandDemo struct {
	ports []string
	log   *slog.Logger
}

func NewCommandDemo(ports []string, log *slog.Logger) *CommandDemo {
	return &CommandDemo{ports: ports, log: log}
}

func (d *CommandDemo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "command.schedule",
		Pattern: "command",
		Summary: "Add, edit and remove schedule rows with undo and redo",
	}
}

func (d *CommandDemo) Run(ctx context.Context, out io.Writer) error {
	codes := SequentialVesselCodes("V", 1)
	m := NewManager(
		SeedRows(demoStart, 3, d.ports, codes),
		WithVesselCodes(codes),
		WithPorts(d.ports),
		WithManagerLogger(d.log),
	)
	show := func(title string) {
		fmt.Fprintf(out, "== %s\n", title)
		for _, r := range m.Rows() {
			fmt.Fprintf(out, "  %s\n", r)
		}
	}
	show("initial")

	add, err := NewAddCommand(m)
	if err != nil {
		return err
	}
	if err := m.Execute(add); err != nil {
		return err
	}
	show(add.Describe())

	first := m.Rows()[0]
	moved := first.Shift(time.Hour)
	edit, err := NewEditCommand(m, first.VesselCode, moved)
	if err != nil {
		return err
	}
	if err := m.Execute(edit); err != nil {
		return err
	}
	show(edit.Describe())

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := m.Undo(); err != nil {
		return err
	}
	show("undo")
	if _, err := m.Redo(); err != nil {
		return err
	}
	show("redo")

	remove, err := NewRemoveCommand(m, first.VesselCode)
	if err != nil {
		return err
	}
	if err := m.Execute(remove); err != nil {
		return err
	}
	show(remove.Describe())
	if _, err := m.Undo(); err != nil {
		return err
	}
	show("undo")

	fmt.Fprintf(out, "history: %d commands\n", len(m.History()))
	return nil
}
