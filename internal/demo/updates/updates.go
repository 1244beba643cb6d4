// Package updates runs schedule updates past two visitors: one that logs what
// changed and one that rejects invalid updates.
package updates

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/visitor"
)

const (
	MsgInvalidVesselCode = "Invalid vessel code"
	MsgInvalidSequence   = "Invalid ETA-ETB-ETD sequence."
	MsgInvalidDirection  = "Invalid direction"
)

var validDirections = map[string]bool{"North": true, "South": true, "East": true, "West": true}

const stamp = "2006-01-02 15:04"

// LogVisitor describes each update. It never fails.
type LogVisitor struct {
	out io.Writer
}

func NewLogVisitor(out io.Writer) *LogVisitor { return &LogVisitor{out: out} }

func (l *LogVisitor) VisitVesselCode(u domain.VesselCodeUpdate) error {
	fmt.Fprintf(l.out, "Vessel Code updated from %s to %s\n", u.OldVesselCode, u.NewVesselCode)
	return nil
}

func (l *LogVisitor) VisitEstimateTime(u domain.EstimateTimeUpdate) error {
	fmt.Fprintf(l.out, "ETA updated from %s to %s\n", u.OldETA.Format(stamp), u.NewETA.Format(stamp))
	fmt.Fprintf(l.out, "ETB updated from %s to %s\n", u.OldETB.Format(stamp), u.NewETB.Format(stamp))
	fmt.Fprintf(l.out, "ETD updated from %s to %s\n", u.OldETD.Format(stamp), u.NewETD.Format(stamp))
	return nil
}

func (l *LogVisitor) VisitDirection(u domain.DirectionUpdate) error {
	fmt.Fprintf(l.out, "Direction updated from %s to %s\n", u.OldDirection, u.NewDirection)
	return nil
}

// ValidationVisitor returns a *domain.ValidationError for the first problem
// in an update and reports valid ones to out.
type ValidationVisitor struct {
	out io.Writer
}

func NewValidationVisitor(out io.Writer) *ValidationVisitor { return &ValidationVisitor{out: out} }

func (v *ValidationVisitor) VisitVesselCode(u domain.VesselCodeUpdate) error {
	if u.NewVesselCode == "" {
		return &domain.ValidationError{Field: "vessel_code", Message: MsgInvalidVesselCode}
	}
	fmt.Fprintln(v.out, "Vessel code is valid.")
	return nil
}

func (v *ValidationVisitor) VisitEstimateTime(u domain.EstimateTimeUpdate) error {
	if u.NewETA.After(u.NewETB) || u.NewETB.After(u.NewETD) {
		return &domain.ValidationError{Field: "estimate_time", Message: MsgInvalidSequence}
	}
	fmt.Fprintln(v.out, "ETA-ETB-ETD sequence is valid.")
	return nil
}

func (v *ValidationVisitor) VisitDirection(u domain.DirectionUpdate) error {
	if !validDirections[u.NewDirection] {
		return &domain.ValidationError{Field: "direction", Message: MsgInvalidDirection}
	}
	fmt.Fprintln(v.out, "Direction is valid.")
	return nil
}

var (
	_ domain.UpdateVisitor = (*LogVisitor)(nil)
	_ domain.UpdateVisitor = (*ValidationVisitor)(nil)
)

// Log has every update accept a LogVisitor.
func Log(updates []domain.ScheduleUpdate, out io.Writer) error {
	return visitor.Walk[domain.UpdateVisitor](updates, NewLogVisitor(out))
}

// Validate stops at the first invalid update.
func Validate(updates []domain.ScheduleUpdate, out io.Writer) error {
	return visitor.Walk[domain.UpdateVisitor](updates, NewValidationVisitor(out))
}

// ValidateAll checks every update and returns one slot per update.
func ValidateAll(updates []domain.ScheduleUpdate, out io.Writer) []error {
	return visitor.WalkAll[domain.UpdateVisitor](updates, NewValidationVisitor(out))
}

// Sample returns the updates used by the demo.
func Sample() []domain.ScheduleUpdate {
	at := func(day, hour int) time.Time { return time.Date(2024, 9, day, hour, 0, 0, 0, time.UTC) }
	return []domain.ScheduleUpdate{
		domain.VesselCodeUpdate{OldVesselCode: "VES123", NewVesselCode: "VES456"},
		domain.EstimateTimeUpdate{
			OldETA: at(25, 8), NewETA: at(26, 8),
			OldETB: at(25, 12), NewETB: at(26, 12),
			OldETD: at(25, 18), NewETD: at(26, 18),
		},
		domain.DirectionUpdate{OldDirection: "North", NewDirection: "South"},
	}
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "visitor.updates",
		Pattern: "visitor",
		Summary: "Schedule updates logged and validated by two visitors",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	updates := Sample()
	if err := Log(updates, out); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return Validate(updates, out)
}
