// Package vesselform coordinates three booking form controls through a
// mediator: picking a vessel code unlocks the VVD select, and filling the VVD
// ticks the trunk feeder checkbox.
package vesselform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/mediator"
)

type Event string

const (
	EventVesselCode Event = "vCode"
	EventVVD        Event = "vvd"
)

type VesselCodeSelect struct {
	mediator.Base[Event]
	filled bool
	out    io.Writer
}

func (s *VesselCodeSelect) Filled() bool { return s.filled }

// Fill selects a vessel code and reports it.
func (s *VesselCodeSelect) Fill() {
	fmt.Fprintln(s.out, "Vessel code filled")
	s.filled = true
	s.Changed(s, EventVesselCode)
}

type VvdSelect struct {
	mediator.Base[Event]
	filled bool
	out    io.Writer
}

func (s *VvdSelect) Filled() bool { return s.filled }

// CanFill enables and fills the VVD, then reports it.
func (s *VvdSelect) CanFill() {
	fmt.Fprintln(s.out, "VVD can fill")
	s.filled = true
	fmt.Fprintln(s.out, "VVD filled")
	s.Changed(s, EventVVD)
}

type Checkbox struct {
	mediator.Base[Event]
	checked bool
}

func (c *Checkbox) Checked() bool    { return c.checked }
func (c *Checkbox) Set(checked bool) { c.checked = checked }

// Form owns the three controls and the rules between them.
type Form struct {
	VesselCode  *VesselCodeSelect
	VVD         *VvdSelect
	TrunkFeeder *Checkbox
	rules       *mediator.Rules[Event]
}

func NewForm(out io.Writer, log *slog.Logger) *Form {
	f := &Form{
		VesselCode:  &VesselCodeSelect{out: out},
		VVD:         &VvdSelect{out: out},
		TrunkFeeder: &Checkbox{},
		rules:       mediator.NewRules[Event](log),
	}
	announce := func(_ any, e Event) {
		fmt.Fprintf(out, "Mediator reacts on %s and triggers following operations:\n", e)
	}
	f.rules.
		Attach(f.VesselCode, f.VVD, f.TrunkFeeder).
		On(EventVesselCode, announce).
		On(EventVesselCode, func(any, Event) { f.VVD.CanFill() }).
		On(EventVVD, announce).
		On(EventVVD, func(any, Event) { f.TrunkFeeder.Set(true) })
	return f
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "mediator.vessel",
		Pattern: "mediator",
		Summary: "Vessel code, VVD and trunk feeder controls coordinated by a mediator",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	f := NewForm(out, d.log)
	fmt.Fprintln(out, "Client fill vessel code.")
	f.VesselCode.Fill()
	fmt.Fprintf(out, "Current state of checkbox: %t\n", f.TrunkFeeder.Checked())
	return ctx.Err()
}
