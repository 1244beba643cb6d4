package vesselform

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestForm_FillCascades(t *testing.T) {
	var out bytes.Buffer
	f := NewForm(&out, nil)

	if f.TrunkFeeder.Checked() || f.VVD.Filled() {
		t.Fatalf("controls should start empty")
	}

	f.VesselCode.Fill()

	if !f.VesselCode.Filled() || !f.VVD.Filled() || !f.TrunkFeeder.Checked() {
		t.Fatalf("expected every control to be set, got vessel=%v vvd=%v trunk=%v",
			f.VesselCode.Filled(), f.VVD.Filled(), f.TrunkFeeder.Checked())
	}
}

func TestForm_NestedNotificationsCompleteInOrder(t *testing.T) {
	var out bytes.Buffer
	f := NewForm(&out, nil)
	f.VesselCode.Fill()

	want := []string{
		"Vessel code filled",
		"Mediator reacts on vCode and triggers following operations:",
		"VVD can fill",
		"VVD filled",
		"Mediator reacts on vvd and triggers following operations:",
	}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(got), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestVesselCodeSelect_WithoutMediator(t *testing.T) {
	var out bytes.Buffer
	s := &VesselCodeSelect{out: &out}
	s.Fill()
	if !s.Filled() {
		t.Fatalf("expected select to be filled")
	}
}

func TestDemo_Run(t *testing.T) {
	var out bytes.Buffer
	if err := NewDemo(nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Current state of checkbox: true") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
