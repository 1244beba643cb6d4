package employee

import (
	"bytes"
	"context"
	"testing"
)

func TestPayroll(t *testing.T) {
	var out bytes.Buffer
	total := Payroll([]Employee{
		FullTime{Salary: 3000},
		PartTime{HourlyRate: 20, HoursWorked: 120},
		PartTime{HourlyRate: 10, HoursWorked: 0},
	}, &out)

	if total != 5400 {
		t.Fatalf("expected 5400, got %g", total)
	}
	want := "Full-time employee salary: 3000\n" +
		"Part-time employee salary: 2400\n" +
		"Part-time employee salary: 0\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestPayroll_Empty(t *testing.T) {
	var out bytes.Buffer
	if total := Payroll(nil, &out); total != 0 || out.Len() != 0 {
		t.Fatalf("expected nothing, got %g %q", total, out.String())
	}
}

func TestDemo_Run(t *testing.T) {
	var out bytes.Buffer
	if err := NewDemo(nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Total payroll: 5400")) {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
