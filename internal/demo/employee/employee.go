// Package employee computes salaries of full-time and part-time employees
// with a visitor.
package employee

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/visitor"
)

type Visitor interface {
	VisitFullTime(e FullTime)
	VisitPartTime(e PartTime)
}

type Employee interface {
	Accept(v Visitor)
}

type FullTime struct {
	Salary float64
}

func (e FullTime) Accept(v Visitor) { v.VisitFullTime(e) }

type PartTime struct {
	HourlyRate  float64
	HoursWorked float64
}

func (e PartTime) Accept(v Visitor) { v.VisitPartTime(e) }

// SalaryCalculator prints each salary and keeps the running total.
type SalaryCalculator struct {
	Total float64
	out   io.Writer
}

func NewSalaryCalculator(out io.Writer) *SalaryCalculator {
	return &SalaryCalculator{out: out}
}

func (c *SalaryCalculator) VisitFullTime(e FullTime) {
	c.Total += e.Salary
	fmt.Fprintf(c.out, "Full-time employee salary: %g\n", e.Salary)
}

func (c *SalaryCalculator) VisitPartTime(e PartTime) {
	salary := e.HourlyRate * e.HoursWorked
	c.Total += salary
	fmt.Fprintf(c.out, "Part-time employee salary: %g\n", salary)
}

var _ Visitor = (*SalaryCalculator)(nil)

// Payroll returns the total salary of staff.
func Payroll(staff []Employee, out io.Writer) float64 {
	calc := NewSalaryCalculator(out)
	visitor.Each[Visitor](staff, calc)
	return calc.Total
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "visitor.employee",
		Pattern: "visitor",
		Summary: "Salary calculator visiting full-time and part-time employees",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	staff := []Employee{
		FullTime{Salary: 3000},
		PartTime{HourlyRate: 20, HoursWorked: 120},
	}
	total := Payroll(staff, out)
	fmt.Fprintf(out, "Total payroll: %g\n", total)
	return ctx.Err()
}
