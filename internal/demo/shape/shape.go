// Package shape computes areas and perimeters of shapes with two visitors.
package shape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/visitor"
)

type Visitor interface {
	VisitCircle(c Circle)
	VisitRectangle(r Rectangle)
}

type Shape interface {
	Accept(v Visitor)
}

type Circle struct {
	Radius float64
}

func (c Circle) Accept(v Visitor) { v.VisitCircle(c) }

type Rectangle struct {
	Width, Height float64
}

func (r Rectangle) Accept(v Visitor) { v.VisitRectangle(r) }

// Measurement is one computed value.
type Measurement struct {
	Shape string
	Value float64
}

// AreaCalculator records the area of each visited shape.
type AreaCalculator struct {
	Results []Measurement
}

func (a *AreaCalculator) VisitCircle(c Circle) {
	a.Results = append(a.Results, Measurement{"Circle", math.Pi * c.Radius * c.Radius})
}

func (a *AreaCalculator) VisitRectangle(r Rectangle) {
	a.Results = append(a.Results, Measurement{"Rectangle", r.Width * r.Height})
}

// PerimeterCalculator records the perimeter of each visited shape.
type PerimeterCalculator struct {
	Results []Measurement
}

func (p *PerimeterCalculator) VisitCircle(c Circle) {
	p.Results = append(p.Results, Measurement{"Circle", 2 * math.Pi * c.Radius})
}

func (p *PerimeterCalculator) VisitRectangle(r Rectangle) {
	p.Results = append(p.Results, Measurement{"Rectangle", 2 * (r.Width + r.Height)})
}

var (
	_ Visitor = (*AreaCalculator)(nil)
	_ Visitor = (*PerimeterCalculator)(nil)
)

func Areas(shapes []Shape) []Measurement {
	calc := &AreaCalculator{}
	visitor.Each[Visitor](shapes, calc)
	return calc.Results
}

func Perimeters(shapes []Shape) []Measurement {
	calc := &PerimeterCalculator{}
	visitor.Each[Visitor](shapes, calc)
	return calc.Results
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "visitor.shape",
		Pattern: "visitor",
		Summary: "Area and perimeter calculators visiting a circle and a rectangle",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	shapes := []Shape{Circle{Radius: 5}, Rectangle{Width: 10, Height: 20}}

	for _, m := range Areas(shapes) {
		fmt.Fprintf(out, "Area of %s: %.2f\n", m.Shape, m.Value)
	}
	fmt.Fprintln(out, "-----")
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, m := range Perimeters(shapes) {
		fmt.Fprintf(out, "Perimeter of %s: %.2f\n", m.Shape, m.Value)
	}
	return nil
}
