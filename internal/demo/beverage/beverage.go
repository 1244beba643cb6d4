// Package beverage prepares caffeine drinks with one fixed recipe: boil
// water, brew, pour, add condiments. Tea and coffee only differ in the brew
// and condiment steps.
package beverage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/template"
)

// Recipe is the set of hooks every beverage must provide.
type Recipe interface {
	Brew(out io.Writer) error
	AddCondiments(out io.Writer) error
}

type Tea struct{}

func (Tea) Brew(out io.Writer) error {
	_, err := fmt.Fprintln(out, "Steeping the tea")
	return err
}

func (Tea) AddCondiments(out io.Writer) error {
	_, err := fmt.Fprintln(out, "Adding lemon")
	return err
}

type Coffee struct{}

func (Coffee) Brew(out io.Writer) error {
	_, err := fmt.Fprintln(out, "Dripping coffee through filter")
	return err
}

func (Coffee) AddCondiments(out io.Writer) error {
	_, err := fmt.Fprintln(out, "Adding sugar and milk")
	return err
}

var (
	_ Recipe = Tea{}
	_ Recipe = Coffee{}
)

// NewPreparation builds the skeleton writing to out.
func NewPreparation(out io.Writer, log *slog.Logger) *template.Skeleton[Recipe] {
	say := func(line string) func() error {
		return func() error {
			_, err := fmt.Fprintln(out, line)
			return err
		}
	}
	return template.New("prepare-recipe",
		template.Fixed[Recipe]("boil-water", say("Boiling water")),
		template.Hook("brew", func(r Recipe) error { return r.Brew(out) }),
		template.Fixed[Recipe]("pour-in-cup", say("Pouring into cup")),
		template.Hook("add-condiments", func(r Recipe) error { return r.AddCondiments(out) }),
	).WithLogger(log)
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "template.beverage",
		Pattern: "template-method",
		Summary: "Tea and coffee prepared by the same four-step recipe",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	prep := NewPreparation(out, d.log)
	for i, r := range []Recipe{Tea{}, Coffee{}} {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := prep.Run(r); err != nil {
			return err
		}
	}
	return nil
}
