// Package demo registers every pattern demonstration under a stable name.
package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aalvaropc/patternkit/internal/demo/bank"
	"github.com/aalvaropc/patternkit/internal/demo/beverage"
	"github.com/aalvaropc/patternkit/internal/demo/chat"
	"github.com/aalvaropc/patternkit/internal/demo/creature"
	"github.com/aalvaropc/patternkit/internal/demo/employee"
	"github.com/aalvaropc/patternkit/internal/demo/form"
	"github.com/aalvaropc/patternkit/internal/demo/payment"
	"github.com/aalvaropc/patternkit/internal/demo/routing"
	"github.com/aalvaropc/patternkit/internal/demo/schedule"
	"github.com/aalvaropc/patternkit/internal/demo/shape"
	"github.com/aalvaropc/patternkit/internal/demo/store"
	"github.com/aalvaropc/patternkit/internal/demo/updates"
	"github.com/aalvaropc/patternkit/internal/demo/vesselform"
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// Catalog is an ordered, name-indexed set of demos.
type Catalog struct {
	demos  []ports.Demo
	byName map[string]ports.Demo
}

var _ ports.DemoCatalog = (*Catalog)(nil)

// NewCatalog registers the built-in demos. cfg supplies the port rotation of
// the schedule demos.
func NewCatalog(cfg domain.Config, log *slog.Logger) *Catalog {
	return NewCatalogOf(
		creature.NewDemo(log),
		routing.NewDemo(log),
		schedule.NewValidationDemo(log),
		form.NewDemo(log),
		bank.NewDemo(log),
		schedule.NewCommandDemo(cfg.Schedule.Ports, log),
		vesselform.NewDemo(log),
		chat.NewDemo(nil, log),
		store.NewDemo(log),
		store.NewTopicsDemo(log),
		payment.NewDemo(log),
		beverage.NewDemo(log),
		updates.NewDemo(log),
		employee.NewDemo(log),
		shape.NewDemo(log),
	)
}

// NewCatalogOf builds a catalog from arbitrary demos. Duplicate names panic.
func NewCatalogOf(demos ...ports.Demo) *Catalog {
	c := &Catalog{byName: make(map[string]ports.Demo, len(demos))}
	for _, d := range demos {
		name := d.Ref().Name
		if _, dup := c.byName[name]; dup {
			panic(fmt.Sprintf("demo: duplicate name %q", name))
		}
		c.byName[name] = d
		c.demos = append(c.demos, d)
	}
	return c
}

// List returns the refs in registration order.
func (c *Catalog) List() []domain.DemoRef {
	out := make([]domain.DemoRef, len(c.demos))
	for i, d := range c.demos {
		out[i] = d.Ref()
	}
	return out
}

// Lookup finds a demo by exact name (case-insensitive).
func (c *Catalog) Lookup(name string) (ports.Demo, error) {
	if d, ok := c.byName[name]; ok {
		return d, nil
	}
	for n, d := range c.byName {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return nil, &domain.OpError{
		Op:   "demo.lookup",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("%w: demo %q", domain.ErrNotFound, name),
	}
}
