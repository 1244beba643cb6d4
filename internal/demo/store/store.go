// Package store announces new products to subscribed customers, and runs a
// newsletter where readers follow individual topics.
package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/observer"
)

// Store is the subject. Its state is the latest product.
type Store struct {
	*observer.Subject[string]
	latest string
	out    io.Writer
	log    *slog.Logger
}

func NewStore(out io.Writer, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{Subject: observer.NewSubject[string](), out: out, log: log}
}

func (s *Store) Latest() string { return s.latest }

// AddProduct records product and notifies the current subscribers.
func (s *Store) AddProduct(product string) {
	fmt.Fprintf(s.out, "Store: New product available - %s\n", product)
	s.latest = product
	s.log.Debug("store.product.added", "product", product, "subscribers", s.Len())
	s.Notify(product)
}

type Customer struct {
	Name     string
	Received []string
	out      io.Writer
}

func NewCustomer(name string, out io.Writer) *Customer {
	return &Customer{Name: name, out: out}
}

func (c *Customer) Update(product string) {
	c.Received = append(c.Received, product)
	fmt.Fprintf(c.out, "%s received notification: New product available - %s\n", c.Name, product)
}

var _ observer.Observer[string] = (*Customer)(nil)

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "observer.store",
		Pattern: "observer",
		Summary: "Store notifies subscribed customers of new products",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	s := NewStore(out, d.log)
	c1 := NewCustomer("Customer 1", out)
	c2 := NewCustomer("Customer 2", out)

	s.Subscribe(c1)
	s.Subscribe(c2)
	s.AddProduct("Phone")

	if err := ctx.Err(); err != nil {
		return err
	}

	s.Unsubscribe(c1)
	s.AddProduct("Laptop")
	return nil
}
