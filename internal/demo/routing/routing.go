// Package routing sends JSON requests down a first-match chain. Each handler
// claims the requests whose JSONPath field has the value it serves.
package routing

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/PaesslerAG/jsonpath"
	jsoniter "github.com/json-iterator/go"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/chain"
)

// Unhandled is returned by a router when no route claims the request.
const Unhandled = ""

// Route claims requests where Path evaluates to Want.
type Route struct {
	Name string
	Path string
	Want string
}

// Handler builds the chain link for r. Requests where Path cannot be
// evaluated are forwarded.
func (r Route) Handler(out io.Writer) chain.Handler[any, string] {
	return chain.HandlerFunc[any, string](func(doc any) (string, chain.Step) {
		v, err := jsonpath.Get(r.Path, doc)
		if err != nil {
			return Unhandled, chain.Forward
		}
		if fmt.Sprint(v) != r.Want {
			return Unhandled, chain.Forward
		}
		fmt.Fprintf(out, "%s handled the request.\n", r.Name)
		return r.Name, chain.Stop
	})
}

// NewRouter wires routes in the given order.
func NewRouter(out io.Writer, log *slog.Logger, routes ...Route) *chain.Chain[any, string] {
	c := chain.New[any, string](
		chain.FirstMatch[string](),
		chain.WithFallback[any](Unhandled),
		chain.WithName[any, string]("routing"),
		chain.WithLogger[any, string](log),
	)
	for _, r := range routes {
		c.Add(r.Name, r.Handler(out))
	}
	return c
}

// ParseRequest decodes a raw JSON request document.
func ParseRequest(raw string) (any, error) {
	var doc any
	if err := jsoniter.ConfigFastest.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &domain.OpError{
			Op:   "routing.parse",
			Kind: domain.KindValidation,
			Err:  err,
		}
	}
	return doc, nil
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "chain.routing",
		Pattern: "chain-of-responsibility",
		Summary: "JSON requests routed to the first handler whose $.kind matches",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	router := NewRouter(out, d.log,
		Route{Name: "Handler1", Path: "$.kind", Want: "Handler1"},
		Route{Name: "Handler2", Path: "$.kind", Want: "Handler2"},
	)

	requests := []string{
		`{"kind": "Handler1"}`,
		`{"kind": "Handler2"}`,
		`{"kind": "Unknown"}`,
	}
	for _, raw := range requests {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := ParseRequest(raw)
		if err != nil {
			return err
		}
		if router.Handle(doc) == Unhandled {
			fmt.Fprintf(out, "No handler for %s.\n", raw)
		}
	}
	return nil
}
