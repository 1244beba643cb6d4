package chain

import (
	"io"
	"log/slog"
)

// Step tells the chain what to do after a handler ran.
type Step int

const (
	// Forward passes the request to the next handler.
	Forward Step = iota
	// Stop ends the walk.
	Stop
)

func (s Step) String() string {
	if s == Stop {
		return "stop"
	}
	return "forward"
}

// Handler is one link's behavior.
type Handler[Req, Res any] interface {
	Handle(req Req) (Res, Step)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[Req, Res any] func(req Req) (Res, Step)

func (f HandlerFunc[Req, Res]) Handle(req Req) (Res, Step) { return f(req) }

// Outcome summarizes a finished walk.
type Outcome[Res any] struct {
	Last    Res
	Visited int
	Stopped bool
}

// Policy folds an Outcome into the chain result.
type Policy[Res any] func(o Outcome[Res], fallback Res) Res

// FirstMatch returns the result of the handler that stopped the walk, or the
// fallback when nobody did.
func FirstMatch[Res any]() Policy[Res] {
	return func(o Outcome[Res], fallback Res) Res {
		if o.Stopped {
			return o.Last
		}
		return fallback
	}
}

// ConsumeAndForward returns the last produced result, or the fallback for an
// empty chain.
func ConsumeAndForward[Res any]() Policy[Res] {
	return func(o Outcome[Res], fallback Res) Res {
		if o.Visited == 0 {
			return fallback
		}
		return o.Last
	}
}

type link[Req, Res any] struct {
	name    string
	handler Handler[Req, Res]
	next    *link[Req, Res]
}

// Chain owns the head of the list. The zero value is not usable; use New.
type Chain[Req, Res any] struct {
	name     string
	head     *link[Req, Res]
	policy   Policy[Res]
	fallback Res
	trace    func(index int, name string)
	log      *slog.Logger
}

type Option[Req, Res any] func(*Chain[Req, Res])

// WithFallback sets the result returned when the policy finds nothing better.
func WithFallback[Req, Res any](v Res) Option[Req, Res] {
	return func(c *Chain[Req, Res]) { c.fallback = v }
}

// WithTrace installs a hook called before each handler runs.
func WithTrace[Req, Res any](fn func(index int, name string)) Option[Req, Res] {
	return func(c *Chain[Req, Res]) { c.trace = fn }
}

func WithLogger[Req, Res any](l *slog.Logger) Option[Req, Res] {
	return func(c *Chain[Req, Res]) {
		if l != nil {
			c.log = l
		}
	}
}

func WithName[Req, Res any](name string) Option[Req, Res] {
	return func(c *Chain[Req, Res]) { c.name = name }
}

// New creates an empty chain. A nil policy means FirstMatch.
func New[Req, Res any](policy Policy[Res], opts ...Option[Req, Res]) *Chain[Req, Res] {
	if policy == nil {
		policy = FirstMatch[Res]()
	}
	c := &Chain[Req, Res]{
		name:   "chain",
		policy: policy,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends h after the current last handler. It panics on a nil handler.
func (c *Chain[Req, Res]) Add(name string, h Handler[Req, Res]) *Chain[Req, Res] {
	if h == nil {
		panic("chain: nil handler")
	}
	l := &link[Req, Res]{name: name, handler: h}
	if c.head == nil {
		c.head = l
		return c
	}
	cur := c.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = l
	return c
}

// AddFunc is Add for plain functions.
func (c *Chain[Req, Res]) AddFunc(name string, fn func(req Req) (Res, Step)) *Chain[Req, Res] {
	if fn == nil {
		panic("chain: nil handler")
	}
	return c.Add(name, HandlerFunc[Req, Res](fn))
}

// Len returns the number of links.
func (c *Chain[Req, Res]) Len() int {
	n := 0
	for l := c.head; l != nil; l = l.next {
		n++
	}
	return n
}

// Names lists the links in walk order.
func (c *Chain[Req, Res]) Names() []string {
	out := make([]string, 0, c.Len())
	for l := c.head; l != nil; l = l.next {
		out = append(out, l.name)
	}
	return out
}

// Handle walks the links in insertion order until one stops or the list ends.
func (c *Chain[Req, Res]) Handle(req Req) Res {
	var o Outcome[Res]

	i := 0
	for l := c.head; l != nil; l = l.next {
		if c.trace != nil {
			c.trace(i, l.name)
		}

		res, step := l.handler.Handle(req)
		o.Last = res
		o.Visited++

		c.log.Debug("chain.link.visited", "chain", c.name, "index", i, "link", l.name, "step", step.String())

		if step == Stop {
			o.Stopped = true
			break
		}
		i++
	}

	c.log.Debug("chain.handled", "chain", c.name, "visited", o.Visited, "stopped", o.Stopped)
	return c.policy(o, c.fallback)
}
