// Package mediator keeps cross-component rules in one place. Colleagues only
// know the mediator; the mediator knows every colleague.
package mediator

import (
	"fmt"
	"io"
	"log/slog"
)

// Mediator receives events from colleagues.
type Mediator[E comparable] interface {
	Notify(sender any, event E)
}

// Colleague is anything that reports to a mediator.
type Colleague[E comparable] interface {
	SetMediator(m Mediator[E])
}

// Base is embedded by colleagues. It holds the only reference a colleague is
// allowed to have: the one to its mediator.
type Base[E comparable] struct {
	mediator Mediator[E]
}

func (b *Base[E]) SetMediator(m Mediator[E]) { b.mediator = m }

// Changed reports event on behalf of sender. Without a mediator it does nothing.
func (b *Base[E]) Changed(sender any, event E) {
	if b.mediator != nil {
		b.mediator.Notify(sender, event)
	}
}

// Reaction is one business rule step, run when its event is reported.
type Reaction[E comparable] func(sender any, event E)

// Rules is a Mediator built from an event -> reactions table. Reactions for
// one event run in registration order, and any event they trigger is fully
// processed before Notify returns.
type Rules[E comparable] struct {
	reactions map[E][]Reaction[E]
	depth     int
	log       *slog.Logger
}

func NewRules[E comparable](log *slog.Logger) *Rules[E] {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Rules[E]{reactions: map[E][]Reaction[E]{}, log: log}
}

// Attach points every colleague at r.
func (r *Rules[E]) Attach(cs ...Colleague[E]) *Rules[E] {
	for _, c := range cs {
		c.SetMediator(r)
	}
	return r
}

// On registers a reaction for event.
func (r *Rules[E]) On(event E, react Reaction[E]) *Rules[E] {
	if react == nil {
		panic("mediator: nil reaction")
	}
	r.reactions[event] = append(r.reactions[event], react)
	return r
}

// Notify runs the reactions registered for event. Unknown events are ignored.
func (r *Rules[E]) Notify(sender any, event E) {
	rs := r.reactions[event]

	r.depth++
	defer func() { r.depth-- }()

	r.log.Debug("mediator.notified",
		"event", fmt.Sprint(event),
		"sender", fmt.Sprintf("%T", sender),
		"reactions", len(rs),
		"depth", r.depth,
	)

	for _, react := range rs {
		react(sender, event)
	}
}
