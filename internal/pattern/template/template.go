// Package template runs a fixed, ordered sequence of steps where some steps
// belong to the skeleton and others are hooks supplied by a variant.
//
// Hooks are methods of the variant type H. A variant that lacks a hook does
// not satisfy H and fails to compile, so there is no runtime check for
// missing hooks.
package template

import (
	"fmt"
	"io"
	"log/slog"
)

// Step is one stage of a skeleton.
type Step[H any] struct {
	Name string
	run  func(h H) error
	hook bool
}

// Fixed is a step owned by the skeleton; it ignores the variant.
func Fixed[H any](name string, fn func() error) Step[H] {
	if fn == nil {
		return Step[H]{Name: name}
	}
	return Step[H]{Name: name, run: func(H) error { return fn() }}
}

// Hook is a step deferred to the variant.
func Hook[H any](name string, fn func(h H) error) Step[H] {
	return Step[H]{Name: name, run: fn, hook: true}
}

// IsHook reports whether the step is deferred to the variant.
func (s Step[H]) IsHook() bool { return s.hook }

// Skeleton is the algorithm. Its step list is fixed at construction.
type Skeleton[H any] struct {
	name  string
	steps []Step[H]
	log   *slog.Logger
}

// New panics if a step has no function; that is a wiring mistake.
func New[H any](name string, steps ...Step[H]) *Skeleton[H] {
	for i, s := range steps {
		if s.run == nil {
			panic(fmt.Sprintf("template: step %d (%q) has no function", i, s.Name))
		}
	}
	out := make([]Step[H], len(steps))
	copy(out, steps)
	return &Skeleton[H]{
		name:  name,
		steps: out,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

func (s *Skeleton[H]) WithLogger(l *slog.Logger) *Skeleton[H] {
	if l != nil {
		s.log = l
	}
	return s
}

// Names lists the steps in execution order.
func (s *Skeleton[H]) Names() []string {
	out := make([]string, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.Name
	}
	return out
}

// Run executes every step in order against variant h and stops at the
// first error.
func (s *Skeleton[H]) Run(h H) error {
	for i, st := range s.steps {
		s.log.Debug("template.step", "skeleton", s.name, "index", i, "step", st.Name, "hook", st.hook)
		if err := st.run(h); err != nil {
			return fmt.Errorf("%s: step %q: %w", s.name, st.Name, err)
		}
	}
	return nil
}
