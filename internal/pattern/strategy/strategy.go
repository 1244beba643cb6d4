// Package strategy holds one swappable behavior and delegates to it.
package strategy

import (
	"errors"
	"sync"
)

var ErrNoStrategy = errors.New("no strategy set")

// Strategy is the interchangeable behavior.
type Strategy[A, R any] interface {
	Apply(args A) (R, error)
}

// Func adapts a function to Strategy.
type Func[A, R any] func(args A) (R, error)

func (f Func[A, R]) Apply(args A) (R, error) { return f(args) }

// Context delegates Perform to exactly one active strategy.
type Context[A, R any] struct {
	mu     sync.RWMutex
	active Strategy[A, R]
}

// New fails fast when s is nil.
func New[A, R any](s Strategy[A, R]) (*Context[A, R], error) {
	if s == nil {
		return nil, ErrNoStrategy
	}
	return &Context[A, R]{active: s}, nil
}

// Set swaps the active strategy. A nil strategy is rejected and the current
// one stays active.
func (c *Context[A, R]) Set(s Strategy[A, R]) error {
	if s == nil {
		return ErrNoStrategy
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = s
	return nil
}

// Perform delegates unconditionally. A zero Context returns ErrNoStrategy.
func (c *Context[A, R]) Perform(args A) (R, error) {
	c.mu.RLock()
	s := c.active
	c.mu.RUnlock()

	if s == nil {
		var zero R
		return zero, ErrNoStrategy
	}
	return s.Apply(args)
}
