// Package visitor holds the traversal helpers shared by the visitor families.
//
// Each family defines its own element interface with an Accept method and a
// visitor interface with one Visit method per element type. Elements pick the
// Visit method themselves (double dispatch), so the element set is closed and
// the visitor set is open.
package visitor

import "fmt"

// Acceptor is an element of a family whose visits may fail.
type Acceptor[V any] interface {
	Accept(v V) error
}

// Visitable is an element of a family whose visits never fail.
type Visitable[V any] interface {
	Accept(v V)
}

// Walk has every element accept v in order and returns the first error,
// annotated with the element index. Elements after the failing one are not
// visited.
func Walk[V any, E Acceptor[V]](elements []E, v V) error {
	for i, e := range elements {
		if err := e.Accept(v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// WalkAll visits every element regardless of failures and returns one error
// slot per element (nil when the visit passed).
func WalkAll[V any, E Acceptor[V]](elements []E, v V) []error {
	out := make([]error, len(elements))
	for i, e := range elements {
		out[i] = e.Accept(v)
	}
	return out
}

// Each has every element accept v in order.
func Each[V any, E Visitable[V]](elements []E, v V) {
	for _, e := range elements {
		e.Accept(v)
	}
}
