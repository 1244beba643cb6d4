// Package observer implements a synchronous subject/observer registry and a
// topic-keyed variant of it.
package observer

import "sync"

// Observer receives the subject's latest state.
type Observer[T any] interface {
	Update(v T)
}

// Func adapts a function to Observer. Func values are not comparable, so a
// Func can only be unsubscribed through a pointer to it.
type Func[T any] func(v T)

func (f Func[T]) Update(v T) { f(v) }

// Subject keeps observers in subscription order. Duplicates are kept; each
// registration is notified.
type Subject[T any] struct {
	mu        sync.Mutex
	observers []Observer[T]
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe appends o.
func (s *Subject[T]) Subscribe(o Observer[T]) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Unsubscribe removes every registration of o. It is a no-op if o is absent.
// Observers are matched by identity, so o must be comparable (pointer types are).
func (s *Subject[T]) Unsubscribe(o Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.observers[:0]
	for _, cur := range s.observers {
		if !same(cur, o) {
			kept = append(kept, cur)
		}
	}
	for i := len(kept); i < len(s.observers); i++ {
		s.observers[i] = nil
	}
	s.observers = kept
}

// Notify delivers v to the observers registered when Notify was called.
// Changes made to the registry by observers apply to the next Notify.
func (s *Subject[T]) Notify(v T) {
	s.mu.Lock()
	snapshot := make([]Observer[T], len(s.observers))
	copy(snapshot, s.observers)
	s.mu.Unlock()

	for _, o := range snapshot {
		o.Update(v)
	}
}

// Len returns the number of registrations.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func same[T any](a, b Observer[T]) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
