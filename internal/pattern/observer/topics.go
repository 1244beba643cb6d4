package observer

import "sync"

// Subscription identifies one callback registered on a topic.
type Subscription[K comparable] struct {
	topic K
	id    uint64
}

func (s Subscription[K]) Topic() K { return s.topic }

type topicEntry[T any] struct {
	id uint64
	fn func(T)
}

// Topics groups callbacks by topic. Publish only reaches callbacks of the
// matching topic, in registration order.
type Topics[K comparable, T any] struct {
	mu     sync.Mutex
	nextID uint64
	byKey  map[K][]topicEntry[T]
}

func NewTopics[K comparable, T any]() *Topics[K, T] {
	return &Topics[K, T]{byKey: map[K][]topicEntry[T]{}}
}

// On registers fn for topic.
func (t *Topics[K, T]) On(topic K, fn func(T)) Subscription[K] {
	if fn == nil {
		panic("observer: nil callback")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	t.byKey[topic] = append(t.byKey[topic], topicEntry[T]{id: t.nextID, fn: fn})
	return Subscription[K]{topic: topic, id: t.nextID}
}

// Off removes the callback behind sub. Unknown subscriptions are ignored.
func (t *Topics[K, T]) Off(sub Subscription[K]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.byKey[sub.topic]
	for i, e := range entries {
		if e.id == sub.id {
			entries = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(t.byKey, sub.topic)
		return
	}
	t.byKey[sub.topic] = entries
}

// Publish delivers v to every callback registered for topic at call time.
// It returns the number of callbacks reached.
func (t *Topics[K, T]) Publish(topic K, v T) int {
	t.mu.Lock()
	entries := make([]topicEntry[T], len(t.byKey[topic]))
	copy(entries, t.byKey[topic])
	t.mu.Unlock()

	for _, e := range entries {
		e.fn(v)
	}
	return len(entries)
}
