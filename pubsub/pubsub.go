package pubsub

import "sync"

// Broker is a minimal named-event fan-out. Publish delivers the payload
// synchronously to every callback subscribed to the event at publish time.
// Delivery order across subscribers is unspecified.
//
// Publish iterates a stable snapshot of the subscriber list, so callbacks may
// subscribe, unsubscribe, and publish again on the same call stack.
type Broker[T any] struct {
	mu   sync.Mutex
	next int
	subs map[string][]subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New returns an empty Broker.
func New[T any]() *Broker[T] {
	return &Broker[T]{subs: make(map[string][]subscriber[T])}
}

// Subscribe registers fn for the event and returns its cancel function.
// Cancel is idempotent.
func (b *Broker[T]) Subscribe(event string, fn func(T)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[event] = append(b.subs[event], subscriber[T]{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[event]
		for i, s := range list {
			if s.id == id {
				b.subs[event] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every callback currently subscribed to the event.
func (b *Broker[T]) Publish(event string, payload T) {
	b.mu.Lock()
	snap := append([]subscriber[T](nil), b.subs[event]...)
	b.mu.Unlock()

	for _, s := range snap {
		s.fn(payload)
	}
}

// Subscribers reports how many callbacks are registered for the event.
func (b *Broker[T]) Subscribers(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[event])
}
