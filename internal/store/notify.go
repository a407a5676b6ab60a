package store

import "sync"

type listener[T any] struct {
	id int
	fn func(T)
}

// listeners fans state snapshots out to subscribers in subscription order.
// Callbacks run on the goroutine that changed the state, outside any store lock.
type listeners[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []listener[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, listener[T]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			for i, s := range l.subs {
				if s.id == id {
					l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (l *listeners[T]) publish(v T) {
	l.mu.Lock()
	subs := make([]listener[T], len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

func (l *listeners[T]) clear() {
	l.mu.Lock()
	l.subs = nil
	l.mu.Unlock()
}

func (l *listeners[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}
