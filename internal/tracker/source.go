package tracker

import "sync"

// ScrollSource delivers scroll notifications. Subscribe returns a func that
// removes the handler; calling it more than once is a no-op.
type ScrollSource interface {
	Subscribe(handler func()) (unsubscribe func())
}

// Emitter is an in-process ScrollSource. Handlers run synchronously on the
// goroutine calling Emit, in subscription order.
type Emitter struct {
	mu       sync.Mutex
	nextID   int
	handlers []subscription
}

type subscription struct {
	id      int
	handler func()
}

// Subscribe implements ScrollSource.
func (e *Emitter) Subscribe(handler func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.handlers = append(e.handlers, subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Emitter) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sub := range e.handlers {
		if sub.id == id {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Emit notifies every current subscriber.
func (e *Emitter) Emit() {
	e.mu.Lock()
	handlers := make([]func(), len(e.handlers))
	for i, sub := range e.handlers {
		handlers[i] = sub.handler
	}
	e.mu.Unlock()

	for _, handler := range handlers {
		handler()
	}
}

// Len returns the number of attached handlers.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
