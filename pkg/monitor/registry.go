package monitor

import (
	"context"
	"sync"
)

type registered[T any] struct {
	poller *Poller[T]
	refs   int
	cancel context.CancelFunc
	done   chan struct{}
}

// Registry runs a Poller per key while the key is attached.
//
// The first Attach of a key starts its Poller, and when the last attachment is
// detached, the Poller stops.
type Registry[K comparable, T any] struct {
	ctx     context.Context
	factory func(K) *Poller[T]

	mu      sync.Mutex
	entries map[K]*registered[T]
}

// NewRegistry creates a Registry.
//
// Pollers run until they are detached or ctx is done.
func NewRegistry[K comparable, T any](ctx context.Context, factory func(K) *Poller[T]) *Registry[K, T] {
	return &Registry[K, T]{
		ctx:     ctx,
		factory: factory,
		entries: map[K]*registered[T]{},
	}
}

// Attach returns the running Poller for key, starting it if needed.
//
// Call detach when the Poller is no longer needed. Calling detach twice is safe.
func (r *Registry[K, T]) Attach(key K) (poller *Poller[T], detach func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		ctx, cancel := context.WithCancel(r.ctx)
		e = &registered[T]{
			poller: r.factory(key),
			cancel: cancel,
			done:   make(chan struct{}),
		}
		r.entries[key] = e
		go func() {
			defer close(e.done)
			e.poller.Run(ctx)
		}()
	}
	e.refs++

	once := sync.Once{}
	return e.poller, func() {
		once.Do(func() { r.detach(key, e) })
	}
}

func (r *Registry[K, T]) detach(key K, e *registered[T]) {
	r.mu.Lock()
	e.refs--
	last := e.refs <= 0
	if last && r.entries[key] == e {
		delete(r.entries, key)
	}
	r.mu.Unlock()

	if last {
		e.cancel()
		<-e.done
	}
}

// Active returns the number of running pollers.
func (r *Registry[K, T]) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close stops all pollers and waits them.
func (r *Registry[K, T]) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = map[K]*registered[T]{}
	r.mu.Unlock()

	for _, e := range entries {
		e.cancel()
	}
	for _, e := range entries {
		<-e.done
	}
}
