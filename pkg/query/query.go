// Package query is a keyed cache of fetched resources.
//
// Each Query declares a Key, a fetch function and how long its result stays fresh.
// Fetch returns a fresh cached value if there is; otherwise it calls the fetch function.
// Concurrent fetches of one Key share one call.
//
// Mutations do not write the cache directly. They Invalidate keys, and the next
// Fetch of those keys goes to the backend again.
package query

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrDisabled is returned by Fetch when the Query is not enabled.
var ErrDisabled = errors.New("query is not enabled")

// Query declares how a resource is fetched and cached.
type Query[T any] struct {
	Key Key

	Fetch func(context.Context) (T, error)

	// How long a fetched value is fresh. Zero means always stale.
	StaleTime time.Duration

	// Interval to refetch periodically. Zero means no periodic refetch.
	//
	// The cache does not refetch by itself; pollers read this.
	RefetchInterval time.Duration

	// When Enabled is not nil and it returns false, Fetch fails with ErrDisabled
	// without calling the fetch function.
	Enabled func() bool
}

func (q Query[T]) enabled() bool {
	return q.Enabled == nil || q.Enabled()
}

type entry struct {
	key       Key
	value     any
	fetchedAt time.Time
	stale     bool
}

// flight is a fetch in progress.
type flight struct {
	key Key

	// set when the key is invalidated or removed while fetching.
	invalidated bool
}

// DefaultFetchTimeout bounds a shared fetch. See WithFetchTimeout.
const DefaultFetchTimeout = time.Minute

// Cache holds fetched values. The zero value is not usable; use New.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	inflight map[string]*flight
	group    singleflight.Group
	now      func() time.Time

	fetchTimeout time.Duration
}

type Option func(*Cache)

// WithClock replaces time.Now of the Cache.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithFetchTimeout bounds each shared fetch.
//
// A shared fetch does not stop when one of its callers gives up,
// so it is bounded by this timeout instead.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) { c.fetchTimeout = d }
}

func New(options ...Option) *Cache {
	c := &Cache{
		entries:      map[string]*entry{},
		inflight:     map[string]*flight{},
		now:          time.Now,
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// Fetch returns the value of q.
//
// A cached value is returned as is while it is fresh.
// Otherwise q.Fetch is called; when other goroutines are fetching the same key,
// their result is shared.
// Errors are not cached: the previous value, if any, stays in the cache.
//
// If ctx is done before the value is ready, Fetch returns ctx.Err().
// The shared call keeps running for the other callers; it gets the values of ctx
// but not its cancellation.
func Fetch[T any](ctx context.Context, c *Cache, q Query[T]) (T, error) {
	var zero T
	if !q.enabled() {
		return zero, ErrDisabled
	}

	ks := q.Key.String()
	if v, ok := fresh[T](c, ks, q.StaleTime); ok {
		return v, nil
	}

	ch := c.group.DoChan(ks, func() (any, error) {
		f := &flight{key: q.Key}
		c.mu.Lock()
		c.inflight[ks] = f
		c.mu.Unlock()

		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		v, err := q.Fetch(fctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.inflight, ks)
		if err != nil {
			return nil, err
		}
		c.entries[ks] = &entry{
			key:       q.Key,
			value:     v,
			fetchedAt: c.now(),
			// the value may be older than the invalidation.
			stale: f.invalidated,
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		v, ok := r.Val.(T)
		if !ok {
			return zero, errors.New("query: value type mismatch for " + ks)
		}
		return v, nil
	}
}

func fresh[T any](c *Cache, ks string, staleTime time.Duration) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ks]
	if !ok || e.stale {
		return zero, false
	}
	if c.now().Sub(e.fetchedAt) >= staleTime {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}

// Peek returns the cached value of key, fresh or stale, without fetching.
func Peek[T any](c *Cache, key Key) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}

// Invalidate marks entries whose key has prefix as stale.
//
// Fetches in flight for those keys store their result as stale.
// It returns the number of invalidated entries.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			e.stale = true
			n++
		}
	}
	c.invalidateFlights(prefix)
	return n
}

// Remove drops entries whose key has prefix.
//
// Fetches in flight for those keys store their result as stale.
// It returns the number of removed entries.
func (c *Cache) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for ks, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, ks)
			n++
		}
	}
	c.invalidateFlights(prefix)
	return n
}

// c.mu should be locked.
func (c *Cache) invalidateFlights(prefix Key) {
	for _, f := range c.inflight {
		if f.key.HasPrefix(prefix) {
			f.invalidated = true
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
