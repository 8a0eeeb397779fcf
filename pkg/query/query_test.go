package query_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hitrip/tripops/pkg/query"
	"github.com/hitrip/tripops/pkg/utils/try"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func counting[T any](v T) (func(context.Context) (T, error), *int32) {
	calls := new(int32)
	return func(context.Context) (T, error) {
		atomic.AddInt32(calls, 1)
		return v, nil
	}, calls
}

func TestKey(t *testing.T) {
	k := query.NewKey("trips", 12, "schedules")

	if k.String() != "trips/12/schedules" {
		t.Errorf("string: %s", k.String())
	}
	if !k.HasPrefix(query.NewKey("trips")) || !k.HasPrefix(query.NewKey("trips", 12)) {
		t.Error("prefix should match")
	}
	if k.HasPrefix(query.NewKey("trips", 1)) {
		t.Error("trips/1 should not be a prefix of trips/12")
	}
	if !k.HasPrefix(query.Key{}) {
		t.Error("empty key is a prefix of anything")
	}
	if query.NewKey("a/b").String() == query.NewKey("a", "b").String() {
		t.Error("string form should be unique")
	}
	if w := query.NewKey("places").With(3, "expenses"); w.String() != "places/3/expenses" {
		t.Errorf("with: %s", w.String())
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh value is served from cache", func(t *testing.T) {
		clk := &clock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
		cache := query.New(query.WithClock(clk.Now))
		fetch, calls := counting("jeju")
		q := query.Query[string]{Key: query.NewKey("trips"), Fetch: fetch, StaleTime: time.Minute}

		for i := 0; i < 3; i++ {
			if v := try.To(query.Fetch(ctx, cache, q)).OrFatal(t); v != "jeju" {
				t.Errorf("value: %s", v)
			}
		}
		if *calls != 1 {
			t.Errorf("fetch calls: %d", *calls)
		}

		clk.Advance(time.Minute)
		try.To(query.Fetch(ctx, cache, q)).OrFatal(t)
		if *calls != 2 {
			t.Errorf("stale value should be refetched: calls = %d", *calls)
		}
	})

	t.Run("zero stale time always fetches", func(t *testing.T) {
		cache := query.New()
		fetch, calls := counting(1)
		q := query.Query[int]{Key: query.NewKey("alerts"), Fetch: fetch}

		try.To(query.Fetch(ctx, cache, q)).OrFatal(t)
		try.To(query.Fetch(ctx, cache, q)).OrFatal(t)
		if *calls != 2 {
			t.Errorf("fetch calls: %d", *calls)
		}
	})

	t.Run("disabled query does not fetch", func(t *testing.T) {
		cache := query.New()
		fetch, calls := counting(1)
		q := query.Query[int]{
			Key: query.NewKey("trips", "x"), Fetch: fetch, StaleTime: time.Minute,
			Enabled: func() bool { return false },
		}

		if _, err := query.Fetch(ctx, cache, q); !errors.Is(err, query.ErrDisabled) {
			t.Errorf("unexpected error: %v", err)
		}
		if *calls != 0 {
			t.Errorf("fetch calls: %d", *calls)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		cache := query.New()
		fail := true
		q := query.Query[string]{
			Key: query.NewKey("profile"),
			Fetch: func(context.Context) (string, error) {
				if fail {
					return "", errors.New("fake")
				}
				return "manager01", nil
			},
			StaleTime: time.Hour,
		}

		if _, err := query.Fetch(ctx, cache, q); err == nil {
			t.Fatal("error is expected")
		}
		if cache.Len() != 0 {
			t.Errorf("error should not be cached: len = %d", cache.Len())
		}

		fail = false
		if v := try.To(query.Fetch(ctx, cache, q)).OrFatal(t); v != "manager01" {
			t.Errorf("value: %s", v)
		}
	})

	t.Run("concurrent fetches of one key share one call", func(t *testing.T) {
		cache := query.New()
		release := make(chan struct{})
		calls := new(int32)
		q := query.Query[int]{
			Key: query.NewKey("trips"),
			Fetch: func(context.Context) (int, error) {
				atomic.AddInt32(calls, 1)
				<-release
				return 42, nil
			},
			StaleTime: time.Minute,
		}

		wg := sync.WaitGroup{}
		results := make([]int, 5)
		for i := range results {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := query.Fetch(ctx, cache, q)
				if err != nil {
					t.Error(err)
				}
				results[i] = v
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		if *calls != 1 {
			t.Errorf("fetch calls: %d", *calls)
		}
		for _, r := range results {
			if r != 42 {
				t.Errorf("results: %v", results)
				break
			}
		}
	})

	t.Run("caller can give up waiting", func(t *testing.T) {
		cache := query.New()
		release := make(chan struct{})
		defer close(release)
		q := query.Query[int]{
			Key: query.NewKey("latest"),
			Fetch: func(context.Context) (int, error) {
				<-release
				return 1, nil
			},
		}

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		if _, err := query.Fetch(cctx, cache, q); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("when the first caller gives up, other callers still get the value", func(t *testing.T) {
		cache := query.New()
		started := make(chan struct{})
		release := make(chan struct{})
		q := query.Query[string]{
			Key: query.NewKey("trips"),
			Fetch: func(fctx context.Context) (string, error) {
				close(started)
				select {
				case <-release:
					return "jeju", nil
				case <-fctx.Done():
					return "", fctx.Err()
				}
			},
			StaleTime: time.Minute,
		}

		first, cancelFirst := context.WithCancel(ctx)
		firstErr := make(chan error, 1)
		go func() {
			_, err := query.Fetch(first, cache, q)
			firstErr <- err
		}()
		<-started

		second := make(chan string, 1)
		secondErr := make(chan error, 1)
		go func() {
			v, err := query.Fetch(ctx, cache, q)
			second <- v
			secondErr <- err
		}()

		time.Sleep(20 * time.Millisecond)
		cancelFirst()
		if err := <-firstErr; !errors.Is(err, context.Canceled) {
			t.Errorf("first caller: unexpected error: %v", err)
		}

		close(release)
		if v, err := <-second, <-secondErr; err != nil || v != "jeju" {
			t.Errorf("second caller: got (%q, %v), want (\"jeju\", nil)", v, err)
		}
		if v, ok := query.Peek[string](cache, query.NewKey("trips")); !ok || v != "jeju" {
			t.Errorf("cached: (%q, %v)", v, ok)
		}
	})

	t.Run("a shared fetch is bounded by the fetch timeout", func(t *testing.T) {
		cache := query.New(query.WithFetchTimeout(20 * time.Millisecond))
		q := query.Query[int]{
			Key: query.NewKey("latest"),
			Fetch: func(fctx context.Context) (int, error) {
				<-fctx.Done()
				return 0, fctx.Err()
			},
		}

		if _, err := query.Fetch(ctx, cache, q); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("the fetch receives values of the caller's context", func(t *testing.T) {
		type ctxKey struct{}
		cache := query.New()
		q := query.Query[string]{
			Key: query.NewKey("profile"),
			Fetch: func(fctx context.Context) (string, error) {
				v, _ := fctx.Value(ctxKey{}).(string)
				return v, nil
			},
		}

		vctx := context.WithValue(ctx, ctxKey{}, "manager01")
		if v := try.To(query.Fetch(vctx, cache, q)).OrFatal(t); v != "manager01" {
			t.Errorf("value: %q", v)
		}
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("entries under the prefix are refetched", func(t *testing.T) {
		cache := query.New()
		tripsFetch, tripsCalls := counting([]string{"jeju"})
		schedFetch, schedCalls := counting([]int{1, 2})
		placesFetch, placesCalls := counting([]string{"udo"})

		qs := []func(){
			func() {
				try.To(query.Fetch(ctx, cache, query.Query[[]string]{
					Key: query.NewKey("trips"), Fetch: tripsFetch, StaleTime: time.Hour,
				})).OrFatal(t)
			},
			func() {
				try.To(query.Fetch(ctx, cache, query.Query[[]int]{
					Key: query.NewKey("trips", 1, "schedules"), Fetch: schedFetch, StaleTime: time.Hour,
				})).OrFatal(t)
			},
			func() {
				try.To(query.Fetch(ctx, cache, query.Query[[]string]{
					Key: query.NewKey("places"), Fetch: placesFetch, StaleTime: time.Hour,
				})).OrFatal(t)
			},
		}
		for _, q := range qs {
			q()
		}

		if n := cache.Invalidate(query.NewKey("trips")); n != 2 {
			t.Errorf("invalidated: %d", n)
		}
		if _, ok := query.Peek[[]string](cache, query.NewKey("trips")); !ok {
			t.Error("invalidated value should be still peekable")
		}

		for _, q := range qs {
			q()
		}
		if *tripsCalls != 2 || *schedCalls != 2 || *placesCalls != 1 {
			t.Errorf("calls: trips=%d, schedules=%d, places=%d", *tripsCalls, *schedCalls, *placesCalls)
		}
	})

	t.Run("value fetched across invalidation is stale", func(t *testing.T) {
		cache := query.New()
		started := make(chan struct{})
		release := make(chan struct{})
		calls := new(int32)
		q := query.Query[int]{
			Key: query.NewKey("trips"),
			Fetch: func(context.Context) (int, error) {
				if atomic.AddInt32(calls, 1) == 1 {
					close(started)
					<-release
				}
				return 1, nil
			},
			StaleTime: time.Hour,
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			query.Fetch(ctx, cache, q)
		}()
		<-started
		cache.Invalidate(query.NewKey("trips"))
		close(release)
		<-done

		try.To(query.Fetch(ctx, cache, q)).OrFatal(t)
		if *calls != 2 {
			t.Errorf("fetch calls: %d", *calls)
		}
	})

	t.Run("removed entries are gone", func(t *testing.T) {
		cache := query.New()
		fetch, _ := counting(1)
		for _, k := range []query.Key{query.NewKey("places", 1), query.NewKey("places", 2), query.NewKey("trips")} {
			try.To(query.Fetch(ctx, cache, query.Query[int]{Key: k, Fetch: fetch, StaleTime: time.Hour})).OrFatal(t)
		}

		if n := cache.Remove(query.NewKey("places")); n != 2 {
			t.Errorf("removed: %d", n)
		}
		if cache.Len() != 1 {
			t.Errorf("len: %d", cache.Len())
		}
		if _, ok := query.Peek[int](cache, query.NewKey("places", 1)); ok {
			t.Error("removed value is peekable")
		}
	})
}
