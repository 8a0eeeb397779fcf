// Package loop runs a task repeatedly, waiting between rounds.
package loop

import (
	"context"
	"fmt"
	"time"
)

// Next tells the loop what to do after a round.
//
// The zero value starts the next round immediately.
type Next struct {
	stop bool
	err  error

	wait time.Duration
	at   time.Time
}

func (n Next) String() string {
	switch {
	case n.stop && n.err != nil:
		return fmt.Sprintf("[stop] with error: %v", n.err)
	case n.stop:
		return "[stop]"
	case !n.at.IsZero():
		return fmt.Sprintf("[again] at %s", n.at.Format(time.RFC3339))
	default:
		return fmt.Sprintf("[again] after %s", n.wait)
	}
}

// Again starts the next round after d.
func Again(d time.Duration) Next {
	return Next{wait: max(d, 0)}
}

// At starts the next round at t, or immediately if t has passed.
func At(t time.Time) Next {
	return Next{at: t}
}

// Stop ends the loop. err is returned from Run as is.
func Stop(err error) Next {
	return Next{stop: true, err: err}
}

// Task is a round of the loop.
//
// It receives the value returned by the previous round.
type Task[T any] func(context.Context, T) (T, Next)

type config struct {
	now func() time.Time
}

type Option func(*config)

// WithClock replaces time.Now used to resolve At.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// Run calls task until it returns Stop or ctx is done.
//
// It returns the value of the last round, and the error passed to Stop or ctx.Err().
// If ctx is done before the first round, task is never called.
func Run[T any](ctx context.Context, init T, task Task[T], options ...Option) (T, error) {
	conf := config{now: time.Now}
	for _, o := range options {
		o(&conf)
	}

	value := init
	for {
		if err := ctx.Err(); err != nil {
			return value, err
		}

		v, next := task(ctx, value)
		value = v
		if next.stop {
			return value, next.err
		}

		wait := next.wait
		if !next.at.IsZero() {
			wait = max(next.at.Sub(conf.now()), 0)
		}
		if wait == 0 {
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return value, ctx.Err()
		case <-timer.C:
		}
	}
}
