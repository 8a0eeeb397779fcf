package monitor

import (
	"context"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hitrip/tripops/pkg/loop"
	"github.com/robfig/cron/v3"
)

// Snapshot is the result of a poll.
//
// When the last poll failed, Err is set and Value and FetchedAt are of the last successful poll.
type Snapshot[T any] struct {
	Value     T
	FetchedAt time.Time
	Err       error
}

// Ok tells whether Snapshot has a value.
func (s Snapshot[T]) Ok() bool {
	return !s.FetchedAt.IsZero()
}

// Frame is a Snapshot in the form to be sent to viewers.
type Frame[T any] struct {
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Value     T          `json:"value"`
	Error     string     `json:"error,omitempty"`
}

func (s Snapshot[T]) Frame() Frame[T] {
	f := Frame[T]{Value: s.Value}
	if s.Ok() {
		at := s.FetchedAt
		f.FetchedAt = &at
	}
	if s.Err != nil {
		f.Error = s.Err.Error()
	}
	return f
}

type config struct {
	timeout time.Duration
	logger  *log.Logger
	now     func() time.Time
}

type Option func(*config)

// WithTimeout limits time of each poll.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithLogger makes poll failures logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// Poller fetches a value on schedule and delivers it to subscribers.
//
// Polls never overlap: a poll requested while another is in flight is skipped.
type Poller[T any] struct {
	fetch    func(context.Context) (T, error)
	schedule cron.Schedule
	conf     config

	inflight atomic.Bool

	mu     sync.Mutex
	latest Snapshot[T]
	subs   map[chan Snapshot[T]]struct{}
}

func NewPoller[T any](fetch func(context.Context) (T, error), schedule cron.Schedule, options ...Option) *Poller[T] {
	conf := config{logger: log.New(io.Discard, "", 0), now: time.Now}
	for _, o := range options {
		o(&conf)
	}
	return &Poller[T]{
		fetch:    fetch,
		schedule: schedule,
		conf:     conf,
		subs:     map[chan Snapshot[T]]struct{}{},
	}
}

// Run polls now, and then on schedule until ctx is done.
//
// It returns ctx.Err().
func (p *Poller[T]) Run(ctx context.Context) error {
	_, err := loop.Run(ctx, 0, func(ctx context.Context, polls int) (int, loop.Next) {
		if _, ok := p.Refresh(ctx); ok {
			polls++
		}
		return polls, loop.At(p.schedule.Next(p.conf.now()))
	}, loop.WithClock(p.conf.now))
	return err
}

// Refresh polls once.
//
// When another poll is in flight, it does nothing and returns false.
func (p *Poller[T]) Refresh(ctx context.Context) (Snapshot[T], bool) {
	if !p.inflight.CompareAndSwap(false, true) {
		return Snapshot[T]{}, false
	}
	defer p.inflight.Store(false)

	pctx := ctx
	if 0 < p.conf.timeout {
		c, cancel := context.WithTimeout(ctx, p.conf.timeout)
		defer cancel()
		pctx = c
	}

	v, err := p.fetch(pctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.conf.logger.Printf("poll failed: %s", err)
		p.latest.Err = err
	} else {
		p.latest = Snapshot[T]{Value: v, FetchedAt: p.conf.now()}
	}
	snap := p.latest
	for ch := range p.subs {
		offer(ch, snap)
	}
	return snap, true
}

// offer sends s to ch. If ch is full, the oldest one is dropped.
func offer[T any](ch chan Snapshot[T], s Snapshot[T]) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Latest returns the last snapshot. It is false before the first poll.
func (p *Poller[T]) Latest() (Snapshot[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest, p.latest.Ok() || p.latest.Err != nil
}

// Subscribe returns a channel receiving snapshots of following polls.
//
// The channel keeps only the newest snapshot not received yet.
// Calling the returned function closes the channel.
func (p *Poller[T]) Subscribe() (<-chan Snapshot[T], func()) {
	ch := make(chan Snapshot[T], 1)
	p.mu.Lock()
	p.subs[ch] = struct{}{}
	p.mu.Unlock()

	once := sync.Once{}
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, ch)
			close(ch)
		})
	}
}

// Subscribers returns the number of subscribers.
func (p *Poller[T]) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
