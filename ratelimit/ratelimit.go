// Package ratelimit provides a sliding-window rate limiter built on a
// cyclic FIFO queue of admission timestamps. At most limit events are
// admitted per window; timestamps that fall out of the window are evicted
// from the front of the queue before each decision.
//
// Like the queue underneath it, a Limiter is owned by a single goroutine
// and performs no internal locking.
package ratelimit

import (
	"time"

	"github.com/pkg/errors"

	cyclicqueue "github.com/jonoton/go-cyclicqueue"
)

// ErrInvalidArgument is returned by New for an out-of-range limit or window.
var ErrInvalidArgument = errors.New("ratelimit: invalid argument")

// Clock supplies the current time. It exists so tests can control time.
type Clock func() time.Time

// options holds the configuration for a Limiter.
type options struct {
	clock Clock
}

// Option is a function that configures a Limiter's options.
type Option func(*options)

// WithClock overrides the time source. The default is time.Now.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Limiter admits at most limit events per sliding window.
type Limiter struct {
	limit  int
	window time.Duration
	clock  Clock
	events *cyclicqueue.Queue[time.Time]
}

// New creates a Limiter admitting at most limit events per window. It
// returns ErrInvalidArgument when limit is below 1 or window is not
// positive.
func New(limit int, window time.Duration, opts ...Option) (*Limiter, error) {
	cfg := options{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	if limit < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "limit must be at least 1, got %d", limit)
	}
	if window <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "window must be positive, got %v", window)
	}

	// At most limit timestamps are ever held, so the queue never grows.
	events, err := cyclicqueue.New[time.Time](cyclicqueue.WithInitialCapacity(limit))
	if err != nil {
		return nil, err
	}

	return &Limiter{
		limit:  limit,
		window: window,
		clock:  cfg.clock,
		events: events,
	}, nil
}

// Allow reports whether an event occurring now is admitted, recording its
// timestamp when it is.
func (l *Limiter) Allow() bool {
	now := l.clock()
	l.evict(now)
	if l.events.Size() >= l.limit {
		return false
	}
	l.events.Push(now)
	return true
}

// Len returns the number of admissions currently inside the window.
func (l *Limiter) Len() int {
	l.evict(l.clock())
	return l.events.Size()
}

// Pending returns a copy of the admission timestamps inside the window,
// oldest first.
func (l *Limiter) Pending() []time.Time {
	l.evict(l.clock())
	return l.events.Snapshot()
}

// Reset forgets all recorded admissions.
func (l *Limiter) Reset() {
	l.events.Clear()
}

// evict pops timestamps that have aged out of the window ending at now. A
// timestamp exactly one window old no longer counts.
func (l *Limiter) evict(now time.Time) {
	cutoff := now.Add(-l.window)
	for {
		oldest, err := l.events.FirstIn()
		if err != nil || oldest.After(cutoff) {
			return
		}
		l.events.Pop()
	}
}
