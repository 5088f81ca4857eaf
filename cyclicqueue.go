package cyclicqueue

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultInitialCapacity is the number of slots allocated by New when
	// WithInitialCapacity is not given.
	DefaultInitialCapacity = 128
	// DefaultGrowthFactor is the growth factor used by New when
	// WithGrowthFactor is not given.
	DefaultGrowthFactor = 1.5

	// MinGrowthFactor and MaxGrowthFactor bound the usable growth factor
	// range. Both bounds are inclusive.
	MinGrowthFactor = 1.1
	MaxGrowthFactor = 2.0
)

var (
	// ErrInvalidArgument is returned by New when an option value is out of range.
	ErrInvalidArgument = errors.New("cyclicqueue: invalid argument")
	// ErrEmpty is returned by Pop and FirstIn when the queue holds no items.
	ErrEmpty = errors.New("cyclicqueue: empty queue")
)

// --- Options ---

// options holds the configuration for a Queue.
type options struct {
	initialCapacity int
	growthFactor    float64
}

// Option is a function that configures a Queue's options.
type Option func(*options)

// WithInitialCapacity sets the number of slots allocated up front. Must be at
// least 1. The default is DefaultInitialCapacity.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		o.initialCapacity = capacity
	}
}

// WithGrowthFactor sets the multiplier applied to the capacity when the
// buffer fills. Must lie in [MinGrowthFactor, MaxGrowthFactor]. The default
// is DefaultGrowthFactor.
func WithGrowthFactor(factor float64) Option {
	return func(o *options) {
		o.growthFactor = factor
	}
}

// validCapacity reports whether v is usable as an initial capacity.
func validCapacity(v int) bool {
	return v >= 1
}

// validGrowthFactor reports whether v lies in the inclusive usable range.
func validGrowthFactor(v float64) bool {
	return v >= MinGrowthFactor && v <= MaxGrowthFactor
}

// --- Queue Implementation ---

// Queue is a FIFO queue backed by a growable cyclic buffer. Items are added
// at the back and removed from the front; the item at logical position k
// lives at physical index (head+k) mod capacity. When the buffer fills, a
// larger one is allocated at ceil(capacity*growthFactor) and the items are
// copied over in logical order, so pushes stay amortized O(1). Capacity
// never shrinks.
//
// A Queue is not safe for concurrent use. If multiple goroutines share one,
// every operation must be serialized externally.
type Queue[T any] struct {
	buf          []T
	head         int
	size         int
	growthFactor float64
	increments   int
}

// New creates an empty Queue with the given optional configurations. It
// returns ErrInvalidArgument (wrapped with the offending value) when the
// initial capacity is not a positive integer or the growth factor falls
// outside [MinGrowthFactor, MaxGrowthFactor].
func New[T any](opts ...Option) (*Queue[T], error) {
	cfg := options{
		initialCapacity: DefaultInitialCapacity,
		growthFactor:    DefaultGrowthFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !validCapacity(cfg.initialCapacity) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"initial capacity must be a positive integer, got %d", cfg.initialCapacity)
	}
	if !validGrowthFactor(cfg.growthFactor) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"growth factor must be in [%v, %v], got %v", MinGrowthFactor, MaxGrowthFactor, cfg.growthFactor)
	}

	return &Queue[T]{
		buf:          make([]T, cfg.initialCapacity),
		growthFactor: cfg.growthFactor,
	}, nil
}

// Size returns the number of items currently stored.
func (q *Queue[T]) Size() int {
	return q.size
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Capacity returns the number of slots in the current backing buffer.
func (q *Queue[T]) Capacity() int {
	return len(q.buf)
}

// CapacityIncrements returns how many times the backing buffer has been
// reallocated since construction.
func (q *Queue[T]) CapacityIncrements() int {
	return q.increments
}

// FirstIn returns the oldest stored item without removing it. It returns
// ErrEmpty when the queue holds no items.
func (q *Queue[T]) FirstIn() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.buf[q.head], nil
}

// Push adds item at the back of the queue, growing the buffer first when it
// is full. It never fails.
func (q *Queue[T]) Push(item T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = item
	q.size++
}

// Pop removes and returns the oldest stored item. It returns ErrEmpty when
// the queue holds no items. Capacity is never reduced.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero // release the slot's reference
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return item, nil
}

// Clear removes all items and resets the head to the front of the buffer.
// Capacity and the increment counter are unaffected.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head = 0
	q.size = 0
}

// Snapshot returns a newly allocated slice holding the stored items in
// logical order, oldest first. The copy is independent of the queue: later
// mutations of either do not affect the other.
func (q *Queue[T]) Snapshot() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}

// grow reallocates the buffer at ceil(capacity*growthFactor) and copies the
// items to the front of the new buffer in logical order, so head is 0
// afterwards. The new buffer is fully populated before it replaces the old
// one; the old buffer is discarded whole.
func (q *Queue[T]) grow() {
	newCapacity := int(math.Ceil(float64(len(q.buf)) * q.growthFactor))
	next := make([]T, newCapacity)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
	q.increments++
}
