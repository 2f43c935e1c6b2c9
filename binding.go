package bindz

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Source is the read-only surface of a Binding. Consumers that should only
// react to values, never publish them, receive a Source.
type Source[T any] interface {
	// Observe registers fn to receive every value emitted from now on.
	Observe(fn func(T)) *Subscription

	// ObserverCount returns the number of active observers.
	ObserverCount() int
}

// observer is one registration. The same function registered twice produces
// two entries.
type observer[T any] struct {
	fn     func(T)
	active bool
}

// Binding is a synchronous, ordered, multicast emitter of T.
//
// Emit delivers a value to every registered observer in registration order on
// the caller's goroutine and returns once all of them have run. There is no
// buffering and no deduplication.
//
// A Binding is not safe for concurrent use. All calls are expected to happen
// on one logical thread; wrap it in your own lock or confine it to a single
// goroutine if that is not the case.
type Binding[T any] struct {
	observers []*observer[T]
	emitting  bool

	// commit runs before observers on every Emit. State uses it to store the
	// value so Snapshot is current inside observers.
	commit func(T)
}

// NewBinding creates a Binding with no observers.
func NewBinding[T any]() *Binding[T] {
	return &Binding[T]{}
}

// NewSeededBinding creates a Binding, registers fn and immediately calls it
// with seed. The seed is delivered to fn only; it is not stored and later
// observers never see it.
//
// Example:
//
//	b := bindz.NewSeededBinding(0, func(v int) {
//	    fmt.Println("value:", v) // prints "value: 0" before returning
//	})
//	b.Emit(1)                    // prints "value: 1"
func NewSeededBinding[T any](seed T, fn func(T)) *Binding[T] {
	b := NewBinding[T]()
	b.Observe(fn)
	fn(seed)
	return b
}

// Emit delivers v to every observer registered when the call began, in
// registration order.
//
// Observers registered while a delivery is in flight are not called for that
// delivery; they receive the next one. Observers cancelled while a delivery is
// in flight are skipped if they have not run yet.
//
// Calling Emit on the same Binding from inside one of its own observers
// panics with ErrReentrantEmit. A panicking observer or transform propagates
// to the caller of Emit; the Binding stays usable afterwards.
func (b *Binding[T]) Emit(v T) {
	if b.emitting {
		capitan.Emit(context.Background(), BindingReentrant,
			KeyObservers.Field(b.ObserverCount()),
		)
		panic(ErrReentrantEmit)
	}
	b.emitting = true
	defer func() { b.emitting = false }()

	if b.commit != nil {
		b.commit(v)
	}

	// Registration appends and cancellation copies, so this slice header
	// is stable for the whole delivery.
	observers := b.observers
	for _, o := range observers {
		if o.active {
			o.fn(v)
		}
	}
}

// Observe appends fn to the observer list. The current value, if any, is not
// replayed. The returned Subscription may be ignored; observers then stay
// registered for the life of the Binding.
func (b *Binding[T]) Observe(fn func(T)) *Subscription {
	if fn == nil {
		panic(ErrNilObserver)
	}
	o := &observer[T]{fn: fn, active: true}
	b.observers = append(b.observers, o)
	return &Subscription{cancel: func() { b.remove(o) }}
}

// ObserverCount returns the number of active observers.
func (b *Binding[T]) ObserverCount() int {
	return len(b.observers)
}

// remove drops o from the list without mutating the backing array an
// in-flight delivery may be iterating.
func (b *Binding[T]) remove(o *observer[T]) {
	o.active = false
	kept := make([]*observer[T], 0, len(b.observers))
	for _, existing := range b.observers {
		if existing != o {
			kept = append(kept, existing)
		}
	}
	b.observers = kept
}

// Ensure Binding implements Source.
var _ Source[int] = (*Binding[int])(nil)

// Subscription is the handle returned by Observe.
type Subscription struct {
	cancel    func()
	cancelled bool
}

// Cancel removes the observer from its Binding. Calling Cancel more than once
// is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.cancel()
}

// Active reports whether the observer is still registered.
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled
}
