package bindz

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// State holds a current value and the Binding that publishes changes to it.
//
// The Binding is also the write path: emitting on it stores the value and
// then notifies observers in one synchronous step, so Snapshot already
// returns the new value inside every observer. Observing never replays the
// current value; read Snapshot for that.
//
// Like Binding, State is not safe for concurrent use.
type State[T any] struct {
	name    string
	value   T
	binding *Binding[T]
	clock   clockz.Clock
	metrics MetricsProvider

	version uint64
	changed time.Time
}

// NewState creates a State holding initial. Its Binding starts with no
// observers.
//
// Example:
//
//	count := bindz.NewState(0).Name("count")
//	count.Changes().Observe(func(v int) {
//	    fmt.Println("count changed to", v)
//	})
//	count.Set(count.Snapshot() + 1)
func NewState[T any](initial T) *State[T] {
	s := &State[T]{
		value:   initial,
		clock:   clockz.RealClock,
		metrics: NoOpMetricsProvider{},
	}
	s.binding = &Binding[T]{commit: s.commit}
	return s
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Name labels the State in signals and metrics.
func (s *State[T]) Name(name string) *State[T] {
	s.name = name
	return s
}

// Clock sets the clock used to timestamp commits.
// Use this with clockz.FakeClock for deterministic tests.
func (s *State[T]) Clock(clock clockz.Clock) *State[T] {
	s.clock = clock
	return s
}

// Metrics sets a metrics provider for observability.
// The provider receives a callback on every commit.
func (s *State[T]) Metrics(provider MetricsProvider) *State[T] {
	if provider == nil {
		provider = NoOpMetricsProvider{}
	}
	s.metrics = provider
	return s
}

// -----------------------------------------------------------------------------
// Access
// -----------------------------------------------------------------------------

// Snapshot returns the current value.
func (s *State[T]) Snapshot() T {
	return s.value
}

// Binding returns the change Binding. Emit on it to write a new value.
func (s *State[T]) Binding() *Binding[T] {
	return s.binding
}

// Changes returns the change feed without the write path.
func (s *State[T]) Changes() Source[T] {
	return s.binding
}

// Set writes v. It is equivalent to s.Binding().Emit(v).
func (s *State[T]) Set(v T) {
	s.binding.Emit(v)
}

// Update applies fn to the current value and writes the result.
//
// Example:
//
//	count.Update(func(v int) int { return v + 1 })
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Version returns the number of values committed since construction.
func (s *State[T]) Version() uint64 {
	return s.version
}

// Changed returns when the last value was committed, or the zero time if
// the State still holds its initial value.
func (s *State[T]) Changed() time.Time {
	return s.changed
}

func (s *State[T]) commit(v T) {
	s.value = v
	s.version++
	s.changed = s.clock.Now()

	observers := s.binding.ObserverCount()
	s.metrics.OnChange(s.name, observers)
	capitan.Emit(context.Background(), StateChanged,
		KeyName.Field(s.name),
		KeyVersion.Field(int(s.version)),
		KeyObservers.Field(observers),
	)
}
