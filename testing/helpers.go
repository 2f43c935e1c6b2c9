// Package testing provides test utilities and helpers for bindz bindings and states.
package testing

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/bindz"
)

// Recorder captures every value delivered by a Source. It is safe to read
// from a different goroutine than the one emitting, which makes it usable
// with bindz.Feed running in the background.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
	sub    *bindz.Subscription
}

// NewRecorder registers a Recorder on src.
func NewRecorder[T any](src bindz.Source[T]) *Recorder[T] {
	r := &Recorder[T]{}
	r.sub = src.Observe(r.record)
	return r
}

func (r *Recorder[T]) record(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

// Values returns a copy of every value recorded so far, oldest first.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Count returns the number of values recorded.
func (r *Recorder[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Last returns the most recent value and true, or the zero value and false
// if nothing was recorded.
func (r *Recorder[T]) Last() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		var zero T
		return zero, false
	}
	return r.values[len(r.values)-1], true
}

// Stop cancels the underlying subscription. Recorded values are kept.
func (r *Recorder[T]) Stop() {
	r.sub.Cancel()
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// RequireSnapshot fails the test immediately if the state's snapshot does not
// equal expected.
func RequireSnapshot[T any](t *testing.T, s *bindz.State[T], expected T) {
	t.Helper()
	if got := s.Snapshot(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected snapshot %v, got %v", expected, got)
	}
}

// RequireValues fails the test if the recorder did not capture exactly
// expected, in order.
func RequireValues[T any](t *testing.T, r *Recorder[T], expected ...T) {
	t.Helper()
	got := r.Values()
	if len(got) == 0 && len(expected) == 0 {
		return
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected values %v, got %v", expected, got)
	}
}

// NewTestState creates a named State and a Recorder attached to its change
// feed.
func NewTestState[T any](t *testing.T, name string, initial T) (*bindz.State[T], *Recorder[T]) {
	t.Helper()
	s := bindz.NewState(initial).Name(name)
	return s, NewRecorder(s.Changes())
}
