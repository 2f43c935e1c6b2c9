package bindz

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Combine returns a State whose value is the slice of the sources' current
// values, index i holding sources[i].
//
// The initial value is read from every source's Snapshot and no notification
// fires for it. Afterwards each write to any source re-emits a fresh slice on
// the combined State with that slot replaced and every other slot holding
// its latest known value. Writes are never batched: three source writes
// produce three notifications, in the order the writes happened.
//
// The slice length is fixed at construction. Observers receive a copy they
// are free to keep or modify.
//
// Example:
//
//	first := bindz.NewState("Ada")
//	last := bindz.NewState("Lovelace")
//	full := bindz.Combine(first, last)
//	full.Changes().Observe(func(names []string) {
//	    fmt.Println(strings.Join(names, " "))
//	})
//	last.Set("Byron") // prints "Ada Byron"
func Combine[T any](sources ...*State[T]) *State[[]T] {
	latest := make([]T, len(sources))
	for i, src := range sources {
		latest[i] = src.Snapshot()
	}

	combined := NewState(clone(latest))

	for i, src := range sources {
		src.Changes().Observe(func(v T) {
			latest[i] = v
			combined.Set(clone(latest))
		})
	}

	capitan.Emit(context.Background(), StateCombined,
		KeySources.Field(len(sources)),
	)

	return combined
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
