/*
Package bindz provides small reactive-value primitives: a synchronous
multicast emitter and a value holder that publishes its changes.

One part of a program publishes values and others react, without either side
holding a reference to the other.

# Binding

A Binding delivers each emitted value to every observer, in registration
order, on the caller's goroutine:

	clicks := bindz.NewBinding[int]()
	clicks.Observe(func(n int) { fmt.Println("clicked", n) })
	clicks.Emit(1)

Derived bindings are built with the transform functions:

	doubled := bindz.Map(clicks, func(n int) int { return n * 2 })
	labels := bindz.FlatMap(rows, func(r Row) string { return r.Label })
	firstBig := bindz.First(sizes, func(n int) bool { return n > 1 })
	size := bindz.Unwrapped(firstBig, 1)

A derived binding is kept reachable by its source. Hold on to every derived
binding you observe.

# State

A State pairs a current value with the Binding that publishes it:

	name := bindz.NewState("anonymous")
	name.Changes().Observe(func(v string) { fmt.Println("hello", v) })
	name.Set("ada")
	name.Snapshot() // "ada"

Combine folds several States of the same type into one State holding a slice
of their values, re-emitted whenever any of them changes:

	all := bindz.Combine(a, b, c)

# Threading

Nothing in this package locks. Every Emit, Observe and Set is expected to run
on one logical thread. Use Feed to move values produced on other goroutines
onto that thread through a channel.

# Observability

State commits and Feed lifecycle events are emitted as capitan signals (see
signals.go for the full list). Attach a MetricsProvider to a State for
per-commit callbacks; pkg/prometheus provides one backed by client_golang.
*/
package bindz
