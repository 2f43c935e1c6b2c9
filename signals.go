package bindz

import "github.com/zoobzio/capitan"

// State signals.
var (
	// StateChanged is emitted when a State commits a new value, before its
	// observers are notified.
	StateChanged = capitan.NewSignal(
		"bindz.state.changed",
		"State committed a new value",
	)

	// StateCombined is emitted when Combine builds a State from its sources.
	StateCombined = capitan.NewSignal(
		"bindz.state.combined",
		"States combined into one",
	)
)

// Binding signals.
var (
	// BindingReentrant is emitted just before a re-entrant Emit panics.
	BindingReentrant = capitan.NewSignal(
		"bindz.binding.reentrant",
		"Emit called during delivery",
	)
)

// Feed signals.
var (
	// FeedStarted is emitted when Feed begins draining a channel.
	FeedStarted = capitan.NewSignal(
		"bindz.feed.started",
		"Feed started draining channel",
	)

	// FeedStopped is emitted when Feed returns.
	FeedStopped = capitan.NewSignal(
		"bindz.feed.stopped",
		"Feed stopped draining channel",
	)
)
