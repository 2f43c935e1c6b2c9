package bindz

import "github.com/zoobzio/capitan"

// Field keys for bindz events.
var (
	// KeyName is the configured name of the State, empty if unnamed.
	KeyName = capitan.NewStringKey("name")

	// KeyVersion is the number of commits a State has seen.
	KeyVersion = capitan.NewIntKey("version")

	// KeyObservers is the number of observers registered at delivery time.
	KeyObservers = capitan.NewIntKey("observers")

	// KeySources is the number of source States folded into a combined State.
	KeySources = capitan.NewIntKey("sources")

	// KeyError is the error message when an operation stops abnormally.
	KeyError = capitan.NewStringKey("error")
)
