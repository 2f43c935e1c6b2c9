package bindz

import "errors"

// Programmer errors. The emitter itself never fails, so these are raised as
// panics at the call site that misused the API. Recover and compare with
// errors.Is when asserting on them.
var (
	// ErrReentrantEmit is raised when Emit is called on a binding that is
	// already delivering a value.
	ErrReentrantEmit = errors.New("bindz: re-entrant emit")

	// ErrNilObserver is raised when a nil function is registered as an observer.
	ErrNilObserver = errors.New("bindz: nil observer")

	// ErrNilTransform is raised when a nil transform or predicate is passed to
	// a combinator.
	ErrNilTransform = errors.New("bindz: nil transform")

	// ErrNilBinding is returned by Feed when no destination binding is given.
	ErrNilBinding = errors.New("bindz: nil binding")
)
