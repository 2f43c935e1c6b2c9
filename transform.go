package bindz

// Map returns a Binding that emits fn(v) for every v emitted by src.
//
// src gains one observer that computes fn and emits the result on the derived
// Binding. That observer holds the only internal reference to the derived
// Binding, so the derived Binding lives as long as src does. Retain every
// derived Binding you observe. Use MapSubscription when the bridge needs to
// be detached later.
//
// fn runs synchronously inside src.Emit. A panic in fn reaches the caller of
// src.Emit unchanged.
//
// Example:
//
//	celsius := bindz.NewBinding[float64]()
//	fahrenheit := bindz.Map(celsius, func(c float64) float64 {
//	    return c*9/5 + 32
//	})
//	fahrenheit.Observe(func(f float64) { fmt.Println(f) })
//	celsius.Emit(100) // prints 212
func Map[T, U any](src Source[T], fn func(T) U) *Binding[U] {
	out, _ := MapSubscription(src, fn)
	return out
}

// MapSubscription is Map that also returns the Subscription bridging src to
// the derived Binding. Cancelling it detaches the derived Binding from src.
func MapSubscription[T, U any](src Source[T], fn func(T) U) (*Binding[U], *Subscription) {
	if fn == nil {
		panic(ErrNilTransform)
	}
	out := NewBinding[U]()
	sub := src.Observe(func(v T) {
		out.Emit(fn(v))
	})
	return out, sub
}

// FlatMap maps every element of each emitted slice through fn and emits the
// resulting slice. The output slice is freshly allocated per emit and has the
// same length as the input.
func FlatMap[T, U any](src Source[[]T], fn func(T) U) *Binding[[]U] {
	if fn == nil {
		panic(ErrNilTransform)
	}
	return Map(src, func(in []T) []U {
		out := make([]U, len(in))
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	})
}

// First emits the first element of each emitted slice that satisfies pred,
// scanning left to right, or None when nothing matches.
func First[T any](src Source[[]T], pred func(T) bool) *Binding[Optional[T]] {
	if pred == nil {
		panic(ErrNilTransform)
	}
	return Map(src, func(in []T) Optional[T] {
		for _, v := range in {
			if pred(v) {
				return Some(v)
			}
		}
		return None[T]()
	})
}

// Unwrapped emits the value held by each emitted Optional, or def when the
// Optional is empty.
func Unwrapped[T any](src Source[Optional[T]], def T) *Binding[T] {
	return Map(src, func(o Optional[T]) T {
		return o.OrElse(def)
	})
}

// Filter emits only the values from src that satisfy pred. Values that do
// not match are skipped without notifying the derived Binding's observers.
//
// Example:
//
//	errorsOnly := bindz.Filter(statusCodes, func(code int) bool {
//	    return code >= 500
//	})
func Filter[T any](src Source[T], pred func(T) bool) *Binding[T] {
	if pred == nil {
		panic(ErrNilTransform)
	}
	out := NewBinding[T]()
	src.Observe(func(v T) {
		if pred(v) {
			out.Emit(v)
		}
	})
	return out
}
