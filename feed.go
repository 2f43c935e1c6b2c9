package bindz

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Feed drains ch into dst, emitting every received value on the calling
// goroutine. It blocks until ch is closed, returning nil, or ctx is done,
// returning ctx.Err().
//
// Feed is how values produced on other goroutines enter the single-threaded
// world of a Binding: producers send on the channel, and the goroutine
// running Feed is the only one that ever calls Emit.
//
// Example:
//
//	temps := bindz.NewState(0.0)
//	readings := make(chan float64)
//	go sensor.Stream(readings)
//	err := bindz.Feed(ctx, readings, temps.Binding())
func Feed[T any](ctx context.Context, ch <-chan T, dst *Binding[T]) error {
	if dst == nil {
		return ErrNilBinding
	}

	capitan.Emit(ctx, FeedStarted,
		KeyObservers.Field(dst.ObserverCount()),
	)

	for {
		select {
		case <-ctx.Done():
			capitan.Emit(context.WithoutCancel(ctx), FeedStopped,
				KeyError.Field(ctx.Err().Error()),
			)
			return ctx.Err()
		case v, ok := <-ch:
			if !ok {
				capitan.Emit(ctx, FeedStopped)
				return nil
			}
			dst.Emit(v)
		}
	}
}
