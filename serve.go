package bichan

import (
	"context"
	"errors"
)

// Serve runs a servicing loop on the calling goroutine: it receives
// requests in FIFO order and discharges each obligation with the
// handler's reply.
//
// Serve returns nil once the channel is drained and every requester is
// closed, ctx.Err() if the context fires, or the handler's error on the
// first failure. A failing or panicking handler's request is ignored
// (its sender observes [ErrIgnored]); a panic is recovered and returned
// as a [*PanicError]. Requests left queued when Serve returns early
// stay buffered — close the [Responder] to reject them.
//
// A reply delivered to a requester that already abandoned its wait is
// not an error; Serve discards it and keeps going.
//
// Panics if handler is nil.
func Serve[Q, R any](
	ctx context.Context,
	rp *Responder[Q, R],
	handler func(context.Context, Q) (R, error),
) error {
	if handler == nil {
		panic("bichan: Serve requires non-nil handler")
	}
	for {
		req, err := rp.Recv(ctx)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
		if err := serveOne(ctx, req, handler); err != nil {
			return err
		}
	}
}

// serveOne runs the handler for a single request, converting a panic
// into a *PanicError. The deferred Ignore guarantees the obligation is
// discharged on every path; it is a no-op after a successful Respond.
func serveOne[Q, R any](
	ctx context.Context,
	req *Request[Q, R],
	handler func(context.Context, Q) (R, error),
) (err error) {
	defer req.Ignore()
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()

	reply, err := handler(ctx, req.Value)
	if err != nil {
		return err
	}
	if _, err := req.Respond(reply); err != nil {
		// ErrAbandoned: the requester stopped waiting. Not a servicer
		// failure; drop the reply and continue.
		return nil
	}
	return nil
}
