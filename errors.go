package bichan

import (
	"errors"
)

// ErrIgnored is returned by [Requester.Send] and [Response.Wait] when
// the request was delivered but its obligation was dropped without a
// reply: the servicer called [Request.Ignore], panicked before
// responding, or the responder side shut down with the request still
// buffered.
var ErrIgnored = errors.New("bichan: request ignored without a reply")

// ErrAbandoned is returned by [Obligation.Respond] and
// [Request.Respond] when the requester is no longer waiting for the
// reply; the caller still holds the reply value and may reuse it.
// [Response.Wait] returns it after [Response.Abandon].
var ErrAbandoned = errors.New("bichan: requester abandoned the reply")

// ErrClosed is returned by [Responder.Recv] once every [Requester]
// handle has been closed and the queue has drained, or after
// [Responder.Close]. A servicing loop uses it as its termination
// signal.
var ErrClosed = errors.New("bichan: channel is closed")

// ClosedError is returned by [Requester.Send] and
// [Requester.SendAsync] when the enqueue failed because the responder
// side is gone. Request carries the unconsumed request value back to
// the caller for reuse.
type ClosedError[Q any] struct {
	Request Q
}

func (e *ClosedError[Q]) Error() string {
	return "bichan: responder is closed"
}

// Unwrap allows errors.Is(err, ErrClosed) to match a *ClosedError.
func (e *ClosedError[Q]) Unwrap() error { return ErrClosed }

// IsClosed reports whether err (or any error in its chain) signals that
// the other side of the channel is gone. It matches both [ErrClosed]
// and any [*ClosedError].
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// ClosedRequest extracts the rejected request value from the first
// [*ClosedError] in err's chain. Returns false if none is found.
func ClosedRequest[Q any](err error) (Q, bool) {
	var ce *ClosedError[Q]
	if errors.As(err, &ce) {
		return ce.Request, true
	}
	var zero Q
	return zero, false
}
