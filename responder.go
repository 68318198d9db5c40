package bichan

import (
	"context"
	"errors"

	"github.com/baxromumarov/bichan/mpsc"
)

// Responder is the receiving handle of a channel pair: the queue's
// consume side. It is intended for a single servicing loop; concurrent
// Recv calls are safe but race for requests, first-to-poll wins.
type Responder[Q, R any] struct {
	in *mpsc.Receiver[*Request[Q, R]]
}

// Recv suspends until a request is available and returns it, in FIFO
// enqueue order. It returns [ErrClosed] once every [Requester] handle
// has been closed and the queue has drained — the clean-termination
// signal for a servicing loop — or ctx.Err() if the context fires while
// waiting.
func (rp *Responder[Q, R]) Recv(ctx context.Context) (*Request[Q, R], error) {
	req, err := rp.in.Recv(ctx)
	if err != nil {
		if errors.Is(err, mpsc.ErrClosed) {
			return nil, ErrClosed
		}
		return nil, err
	}
	return req, nil
}

// Len returns the number of requests currently buffered. The value may
// be stale in concurrent contexts.
func (rp *Responder[Q, R]) Len() int {
	return rp.in.Len()
}

// Close tears down the channel from the responder side. Sends that have
// not yet enqueued fail with [*ClosedError]; requests already buffered
// but undelivered have their obligations dropped, so their senders
// resolve [ErrIgnored] rather than hanging. Obligations already
// delivered to a servicer stay valid and may still be discharged.
// Close is idempotent.
func (rp *Responder[Q, R]) Close() {
	for _, req := range rp.in.Close() {
		req.Ignore()
	}
}
