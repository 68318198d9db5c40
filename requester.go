package bichan

import (
	"context"
	"errors"

	"github.com/baxromumarov/bichan/mpsc"
	"github.com/baxromumarov/bichan/oneshot"
)

// Requester is the client handle of a channel pair. It submits requests
// and awaits correlated replies; correlation is per call, carried by a
// fresh one-shot slot, never by IDs or matching tables.
type Requester[Q, R any] struct {
	out *mpsc.Sender[*Request[Q, R]]
	cfg config
}

// Send submits request and suspends until the responder side discharges
// the matching obligation, then returns the reply.
//
// Outcomes, exactly one per call:
//   - (reply, nil): the servicer responded.
//   - [*ClosedError]: the responder side is gone; the enqueue never
//     happened and the error carries request back unconsumed.
//   - [ErrIgnored]: the request was delivered but its obligation was
//     dropped without a reply.
//   - ctx.Err(): the caller gave up, either while suspended on a full
//     queue or while awaiting the reply. In the latter case the wait is
//     abandoned: a later discharge returns [ErrAbandoned] to the
//     servicer instead of vanishing.
//
// The only suspensions are queue-full and await-reply; Send never hangs
// otherwise.
func (rq *Requester[Q, R]) Send(ctx context.Context, request Q) (R, error) {
	var zero R
	resp, err := rq.SendAsync(ctx, request)
	if err != nil {
		return zero, err
	}
	reply, err := resp.Wait(ctx)
	if err != nil {
		// Covers the ctx case; a no-op when the slot already resolved.
		resp.Abandon()
		return zero, err
	}
	return reply, nil
}

// SendAsync submits request and returns immediately after the enqueue
// with a [Response] handle for the reply, letting the caller pipeline
// further sends or select over [Response.Done] before committing to a
// wait.
//
// SendAsync suspends only while a bounded queue is full. Failure modes
// at the enqueue step are the same as [Requester.Send]. A caller that
// never intends to collect the reply should call [Response.Abandon] so
// the servicer learns the reply is unwanted.
func (rq *Requester[Q, R]) SendAsync(ctx context.Context, request Q) (*Response[R], error) {
	tx, rx := oneshot.New[R]()
	req := &Request[Q, R]{
		Value: request,
		ob:    &Obligation[R]{tx: tx, onIgnored: rq.cfg.onIgnored},
	}
	if err := rq.out.Send(ctx, req); err != nil {
		if errors.Is(err, mpsc.ErrClosed) {
			return nil, &ClosedError[Q]{Request: request}
		}
		return nil, err
	}
	return &Response[R]{rx: rx}, nil
}

// Clone returns a new independent Requester sharing the same queue.
// Each clone must be closed; the responder observes end-of-stream only
// after the last one.
//
// Clone panics unless the pair was constructed with [WithClone].
func (rq *Requester[Q, R]) Clone() *Requester[Q, R] {
	if !rq.cfg.cloneable {
		panic("bichan: Clone requires WithClone at construction")
	}
	return &Requester[Q, R]{out: rq.out.Clone(), cfg: rq.cfg}
}

// Close releases this requester handle. Once every handle is closed the
// responder drains the remaining requests and then sees [ErrClosed].
// Close is idempotent. It does not affect replies still owed to earlier
// sends.
func (rq *Requester[Q, R]) Close() {
	rq.out.Close()
}
