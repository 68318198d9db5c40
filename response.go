package bichan

import (
	"context"
	"errors"

	"github.com/baxromumarov/bichan/oneshot"
)

// Response is the deferred reply handle returned by
// [Requester.SendAsync]. Create one per request; it resolves exactly
// once, when the matching obligation is discharged or dropped.
type Response[R any] struct {
	rx *oneshot.Receiver[R]
}

// Wait suspends until the reply arrives and returns it.
//
// It returns [ErrIgnored] if the obligation was dropped without a
// reply, [ErrAbandoned] if [Response.Abandon] was called, or ctx.Err()
// if the context fires first. A context failure does not abandon the
// wait: the reply stays collectable by a later Wait until Abandon is
// called.
func (p *Response[R]) Wait(ctx context.Context) (R, error) {
	var zero R
	reply, err := p.rx.Recv(ctx)
	if err != nil {
		switch {
		case errors.Is(err, oneshot.ErrDropped):
			return zero, ErrIgnored
		case errors.Is(err, oneshot.ErrClosed):
			return zero, ErrAbandoned
		default:
			return zero, err
		}
	}
	return reply, nil
}

// Done returns a channel that is closed once the reply handle has
// resolved (replied or ignored), for use in select statements. After
// Done is closed, [Response.Wait] returns without suspending.
func (p *Response[R]) Done() <-chan struct{} {
	return p.rx.Done()
}

// Abandon tells the channel that the reply is no longer wanted. A
// servicer discharging the obligation afterwards gets [ErrAbandoned]
// and keeps the reply value. Abandon is idempotent and is a no-op once
// the reply has been delivered.
func (p *Response[R]) Abandon() {
	p.rx.Close()
}
