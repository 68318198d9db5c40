package bichan

import (
	"sync/atomic"

	"github.com/baxromumarov/bichan/oneshot"
)

// Obligation represents a still-owed reply. It is single-use: exactly
// one of [Obligation.Respond] or [Obligation.Ignore] discharges it, and
// a second Respond panics. Go cannot enforce consumption statically, so
// an undischarged obligation that is simply forgotten leaves its
// requester suspended; servicing code should `defer ob.Ignore()` (a
// no-op after Respond) to guarantee discharge on every path.
type Obligation[R any] struct {
	tx        *oneshot.Sender[R]
	done      atomic.Bool
	onIgnored func() // optional WithOnIgnored hook
}

// Respond discharges the obligation by delivering reply to the waiting
// requester. It succeeds as soon as the reply is queued into the reply
// slot, even if the requester never collects it.
//
// It returns [ErrAbandoned] if the requester has stopped waiting; the
// caller still holds reply and may reuse or discard it. Respond panics
// if the obligation was already discharged.
func (o *Obligation[R]) Respond(reply R) error {
	if !o.done.CompareAndSwap(false, true) {
		panic("bichan: obligation already discharged")
	}
	if err := o.tx.Send(reply); err != nil {
		return ErrAbandoned
	}
	return nil
}

// Ignore discharges the obligation without a reply. The waiting
// requester observes [ErrIgnored]. Ignore is idempotent and is a no-op
// after Respond, so it is safe to defer.
func (o *Obligation[R]) Ignore() {
	if o.done.CompareAndSwap(false, true) {
		o.tx.Close()
		if o.onIgnored != nil {
			o.onIgnored()
		}
	}
}

// Request is a request as seen by the responder side: the request value
// paired with exactly one [Obligation]. The pairing is fixed at send
// time; Value may be read and mutated freely.
type Request[Q, R any] struct {
	// Value is the request itself.
	Value Q

	ob *Obligation[R]
}

// Respond discharges the embedded obligation with reply and hands back
// the request value, so the convenience path never swallows either
// value: on [ErrAbandoned] the caller holds both the returned request
// and the reply it passed in.
func (r *Request[Q, R]) Respond(reply R) (Q, error) {
	return r.Value, r.ob.Respond(reply)
}

// Ignore discharges the embedded obligation without a reply. See
// [Obligation.Ignore].
func (r *Request[Q, R]) Ignore() {
	r.ob.Ignore()
}

// Obligation exposes the embedded obligation, for servicers that route
// the reply duty elsewhere while keeping the request value.
func (r *Request[Q, R]) Obligation() *Obligation[R] {
	return r.ob
}
