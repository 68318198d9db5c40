package bichan

import (
	"github.com/baxromumarov/bichan/mpsc"
)

// Bounded creates a connected [Requester]/[Responder] pair sharing a
// FIFO queue that holds at most capacity in-flight requests. Once the
// queue is full, [Requester.Send] suspends until the responder drains a
// request or the channel closes.
//
// Panics if capacity < 1.
func Bounded[Q, R any](capacity int, opts ...Option) (*Requester[Q, R], *Responder[Q, R]) {
	if capacity < 1 {
		panic("bichan: Bounded requires capacity >= 1")
	}
	tx, rx := mpsc.Bounded[*Request[Q, R]](capacity)
	return newPair[Q, R](tx, rx, opts)
}

// Unbounded creates a connected [Requester]/[Responder] pair with no
// capacity limit: [Requester.Send] never suspends on enqueue, only
// while awaiting the reply.
func Unbounded[Q, R any](opts ...Option) (*Requester[Q, R], *Responder[Q, R]) {
	tx, rx := mpsc.Unbounded[*Request[Q, R]]()
	return newPair[Q, R](tx, rx, opts)
}

func newPair[Q, R any](
	tx *mpsc.Sender[*Request[Q, R]],
	rx *mpsc.Receiver[*Request[Q, R]],
	opts []Option,
) (*Requester[Q, R], *Responder[Q, R]) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Requester[Q, R]{out: tx, cfg: cfg}, &Responder[Q, R]{in: rx}
}
