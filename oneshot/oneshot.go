package oneshot

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by [Sender.Send] when the receiving half has been
// closed and the value can no longer be observed by anyone.
var ErrClosed = errors.New("oneshot: receiver is closed")

// ErrDropped is returned by [Receiver.Recv] when the sending half was
// closed without ever sending a value.
var ErrDropped = errors.New("oneshot: sender dropped without sending")

type state uint8

const (
	statePending state = iota
	stateSent
	stateDropped   // sender closed without sending
	stateAbandoned // receiver closed without receiving
)

// slot is the shared core of a one-shot channel. It holds at most one
// value, ever. done is closed exactly once, when the sending half
// resolves (value sent or sender dropped).
type slot[T any] struct {
	mu    sync.Mutex
	state state
	val   T
	done  chan struct{}
}

// Sender is the sending half of a one-shot channel. It must be resolved
// exactly once, either by [Sender.Send] or by [Sender.Close].
type Sender[T any] struct {
	s *slot[T]
}

// Receiver is the receiving half of a one-shot channel.
type Receiver[T any] struct {
	s *slot[T]
}

// New creates a connected one-shot channel pair. The sender may deliver
// at most one value; the receiver may observe at most one value.
// Either half detects when its counterpart is gone.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &slot[T]{done: make(chan struct{})}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

// Send delivers v to the receiving half and consumes the sender.
// It never blocks: the slot buffers the value until the receiver
// collects it.
//
// It returns [ErrClosed] if the receiver was closed first; the caller
// still holds v and may reuse it. Send panics if the sender was already
// consumed by a previous Send or Close.
func (tx *Sender[T]) Send(v T) error {
	tx.s.mu.Lock()
	switch tx.s.state {
	case statePending:
		tx.s.val = v
		tx.s.state = stateSent
		close(tx.s.done)
		tx.s.mu.Unlock()
		return nil
	case stateAbandoned:
		tx.s.mu.Unlock()
		return ErrClosed
	default:
		tx.s.mu.Unlock()
		panic("oneshot: Send on an already consumed Sender")
	}
}

// Close drops the sender without sending. A receiver waiting in
// [Receiver.Recv] observes [ErrDropped]. Close is idempotent and is a
// no-op after a successful Send, so it is safe to defer.
func (tx *Sender[T]) Close() {
	tx.s.mu.Lock()
	if tx.s.state == statePending {
		tx.s.state = stateDropped
		close(tx.s.done)
	}
	tx.s.mu.Unlock()
}

// Recv waits until the slot resolves and returns the value.
// It returns [ErrDropped] if the sender was closed without sending,
// [ErrClosed] if this receiver was itself closed first, or ctx.Err()
// if the context fires. Cancellation does not consume the slot; the
// value (or drop signal) remains observable by a later Recv until
// [Receiver.Close] is called.
func (rx *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-rx.s.done:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	switch rx.s.state {
	case stateSent:
		return rx.s.val, nil
	case stateAbandoned:
		return zero, ErrClosed
	default:
		return zero, ErrDropped
	}
}

// Done returns a channel that is closed once the slot has resolved
// (value sent, sender dropped, or receiver closed), for use in select
// statements.
func (rx *Receiver[T]) Done() <-chan struct{} {
	return rx.s.done
}

// Close abandons the receiving half. A subsequent [Sender.Send] returns
// [ErrClosed], leaving the value with the sender, and a waiting Recv
// unblocks. Close is idempotent and is a no-op once a value has been
// delivered.
func (rx *Receiver[T]) Close() {
	rx.s.mu.Lock()
	if rx.s.state == statePending {
		rx.s.state = stateAbandoned
		close(rx.s.done)
	}
	rx.s.mu.Unlock()
}
