// Package mpsc provides a multi-producer, single-consumer FIFO queue
// with explicit lifecycle on both sides.
//
// Native Go channels come close, but three things are missing for
// protocol building: a sender cannot detect that the receiver is gone
// (it panics instead), a receiver cannot recover values buffered at the
// moment it gives up, and "all producers are done" requires external
// coordination before close. mpsc provides all three:
//
//   - [Bounded] and [Unbounded] create a queue; bounded senders block
//     on a full queue, respecting context cancellation.
//   - [Sender.Clone] refcounts producer handles; [Receiver.Recv]
//     observes [ErrClosed] only after the last handle is closed and the
//     buffer has drained.
//   - [Receiver.Close] unblocks every sender with [ErrClosed] and
//     returns the undelivered backlog, so no buffered value is ever
//     silently lost.
//
// The queue spawns no goroutines. Blocking is implemented with a
// mutex-guarded buffer and a close-and-replace wake channel, so every
// wait can also select on a [context.Context].
package mpsc
