// Package oneshot provides a single-use channel: exactly-once send,
// at-most-once receive, with drop detection on both halves.
//
// Go channels cannot tell a sender that the receiver is gone, and a
// value sent on a buffered channel that nobody reads is silently lost.
// oneshot makes both situations explicit:
//
//   - [Sender.Send] fails with [ErrClosed] if the receiver was closed,
//     leaving the value with the caller.
//   - [Receiver.Recv] fails with [ErrDropped] if the sender was closed
//     without sending.
//   - A second [Sender.Send] panics: the slot is single-use.
//
// Neither half spawns goroutines; waiting happens only in
// [Receiver.Recv], which is context-aware.
package oneshot
