// Package bichan provides a bidirectional request/response channel.
//
// A channel pair connects a [Requester] and a [Responder] over one
// shared FIFO queue. The requester submits a value and suspends until
// the responder produces the correlated reply; correlation is carried
// by a fresh one-shot slot per call, so neither side manages request
// IDs or matching tables.
//
// # Sending Requests
//
// [Bounded] and [Unbounded] create a pair. [Requester.Send] submits a
// request and waits for the reply in one call:
//
//	requester, responder := bichan.Bounded[string, int](1)
//	reply, err := requester.Send(ctx, "hello") // suspends until answered
//
// [Requester.SendAsync] splits the two phases, returning a [Response]
// handle to wait on (or select over via [Response.Done]) later.
//
// # Serving Requests
//
// The responder side pulls [Request] values in FIFO order. Each carries
// the request in its Value field and exactly one reply [Obligation]:
//
//	req, err := responder.Recv(ctx)
//	if err != nil { ... } // bichan.ErrClosed: all requesters closed
//	_, _ = req.Respond(len(req.Value))
//
// [Serve] packages this loop: it answers every request with a handler
// function, recovers handler panics into [*PanicError], and returns
// cleanly when the channel drains.
//
// # The Reply Obligation
//
// An [Obligation] is single-use: exactly one of [Obligation.Respond] or
// [Obligation.Ignore] discharges it, and a second Respond panics.
// Ignore is idempotent and safe to defer. Every way an obligation can
// go unfulfilled surfaces as a typed failure on the other side:
//
//   - [*ClosedError]: the responder was gone before the enqueue; the
//     error hands the unconsumed request back to the caller.
//   - [ErrIgnored]: the request was delivered but the obligation was
//     dropped without a reply.
//   - [ErrAbandoned]: a discharge arrived after the requester stopped
//     waiting; the servicer keeps the reply value.
//
// Use [IsClosed] and [ClosedRequest] to inspect errors in a chain.
//
// # Backpressure and Shutdown
//
// A bounded pair suspends [Requester.Send] while the queue is full,
// until the responder drains a request. Closing every [Requester]
// handle lets the responder drain and then observe [ErrClosed];
// [Responder.Close] rejects future sends and drops the obligations of
// requests still buffered, so no sender is left hanging.
//
// Pass [WithClone] to allow multiple requester handles over one queue,
// and [WithOnIgnored] to observe dropped obligations.
//
// # No Built-in Policy
//
// The package performs no retries, no timeouts, and no logging. A
// caller wanting a deadline passes a [context.Context] to Send or Wait;
// both suspension points respect cancellation.
//
// # Substrates
//
// The protocol is layered on two primitive subpackages, each usable on
// its own: [github.com/baxromumarov/bichan/oneshot], a single-use slot
// with drop detection on both halves, and
// [github.com/baxromumarov/bichan/mpsc], a multi-producer FIFO queue
// with refcounted sender handles and backlog recovery on close.
package bichan
