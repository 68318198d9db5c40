package mpsc

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by [Sender.Send] when the receiver has been
// closed, and by [Receiver.Recv] once the queue has drained and every
// sender handle has been closed.
var ErrClosed = errors.New("mpsc: queue is closed")

// ErrFull is returned by [Sender.TrySend] when a bounded queue is at
// capacity.
var ErrFull = errors.New("mpsc: queue is full")

// ErrEmpty is returned by [Receiver.TryRecv] when no value is buffered.
var ErrEmpty = errors.New("mpsc: queue is empty")

// queue is the shared core of an mpsc channel: a mutex-guarded FIFO
// with a close-and-replace wake channel instead of sync.Cond, so that
// waiters can select on context cancellation.
type queue[T any] struct {
	mu       sync.Mutex
	buf      []T
	capacity int // <= 0 means unbounded
	senders  int // live sender handles
	rclosed  bool
	wake     chan struct{} // closed and replaced on every state change
}

// wakeAllLocked wakes every goroutine waiting on the current generation
// of the wake channel. Callers must hold q.mu.
func (q *queue[T]) wakeAllLocked() {
	close(q.wake)
	q.wake = make(chan struct{})
}

// Sender is a handle on the producing side of the queue. Handles are
// refcounted: the receiver sees end-of-stream only after every handle
// has been closed.
type Sender[T any] struct {
	q    *queue[T]
	once sync.Once
}

// Receiver is the consuming side of the queue. It is intended for a
// single consumer; concurrent Recv calls are safe but race for values.
type Receiver[T any] struct {
	q *queue[T]
}

// Bounded creates a FIFO queue holding at most capacity values.
// Senders block once the queue is full. Panics if capacity < 1.
func Bounded[T any](capacity int) (*Sender[T], *Receiver[T]) {
	if capacity < 1 {
		panic("mpsc: Bounded requires capacity >= 1")
	}
	return newPair[T](capacity)
}

// Unbounded creates a FIFO queue with no capacity limit. Senders never
// block on space.
func Unbounded[T any]() (*Sender[T], *Receiver[T]) {
	return newPair[T](0)
}

func newPair[T any](capacity int) (*Sender[T], *Receiver[T]) {
	q := &queue[T]{
		capacity: capacity,
		senders:  1,
		wake:     make(chan struct{}),
	}
	return &Sender[T]{q: q}, &Receiver[T]{q: q}
}

// Send enqueues v, blocking while a bounded queue is at capacity.
// It returns [ErrClosed] if the receiver has been closed (the value is
// not enqueued), or ctx.Err() if the context fires while waiting.
func (tx *Sender[T]) Send(ctx context.Context, v T) error {
	q := tx.q
	for {
		q.mu.Lock()
		if q.rclosed {
			q.mu.Unlock()
			return ErrClosed
		}
		if q.capacity <= 0 || len(q.buf) < q.capacity {
			q.buf = append(q.buf, v)
			q.wakeAllLocked()
			q.mu.Unlock()
			return nil
		}
		wait := q.wake
		q.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// TrySend enqueues v without blocking. It returns [ErrFull] if a
// bounded queue is at capacity, or [ErrClosed] if the receiver has been
// closed.
func (tx *Sender[T]) TrySend(v T) error {
	q := tx.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.rclosed {
		return ErrClosed
	}
	if q.capacity > 0 && len(q.buf) >= q.capacity {
		return ErrFull
	}
	q.buf = append(q.buf, v)
	q.wakeAllLocked()
	return nil
}

// Clone returns a new independent sender handle sharing the same queue.
// Each handle must be closed; the receiver observes end-of-stream only
// after the last one. Clone panics once every handle has been closed.
func (tx *Sender[T]) Clone() *Sender[T] {
	q := tx.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.senders == 0 {
		panic("mpsc: Clone of a closed Sender")
	}
	q.senders++
	return &Sender[T]{q: q}
}

// Close releases this sender handle. When the last handle is closed the
// receiver drains whatever is buffered and then observes [ErrClosed].
// Close is idempotent per handle.
func (tx *Sender[T]) Close() {
	tx.once.Do(func() {
		q := tx.q
		q.mu.Lock()
		q.senders--
		if q.senders == 0 {
			q.wakeAllLocked()
		}
		q.mu.Unlock()
	})
}

// Recv dequeues the oldest value, blocking while the queue is empty.
// It returns [ErrClosed] once every sender handle has been closed and
// the buffer has drained, or after [Receiver.Close]. It returns
// ctx.Err() if the context fires while waiting.
func (rx *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	q := rx.q
	for {
		q.mu.Lock()
		if len(q.buf) > 0 && !q.rclosed {
			v := q.buf[0]
			q.buf = q.buf[1:]
			q.wakeAllLocked()
			q.mu.Unlock()
			return v, nil
		}
		if q.rclosed || q.senders == 0 {
			q.mu.Unlock()
			return zero, ErrClosed
		}
		wait := q.wake
		q.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// TryRecv dequeues the oldest value without blocking. It returns
// [ErrEmpty] when nothing is buffered, or [ErrClosed] once the queue is
// drained and closed.
func (rx *Receiver[T]) TryRecv() (T, error) {
	var zero T
	q := rx.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) > 0 && !q.rclosed {
		v := q.buf[0]
		q.buf = q.buf[1:]
		q.wakeAllLocked()
		return v, nil
	}
	if q.rclosed || q.senders == 0 {
		return zero, ErrClosed
	}
	return zero, ErrEmpty
}

// Len returns the number of buffered values. The value may be stale in
// concurrent contexts.
func (rx *Receiver[T]) Len() int {
	rx.q.mu.Lock()
	defer rx.q.mu.Unlock()
	return len(rx.q.buf)
}

// Close tears down the queue from the receiving side and returns the
// undelivered backlog in FIFO order. Blocked and subsequent sends fail
// with [ErrClosed]. Close is idempotent; only the first call returns
// the backlog.
func (rx *Receiver[T]) Close() []T {
	q := rx.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.rclosed {
		return nil
	}
	q.rclosed = true
	left := q.buf
	q.buf = nil
	q.wakeAllLocked()
	return left
}
