package bichan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeAnswersUntilDrained(t *testing.T) {
	requester, responder := Bounded[string, int](2)
	ctx := context.Background()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- Serve(ctx, responder, func(_ context.Context, q string) (int, error) {
			return len(q), nil
		})
	}()

	for _, q := range []string{"a", "bb", "ccc"} {
		reply, err := requester.Send(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, len(q), reply)
	}

	requester.Close()
	assert.NoError(t, <-serveErr) // clean drain
}

func TestServeHandlerError(t *testing.T) {
	requester, responder := Bounded[string, int](1)
	ctx := context.Background()
	sentinel := errors.New("bad request")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- Serve(ctx, responder, func(_ context.Context, q string) (int, error) {
			return 0, sentinel
		})
	}()

	_, err := requester.Send(ctx, "x")
	assert.ErrorIs(t, err, ErrIgnored) // obligation dropped, not hung
	assert.ErrorIs(t, <-serveErr, sentinel)
}

func TestServeHandlerPanic(t *testing.T) {
	requester, responder := Bounded[string, int](1)
	ctx := context.Background()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- Serve(ctx, responder, func(_ context.Context, q string) (int, error) {
			panic("handler exploded")
		})
	}()

	_, err := requester.Send(ctx, "x")
	assert.ErrorIs(t, err, ErrIgnored)

	err = <-serveErr
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "handler exploded", pe.Value)
	assert.True(t, strings.Contains(pe.Stack, "goroutine"))
}

func TestServeContextCanceled(t *testing.T) {
	_, responder := Bounded[string, int](1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Serve(ctx, responder, func(_ context.Context, q string) (int, error) {
		return 0, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServeNilHandlerPanics(t *testing.T) {
	_, responder := Bounded[string, int](1)
	mustPanicContains(t, "non-nil handler", func() {
		_ = Serve[string, int](context.Background(), responder, nil)
	})
}

func TestServeToleratesAbandonedRequester(t *testing.T) {
	requester, responder := Bounded[int, int](2)
	ctx := context.Background()

	resp, err := requester.SendAsync(ctx, 1)
	require.NoError(t, err)
	resp.Abandon()

	done, err2 := requester.SendAsync(ctx, 2)
	require.NoError(t, err2)
	requester.Close()

	// The abandoned reply is discarded; Serve keeps answering.
	require.NoError(t, Serve(ctx, responder, func(_ context.Context, q int) (int, error) {
		return q * 10, nil
	}))

	reply, err := done.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, reply)
}
