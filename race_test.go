package bichan

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests are only meaningful under -race; they hammer the shared
// queue and the discharge protocol from many goroutines at once.

func TestRaceManyRequestersOneServicer(t *testing.T) {
	requester, responder := Bounded[int, int](4, WithClone())
	ctx := context.Background()

	go func() {
		for {
			req, err := responder.Recv(ctx)
			if err != nil {
				return
			}
			_, _ = req.Respond(req.Value + 1)
		}
	}()

	const clients = 16
	const perClient = 200

	var wg sync.WaitGroup
	for c := 0; c < clients; c++ {
		rq := requester.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer rq.Close()
			for i := 0; i < perClient; i++ {
				reply, err := rq.Send(ctx, i)
				assert.NoError(t, err)
				assert.Equal(t, i+1, reply)
			}
		}()
	}
	wg.Wait()
	requester.Close()
}

func TestRaceCloseWhileSending(t *testing.T) {
	requester, responder := Bounded[int, int](1, WithClone())
	ctx := context.Background()

	var wg sync.WaitGroup
	for c := 0; c < 8; c++ {
		rq := requester.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer rq.Close()
			for i := 0; i < 100; i++ {
				// Every outcome is legitimate mid-shutdown; what matters
				// is that no send hangs and no discharge races.
				_, err := rq.Send(ctx, i)
				if err != nil {
					assert.True(t, IsClosed(err) || err == ErrIgnored)
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		req, err := responder.Recv(ctx)
		if err != nil {
			break
		}
		_, _ = req.Respond(0)
	}
	responder.Close()

	wg.Wait()
	requester.Close()
}

func TestRaceAbandonVersusRespond(t *testing.T) {
	requester, responder := Unbounded[int, int]()
	ctx := context.Background()

	const n = 500
	resps := make([]*Response[int], n)
	for i := 0; i < n; i++ {
		resp, err := requester.SendAsync(ctx, i)
		assert.NoError(t, err)
		resps[i] = resp
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, resp := range resps {
			resp.Abandon()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			req, err := responder.Recv(ctx)
			if err != nil {
				return
			}
			// Racing against Abandon: success and ErrAbandoned are both
			// fine, anything else is not.
			if _, err := req.Respond(req.Value); err != nil {
				assert.ErrorIs(t, err, ErrAbandoned)
			}
		}
	}()
	wg.Wait()
	requester.Close()
}
