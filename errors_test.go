package bichan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedErrorUnwrapsToErrClosed(t *testing.T) {
	var err error = &ClosedError[string]{Request: "x"}
	assert.ErrorIs(t, err, ErrClosed)
	assert.True(t, IsClosed(err))
}

func TestClosedErrorDoesNotPrintRequest(t *testing.T) {
	err := &ClosedError[string]{Request: "secret payload"}
	assert.NotContains(t, err.Error(), "secret")
}

func TestIsClosed(t *testing.T) {
	assert.False(t, IsClosed(nil))
	assert.False(t, IsClosed(errors.New("other")))
	assert.True(t, IsClosed(ErrClosed))
	assert.True(t, IsClosed(fmt.Errorf("sending: %w", &ClosedError[int]{Request: 1})))
}

func TestClosedRequest(t *testing.T) {
	wrapped := fmt.Errorf("sending: %w", &ClosedError[string]{Request: "x"})

	req, ok := ClosedRequest[string](wrapped)
	require.True(t, ok)
	assert.Equal(t, "x", req)

	// Wrong request type does not match.
	_, ok = ClosedRequest[int](wrapped)
	assert.False(t, ok)

	_, ok = ClosedRequest[string](nil)
	assert.False(t, ok)

	_, ok = ClosedRequest[string](ErrIgnored)
	assert.False(t, ok)
}

func TestTaxonomyIsDisjoint(t *testing.T) {
	assert.False(t, errors.Is(ErrIgnored, ErrClosed))
	assert.False(t, errors.Is(ErrAbandoned, ErrClosed))
	assert.False(t, errors.Is(ErrIgnored, ErrAbandoned))
	assert.False(t, IsClosed(ErrIgnored))
}
