package modal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending_SettlesOnce(t *testing.T) {
	p := newPending()

	_, ok := p.Result()
	assert.False(t, ok)

	assert.True(t, p.settle(Confirmed))
	assert.False(t, p.settle(Cancelled))

	r, ok := p.Result()
	assert.True(t, ok)
	assert.Equal(t, Confirmed, r)
}

func TestPending_Wait(t *testing.T) {
	p := newPending()

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.settle(Cancelled)
	}()

	r, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Cancelled, r)

	select {
	case <-p.Done():
	default:
		t.Fatal("done channel should be closed")
	}
}

func TestPending_WaitContextDone(t *testing.T) {
	p := newPending()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "confirmed", Confirmed.String())
	assert.Equal(t, "cancelled", Cancelled.String())
}
