package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	id1, err := s.Save(ctx, Notification{Level: LevelInfo, Message: "first"})
	require.NoError(t, err)
	id2, err := s.Save(ctx, Notification{Level: LevelError, Message: "second"})
	require.NoError(t, err)
	assert.Less(t, id1, id2)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Message, "newest first")
	assert.Equal(t, "first", got[1].Message)
}

func TestMemoryStore_Limit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	for _, msg := range []string{"a", "b", "c"} {
		_, err := s.Save(ctx, Notification{Message: msg})
		require.NoError(t, err)
	}

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", got[0].Message)
	assert.Equal(t, "b", got[1].Message)
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(5)
	_, _ = s.Save(ctx, Notification{Message: "a"})

	require.NoError(t, s.Clear(ctx))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
