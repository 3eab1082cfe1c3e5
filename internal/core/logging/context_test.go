package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithEntryID(t *testing.T) {
	ctx := WithEntryID(context.Background(), "entry-123")
	assert.Equal(t, "entry-123", GetEntryID(ctx))
}

func TestWithAction(t *testing.T) {
	ctx := WithAction(context.Background(), "delete-student")
	assert.Equal(t, "delete-student", GetAction(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetEntryID(ctx))
	assert.Empty(t, GetAction(ctx))
}

func TestContextValues_Both(t *testing.T) {
	ctx := WithAction(WithEntryID(context.Background(), "e-1"), "save")
	assert.Equal(t, "e-1", GetEntryID(ctx))
	assert.Equal(t, "save", GetAction(ctx))
}
