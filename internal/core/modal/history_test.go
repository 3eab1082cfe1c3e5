package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_PushPop(t *testing.T) {
	var h History[int]

	_, ok := h.Pop()
	assert.False(t, ok)

	h.Push(1)
	h.Push(2)
	h.Push(3)

	top, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, h.Len())

	for _, want := range []int{3, 2, 1} {
		got, ok := h.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, h.Len())
}

func TestHistory_Remove(t *testing.T) {
	var h History[string]
	for _, s := range []string{"a", "b", "a", "c"} {
		h.Push(s)
	}

	got, ok := h.Remove(func(s string) bool { return s == "a" })
	assert.True(t, ok)
	assert.Equal(t, "a", got)
	assert.Equal(t, []string{"a", "b", "c"}, h.Items())

	_, ok = h.Remove(func(s string) bool { return s == "z" })
	assert.False(t, ok)
}

func TestHistory_RemoveReleasesSlot(t *testing.T) {
	var h History[*int]
	one, two, three := 1, 2, 3
	h.Push(&one)
	h.Push(&two)
	h.Push(&three)

	got, ok := h.Remove(func(p *int) bool { return *p == 2 })
	require.True(t, ok)
	assert.Same(t, &two, got)
	assert.Equal(t, []*int{&one, &three}, h.Items())

	// the vacated tail slot no longer pins the last item
	backing := h.items[:cap(h.items)]
	assert.Nil(t, backing[2])
}

func TestHistory_ItemsIsCopy(t *testing.T) {
	var h History[int]
	h.Push(1)

	items := h.Items()
	items[0] = 99

	top, _ := h.Peek()
	assert.Equal(t, 1, top)
}

func TestHistory_Clear(t *testing.T) {
	var h History[int]
	h.Push(1)
	h.Push(2)
	h.Clear()

	assert.Zero(t, h.Len())
	assert.Empty(t, h.Items())
}
