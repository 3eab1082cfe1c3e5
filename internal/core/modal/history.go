package modal

// History is a LIFO stack. The zero value is an empty stack ready to use.
type History[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (h *History[T]) Push(v T) {
	h.items = append(h.items, v)
}

// Pop removes and returns the top of the stack. ok is false when the
// stack is empty.
func (h *History[T]) Pop() (v T, ok bool) {
	if len(h.items) == 0 {
		return v, false
	}
	last := len(h.items) - 1
	v = h.items[last]

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	return v, true
}

// Peek returns the top of the stack without removing it.
func (h *History[T]) Peek() (v T, ok bool) {
	if len(h.items) == 0 {
		return v, false
	}
	return h.items[len(h.items)-1], true
}

// Len returns the number of items on the stack.
func (h *History[T]) Len() int {
	return len(h.items)
}

// Remove deletes the topmost item matching pred and returns it. Items
// above and below keep their relative order.
func (h *History[T]) Remove(pred func(T) bool) (v T, ok bool) {
	for i := len(h.items) - 1; i >= 0; i-- {
		if pred(h.items[i]) {
			v = h.items[i]
			last := len(h.items) - 1
			copy(h.items[i:], h.items[i+1:])

			var zero T
			h.items[last] = zero
			h.items = h.items[:last]
			return v, true
		}
	}
	return v, false
}

// Items returns a copy of the stack, bottom first.
func (h *History[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// Clear empties the stack.
func (h *History[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}
