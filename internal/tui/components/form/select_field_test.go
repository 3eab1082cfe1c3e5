package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectFormField(t *testing.T) {
	terms := []string{"Term 1", "Term 2", "Term 3"}

	t.Run("first option by default", func(t *testing.T) {
		f := NewSelectFormField("Term", terms, "")
		assert.Equal(t, "Term", f.Label())
		assert.Equal(t, "Term 1", f.Value())
		assert.Equal(t, 0, f.Index())
	})

	t.Run("default value preselects", func(t *testing.T) {
		f := NewSelectFormField("Term", terms, "Term 2")
		assert.Equal(t, "Term 2", f.Value())
		assert.Equal(t, 1, f.Index())
	})

	t.Run("unknown default falls back to first", func(t *testing.T) {
		f := NewSelectFormField("Term", terms, "Term 9")
		assert.Equal(t, "Term 1", f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Term", []string{}, "")
		assert.Empty(t, f.Value())
		assert.Equal(t, -1, f.Index())
		assert.Contains(t, f.View(), "Term")
	})

	t.Run("keys ignored while blurred", func(t *testing.T) {
		f := NewSelectFormField("Term", terms, "")
		field, _ := f.Update(runeKey('j'))
		assert.Equal(t, "Term 1", field.Value())
	})

	t.Run("j moves down when focused", func(t *testing.T) {
		f := NewSelectFormField("Term", terms, "")
		f.Focus()

		field, _ := f.Update(runeKey('j'))
		assert.Equal(t, "Term 2", field.Value())
		assert.False(t, f.IsFiltering())
	})

	t.Run("slash starts filtering", func(t *testing.T) {
		f := NewSelectFormField("Term", terms, "")
		f.Focus()

		f.Update(runeKey('/'))
		assert.True(t, f.IsFiltering())
	})
}
