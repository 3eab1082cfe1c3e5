package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextAreaField(t *testing.T) {
	t.Run("default value", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "Sports day moves to Friday.")
		assert.Equal(t, "Body", f.Label())
		assert.Equal(t, "Sports day moves to Friday.", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "")
		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("keys ignored while blurred", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "")
		field, cmd := f.Update(runeKey('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("max length reported", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "far too long", FieldValidation{MaxLength: 4})
		assert.Equal(t, "maximum 4 characters", f.Validate())
	})

	t.Run("view shows label", func(t *testing.T) {
		f := NewTextAreaField("Body", "write here", "")
		assert.Contains(t, f.View(), "Body")
	})
}
