package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	t.Run("default value", func(t *testing.T) {
		f := NewTextField("Guardian phone", "+254...", "+254700000001")
		assert.Equal(t, "Guardian phone", f.Label())
		assert.Equal(t, "+254700000001", f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("focus returns a blink cmd", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		assert.NotNil(t, f.Focus())
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("typing reaches the input when focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()
		f.Update(runeKey('A'))
		f.Update(runeKey('m'))
		assert.Equal(t, "Am", f.Value())
	})

	t.Run("keys ignored while blurred", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		field, cmd := f.Update(runeKey('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("password echo hides the value", func(t *testing.T) {
		f := NewPasswordField("New password")
		f.input.SetValue("hunter22")
		assert.Equal(t, "hunter22", f.Value())
		assert.NotContains(t, f.View(), "hunter22")
	})

	t.Run("error shows under the field", func(t *testing.T) {
		f := NewTextField("Email", "", "", FieldValidation{Required: true})
		f.SetError(f.Validate())
		assert.Contains(t, f.View(), "required")
	})
}
