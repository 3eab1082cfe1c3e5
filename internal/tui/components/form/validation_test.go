package form

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValidation_ValidateText(t *testing.T) {
	tests := []struct {
		name  string
		v     FieldValidation
		value string
		want  string
	}{
		{"no rules, empty", FieldValidation{}, "", ""},
		{"no rules, non-empty", FieldValidation{}, "Amani", ""},
		{"required, empty", FieldValidation{Required: true}, "", "required"},
		{"required, non-empty", FieldValidation{Required: true}, "Amani", ""},
		{"min_length, too short", FieldValidation{MinLength: 8}, "secret", "minimum 8 characters"},
		{"min_length, empty skips", FieldValidation{MinLength: 8}, "", ""},
		{"max_length, too long", FieldValidation{MaxLength: 3}, "Grade 7", "maximum 3 characters"},
		{"email, valid", FieldValidation{Email: true}, "bursar@school.test", ""},
		{"email, invalid", FieldValidation{Email: true}, "bursar", "not a valid email address"},
		{"numeric, valid", FieldValidation{Numeric: true}, "250000", ""},
		{"numeric, negative", FieldValidation{Numeric: true}, "-5", "must be a whole number"},
		{"numeric, decimal", FieldValidation{Numeric: true}, "12.50", "must be a whole number"},
		{"pattern, matches", FieldValidation{Pattern: regexp.MustCompile(`^\d{2}:\d{2}$`)}, "08:30", ""},
		{"pattern, no match", FieldValidation{Pattern: regexp.MustCompile(`^\d+$`)}, "abc", "must match pattern: ^\\d+$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.ValidateText(tt.value))
		})
	}
}

func TestFieldValidation_ValidateSelection(t *testing.T) {
	tests := []struct {
		name  string
		v     FieldValidation
		count int
		want  string
	}{
		{"no rules, zero", FieldValidation{}, 0, ""},
		{"required, zero", FieldValidation{Required: true}, 0, "at least one selection required"},
		{"required, non-zero", FieldValidation{Required: true}, 1, ""},
		{"min, too few", FieldValidation{Min: 2}, 1, "select at least 2"},
		{"max, too many", FieldValidation{Max: 2}, 3, "select at most 2"},
		{"max, exact", FieldValidation{Max: 2}, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.ValidateSelection(tt.count))
		})
	}
}

func TestDialog_ValidationBlocksSubmit(t *testing.T) {
	t.Run("required field blocks submit", func(t *testing.T) {
		first := NewTextField("First name", "", "", FieldValidation{Required: true})
		d := NewDialog("Add student", []Field{first}, []string{"first_name"})

		d.Update(tabKey)
		assert.False(t, d.Submitted())
		assert.True(t, first.Focused())
	})

	t.Run("valid field allows submit", func(t *testing.T) {
		first := NewTextField("First name", "", "Amani", FieldValidation{Required: true})
		d := NewDialog("Add student", []Field{first}, []string{"first_name"})

		d.Update(tabKey)
		assert.True(t, d.Submitted())
	})

	t.Run("focuses first invalid field", func(t *testing.T) {
		first := NewTextField("First name", "", "Amani", FieldValidation{Required: true})
		last := NewTextField("Last name", "", "", FieldValidation{Required: true})
		guardian := NewTextField("Guardian", "", "", FieldValidation{Required: true})
		d := NewDialog("Add student", []Field{first, last, guardian}, []string{"first", "last", "guardian"})

		d.Update(tabKey)
		d.Update(tabKey)
		assert.True(t, guardian.Focused())

		d.Update(tabKey)
		assert.False(t, d.Submitted())
		assert.True(t, last.Focused())
		assert.False(t, guardian.Focused())
	})

	t.Run("ctrl+s validates too", func(t *testing.T) {
		amount := NewTextField("Amount", "", "12.5", FieldValidation{Numeric: true})
		d := NewDialog("Collect fee", []Field{amount}, []string{"amount"})

		d.Update(ctrlSKey)
		assert.False(t, d.Submitted())
		assert.Equal(t, "must be a whole number", amount.Error())
	})

	t.Run("error message renders in view", func(t *testing.T) {
		first := NewTextField("First name", "", "", FieldValidation{Required: true})
		d := NewDialog("Add student", []Field{first}, []string{"first_name"})

		d.Update(tabKey)
		assert.Contains(t, d.View(), "required")
	})

	t.Run("errors clear once fixed", func(t *testing.T) {
		first := NewTextField("First name", "", "", FieldValidation{Required: true})
		d := NewDialog("Add student", []Field{first}, []string{"first_name"})

		d.Update(tabKey)
		first.input.SetValue("Amani")
		d.Update(tabKey)
		assert.True(t, d.Submitted())
		assert.Empty(t, first.Error())
	})
}
