package form

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
)

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Email     bool
	Numeric   bool // whole, non-negative numbers such as amounts in cents
	Min       int  // minimum selections (multi-select)
	Max       int  // maximum selections (multi-select)
}

// ValidateText checks a text value against the validation rules.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MinLength > 0 && len(value) < v.MinLength {
		return fmt.Sprintf("minimum %d characters", v.MinLength)
	}
	if v.MaxLength > 0 && len(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Email {
		if _, err := mail.ParseAddress(value); err != nil {
			return "not a valid email address"
		}
	}
	if v.Numeric {
		if n, err := strconv.ParseInt(value, 10, 64); err != nil || n < 0 {
			return "must be a whole number"
		}
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	return ""
}

// ValidateSelection checks a selection count against the validation rules.
func (v FieldValidation) ValidateSelection(count int) string {
	if v.Required && count == 0 {
		return "at least one selection required"
	}
	if v.Min > 0 && count < v.Min {
		return fmt.Sprintf("select at least %d", v.Min)
	}
	if v.Max > 0 && count > v.Max {
		return fmt.Sprintf("select at most %d", v.Max)
	}
	return ""
}
