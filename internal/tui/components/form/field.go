// Package form implements the field widgets and focus-cycling dialog used
// by the record forms (students, teachers, classes, events, payments).
package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea/select, []string for multi-select
	Label() string // Display label for the field
}

// validator is implemented by fields that carry validation rules. Error
// is the message shown under the field, empty when valid.
type validator interface {
	Validate() string
	SetError(msg string)
	Error() string
}
