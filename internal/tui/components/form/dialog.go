package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	focusedField int
	submitted    bool
	cancelled    bool
	formError    string
	Title        string
}

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		Title:     title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "ctrl+s":
		return d.submit()
	case "enter":
		if d.isTextAreaFocused() || d.isFocusedFieldFiltering() {
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "esc":
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// CapturesEsc reports whether esc currently belongs to the focused field
// rather than cancelling the form.
func (d *Dialog) CapturesEsc() bool {
	return d.isFocusedFieldFiltering()
}

// TakesText reports whether typed characters belong to the focused field:
// a text input, a text area or a list filter.
func (d *Dialog) TakesText() bool {
	if len(d.fields) == 0 {
		return false
	}
	switch d.fields[d.focusedField].(type) {
	case *TextField, *TextAreaField:
		return true
	}
	return d.isFocusedFieldFiltering()
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	parts := []string{styles.ModalTitleStyle.Render(d.Title), ""}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	if d.formError != "" {
		parts = append(parts, "", styles.FormErrorStyle.Render(d.formError))
	}

	help := styles.TextMutedStyle.Render("tab: next  shift+tab: prev  enter: next/submit  ctrl+s: submit  esc: cancel")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// String returns the string value of the named variable.
func (d *Dialog) String(variable string) string {
	s, _ := d.FormValues()[variable].(string)
	return s
}

// Strings returns the []string value of the named variable.
func (d *Dialog) Strings(variable string) []string {
	s, _ := d.FormValues()[variable].([]string)
	return s
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Reopen clears the submitted flag so a form rejected by a caller-side
// check can be edited again.
func (d *Dialog) Reopen() { d.submitted = false }

// SetFieldErrors attaches messages to fields by variable name and focuses
// the first field with an error. Messages for unknown variables, or for
// fields that cannot show an error, are shown under the form.
func (d *Dialog) SetFieldErrors(errs map[string]string) tea.Cmd {
	d.formError = ""
	first := -1
	for i, name := range d.variables {
		v, ok := d.fields[i].(validator)
		if !ok {
			continue
		}
		msg := errs[name]
		v.SetError(msg)
		if msg != "" && first < 0 {
			first = i
		}
	}
	for name, msg := range errs {
		i := d.indexOf(name)
		if i < 0 {
			d.formError = msg
			continue
		}
		if _, ok := d.fields[i].(validator); !ok && msg != "" {
			d.formError = d.fields[i].Label() + " " + msg
		}
	}
	if first < 0 {
		return nil
	}
	return d.focus(first)
}

func (d *Dialog) indexOf(variable string) int {
	for i, name := range d.variables {
		if name == variable {
			return i
		}
	}
	return -1
}

// validate runs every field's rules and reports the first invalid index,
// or -1 when all fields pass.
func (d *Dialog) validate() int {
	first := -1
	for i, f := range d.fields {
		v, ok := f.(validator)
		if !ok {
			continue
		}
		msg := v.Validate()
		v.SetError(msg)
		if msg != "" && first < 0 {
			first = i
		}
	}
	return first
}

func (d *Dialog) submit() (*Dialog, tea.Cmd) {
	if invalid := d.validate(); invalid >= 0 {
		return d, d.focus(invalid)
	}
	d.submitted = true
	return d, nil
}

func (d *Dialog) focus(i int) tea.Cmd {
	if i == d.focusedField && d.fields[i].Focused() {
		return nil
	}
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[i].Focus()
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		d.submitted = true
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field, submit
		return d.submit()
	}

	return d, d.focus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}
	return d, d.focus(d.focusedField - 1)
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if len(d.fields) == 0 {
		return false
	}
	_, ok := d.fields[d.focusedField].(*TextAreaField)
	return ok
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
