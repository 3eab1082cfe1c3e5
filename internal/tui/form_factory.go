package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
	"github.com/hay-kot/campus/internal/tui/components/form"
)

type fieldType string

const (
	fieldText        fieldType = "text"
	fieldTextArea    fieldType = "textarea"
	fieldPassword    fieldType = "password"
	fieldSelect      fieldType = "select"
	fieldMultiSelect fieldType = "multi-select"
)

// fieldSpec declares one field of a record form. Variable doubles as the
// validation field name, so record errors land on the right input.
type fieldSpec struct {
	Variable    string
	Type        fieldType
	Label       string
	Placeholder string
	Default     string
	Options     []string
	Selected    []string
	Validation  form.FieldValidation
}

// newFormDialog creates a form.Dialog from field specs.
func newFormDialog(title string, fields []fieldSpec) (*form.Dialog, error) {
	inputs := make([]form.Field, 0, len(fields))
	variables := make([]string, 0, len(fields))

	for _, f := range fields {
		var comp form.Field
		switch f.Type {
		case fieldText:
			comp = form.NewTextField(f.Label, f.Placeholder, f.Default, f.Validation)
		case fieldTextArea:
			comp = form.NewTextAreaField(f.Label, f.Placeholder, f.Default, f.Validation)
		case fieldPassword:
			comp = form.NewPasswordField(f.Label, f.Validation)
		case fieldSelect:
			comp = form.NewSelectFormField(f.Label, f.Options, f.Default)
		case fieldMultiSelect:
			comp = form.NewMultiSelectFormField(f.Label, f.Options, f.Selected...).WithValidation(f.Validation)
		default:
			return nil, fmt.Errorf("unknown form field type: %s", f.Type)
		}
		inputs = append(inputs, comp)
		variables = append(variables, f.Variable)
	}

	return form.NewDialog(title, inputs, variables), nil
}

// formModal drives a form dialog for one entry. build turns the submitted
// values into the confirm payload; an error from build keeps the form
// open with the messages attached to their fields.
type formModal struct {
	dialog *form.Dialog
	build  func(d *form.Dialog) (any, error)
	h      Handlers
}

func newFormModal(kind modal.Kind, title string, fields []fieldSpec, build func(d *form.Dialog) (any, error), h Handlers) Component {
	d, err := newFormDialog(title, fields)
	if err != nil {
		return newFallback(kind, err.Error(), h)
	}
	return &formModal{dialog: d, build: build, h: h}
}

func (m *formModal) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	switch {
	case m.dialog.Cancelled():
		m.h.Close()
	case m.dialog.Submitted():
		payload, err := m.build(m.dialog)
		if err != nil {
			m.dialog.Reopen()
			return tea.Batch(cmd, m.dialog.SetFieldErrors(fieldErrors(err)))
		}
		m.h.Confirm(payload)
	}
	return cmd
}

// CapturesCancel keeps esc inside the form while a select list filters.
func (m *formModal) CapturesCancel() bool {
	return m.dialog.CapturesEsc()
}

// TakesText keeps printable cancel keys in the focused input.
func (m *formModal) TakesText() bool {
	return m.dialog.TakesText()
}

func (m *formModal) View(_, _ int) string {
	return styles.ModalStyle.Render(m.dialog.View())
}

// fieldErrors flattens record validation errors by field name. Errors
// without a field are keyed by "" and shown under the form.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var fe criterio.FieldErrors
	if errors.As(err, &fe) {
		for _, e := range fe {
			out[e.Field] = e.Err.Error()
		}
		return out
	}

	out[""] = err.Error()
	return out
}
