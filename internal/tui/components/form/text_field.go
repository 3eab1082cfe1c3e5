package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	input      textinput.Model
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewTextField creates a new single-line text input field. At most one
// validation is applied.
func NewTextField(label, placeholder, defaultVal string, validation ...FieldValidation) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	f := &TextField{
		input: ti,
		label: label,
	}
	if len(validation) > 0 {
		f.validation = validation[0]
	}
	return f
}

// NewPasswordField creates a text field that masks its input.
func NewPasswordField(label string, validation ...FieldValidation) *TextField {
	f := NewTextField(label, "", "", validation...)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	parts := []string{title, f.input.View()}
	if f.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(f.err))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Value() any    { return f.input.Value() }
func (f *TextField) Label() string { return f.label }

func (f *TextField) Validate() string  { return f.validation.ValidateText(f.input.Value()) }
func (f *TextField) SetError(e string) { f.err = e }
func (f *TextField) Error() string     { return f.err }
