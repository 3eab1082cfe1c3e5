package form

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/campus/internal/core/styles"
)

// MultiSelectField is a multi-select form field with checkbox toggles.
type MultiSelectField struct {
	list       list.Model
	options    []string
	checked    map[int]bool
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// multiSelectDelegate renders items with checkbox state.
type multiSelectDelegate struct {
	checked map[int]bool
}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	check := "[ ] "
	if d.checked[item.index] {
		check = "[x] "
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor+style.Render(check+item.label))
}

// NewMultiSelectFormField creates a multi-select field from static options.
// Options listed in preselected start checked.
func NewMultiSelectFormField(label string, options []string, preselected ...string) *MultiSelectField {
	checked := make(map[int]bool)
	for i, opt := range options {
		for _, p := range preselected {
			if opt == p {
				checked[i] = true
			}
		}
	}

	return &MultiSelectField{
		list:    newOptionList(options, multiSelectDelegate{checked: checked}),
		options: options,
		checked: checked,
		label:   label,
	}
}

// WithValidation sets the selection-count rules of the field.
func (f *MultiSelectField) WithValidation(v FieldValidation) *MultiSelectField {
	f.validation = v
	return f
}

func (f *MultiSelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !f.list.SettingFilter() {
		switch keyMsg.String() {
		case " ", "space":
			if si, ok := f.list.SelectedItem().(selectItem); ok {
				f.checked[si.index] = !f.checked[si.index]
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *MultiSelectField) View() string {
	return renderListField(f.label, f.focused, f.list, f.err)
}

func (f *MultiSelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *MultiSelectField) Blur() {
	f.focused = false
}

func (f *MultiSelectField) Focused() bool { return f.focused }
func (f *MultiSelectField) Label() string { return f.label }

// Value returns the selected options as []string.
func (f *MultiSelectField) Value() any {
	selected := []string{}
	for i, opt := range f.options {
		if f.checked[i] {
			selected = append(selected, opt)
		}
	}
	return selected
}

// SelectedIndices returns the indices of checked items.
func (f *MultiSelectField) SelectedIndices() []int {
	var indices []int
	for i := range f.options {
		if f.checked[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

// IsFiltering returns whether the list is currently filtering.
func (f *MultiSelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}

func (f *MultiSelectField) Validate() string {
	return f.validation.ValidateSelection(len(f.SelectedIndices()))
}
func (f *MultiSelectField) SetError(e string) { f.err = e }
func (f *MultiSelectField) Error() string     { return f.err }
