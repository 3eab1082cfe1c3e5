package form

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/styles"
)

const maxVisibleOptions = 8

// SelectFormField is a single-select form field wrapping list.Model.
type SelectFormField struct {
	list    list.Model
	options []string
	label   string
	focused bool
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor+style.Render(item.label))
}

func newOptionList(options []string, delegate list.ItemDelegate) list.Model {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	height := max(min(len(options), maxVisibleOptions), 1)

	l := list.New(items, delegate, 40, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisibleOptions)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = "/ "
	l.FilterInput.PromptStyle = styles.TextPrimaryStyle
	l.FilterInput.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	return l
}

// NewSelectFormField creates a single-select field from static options.
// defaultVal pre-selects the matching option if found.
func NewSelectFormField(label string, options []string, defaultVal string) *SelectFormField {
	l := newOptionList(options, selectDelegate{})
	for i, opt := range options {
		if opt == defaultVal {
			l.Select(i)
			break
		}
	}

	return &SelectFormField{
		list:    l,
		options: options,
		label:   label,
	}
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	return renderListField(f.label, f.focused, f.list, "")
}

func renderListField(label string, focused bool, l list.Model, errMsg string) string {
	titleStyle := styles.TextMutedStyle
	if focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(label)}
	if l.SettingFilter() {
		parts = append(parts, l.FilterInput.View())
	}
	parts = append(parts, l.View())
	if errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(content)
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }

func (f *SelectFormField) Value() any {
	item := f.list.SelectedItem()
	if item == nil {
		return ""
	}
	if si, ok := item.(selectItem); ok && si.index >= 0 && si.index < len(f.options) {
		return f.options[si.index]
	}
	return ""
}

// Index returns the position of the selected option in the original
// options slice, or -1 when nothing is selected.
func (f *SelectFormField) Index() int {
	if si, ok := f.list.SelectedItem().(selectItem); ok {
		return si.index
	}
	return -1
}

func (f *SelectFormField) Label() string { return f.label }

// IsFiltering returns whether the list is currently filtering.
func (f *SelectFormField) IsFiltering() bool {
	return f.list.SettingFilter()
}
