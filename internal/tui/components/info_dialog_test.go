package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestInfoDialog_RendersSectionsItemsFooter(t *testing.T) {
	d := NewInfoDialog(
		"Amani Otieno",
		[]InfoSection{
			{
				Title: "Student",
				Items: []InfoItem{
					{Label: "Class", Value: "Grade 7A"},
					{Label: "Guardian", Value: "Grace Otieno"},
				},
			},
			{
				Title: "Fees",
				Items: []InfoItem{
					{Label: "Tuition", Value: "paid", Status: InfoStatusPass},
					{Label: "Lunch", Value: "partial", Status: InfoStatusWarn},
					{Label: "Trip", Value: "unpaid", Status: InfoStatusFail},
				},
			},
			{Title: "Notes"},
		},
		"footer summary",
		"[j/k] scroll  [esc] close",
		120,
		40,
	)

	out := d.View(120, 40)
	assert.Contains(t, out, "Amani Otieno")
	assert.Contains(t, out, "Student")
	assert.Contains(t, out, "Guardian")
	assert.Contains(t, out, "Grade 7A")
	assert.Contains(t, out, "footer summary")
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "✘")
}

func TestInfoDialog_Scroll(t *testing.T) {
	items := make([]InfoItem, 0, 50)
	for range 50 {
		items = append(items, InfoItem{Label: "item", Value: "value"})
	}

	d := NewInfoDialog("Attendance", []InfoSection{{Title: "Many", Items: items}}, "", "help", 70, 18)

	before := d.View(70, 18)
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	after := d.View(70, 18)

	assert.Contains(t, before, "Attendance")
	assert.Contains(t, after, "Attendance")
	assert.NotEqual(t, before, after)
}
