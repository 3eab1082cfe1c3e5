package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay_Center(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)

	out := Overlay(bg, "AB\nCD", 10, 5, Center)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....AB....", lines[1])
	assert.Equal(t, "....CD....", lines[2])
	assert.Equal(t, "..........", lines[4])
}

func TestOverlay_BottomRight(t *testing.T) {
	out := Overlay("", "X", 4, 3, BottomRight)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "  X ", lines[1])
}

func TestOverlay_EmptyForeground(t *testing.T) {
	assert.Equal(t, "bg", Overlay("bg", "", 10, 5, Center))
}

func TestOverlay_ClipsWideForeground(t *testing.T) {
	out := Overlay("", "ABCDEFGH", 4, 1, Center)
	assert.Equal(t, "ABCD", out)
}

func TestHelpDialog_View(t *testing.T) {
	h := NewHelpDialog("Keyboard Shortcuts", []HelpDialogSection{
		{Title: "Students", Entries: []HelpEntry{{Key: "n", Desc: "new student"}}},
		{Title: "Fees", Entries: []HelpEntry{{Key: "p", Desc: "collect payment"}}},
	})

	out := h.View()
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "new student")
	assert.Contains(t, out, "Fees")
}
