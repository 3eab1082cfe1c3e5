package form

import tea "github.com/charmbracelet/bubbletea"

var (
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlSKey    = tea.KeyMsg{Type: tea.KeyCtrlS}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
