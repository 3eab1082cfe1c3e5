package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/pkg/tuitest"
)

var (
	enterKey = tuitest.Key(tea.KeyEnter)
	escKey   = tuitest.Key(tea.KeyEsc)
	tabKey   = tuitest.Key(tea.KeyTab)
	downKey  = tuitest.Key(tea.KeyDown)
	upKey    = tuitest.Key(tea.KeyUp)
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	ctrlSKey = tuitest.Key(tea.KeyCtrlS)
)

func keyRunes(s string) tea.KeyMsg {
	return tuitest.Runes(s)
}

// typeText sends s to c one rune at a time.
func typeText(c Component, s string) {
	for _, r := range s {
		c.Update(keyRunes(string(r)))
	}
}

// handlerSpy records what a component asked its entry to do.
type handlerSpy struct {
	closed    int
	confirmed []any
}

func (s *handlerSpy) handlers() Handlers {
	return Handlers{
		Close:   func() { s.closed++ },
		Confirm: func(payload any) { s.confirmed = append(s.confirmed, payload) },
	}
}

// lastPayload returns the most recent confirm payload, failing the test
// when there is none.
func (s *handlerSpy) lastPayload(t *testing.T) any {
	t.Helper()
	if len(s.confirmed) == 0 {
		t.Fatal("component did not confirm")
	}
	return s.confirmed[len(s.confirmed)-1]
}

func newTestStack() *modal.Manager {
	return modal.NewManager(zerolog.Nop())
}
