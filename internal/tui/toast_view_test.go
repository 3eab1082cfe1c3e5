package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
)

func TestToast_renders_each_kind(t *testing.T) {
	n := modal.Notice{Title: "Heads up", Message: "test msg"}

	tests := []struct {
		props modal.Props
		icon  string
	}{
		{modal.SuccessNotice{Notice: n}, styles.IconNotifySuccess},
		{modal.ErrorNotice{Notice: n}, styles.IconNotifyError},
		{modal.WarningNotice{Notice: n}, styles.IconNotifyWarning},
		{modal.InfoNotice{Notice: n}, styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(tt.props.Kind().String(), func(t *testing.T) {
			kind := tt.props.Kind()
			c := noticeRenderer(kind)(modal.Entry{Kind: kind, Props: tt.props}, Handlers{})

			out := c.View(80, 24)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "Heads up")
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToast_enter_closes(t *testing.T) {
	spy := &handlerSpy{}
	props := modal.InfoNotice{Notice: modal.Notice{Title: "Saved"}}
	c := noticeRenderer(modal.KindInfo)(modal.Entry{Kind: modal.KindInfo, Props: props}, spy.handlers())

	c.Update(keyRunes("x"))
	assert.Equal(t, 0, spy.closed)

	c.Update(enterKey)
	assert.Equal(t, 1, spy.closed)
	assert.Empty(t, spy.confirmed)
}

func TestToast_wrong_props_renders_fallback(t *testing.T) {
	c := noticeRenderer(modal.KindError)(modal.Entry{Kind: modal.KindError, Props: modal.HelpProps{}}, Handlers{})

	assert.Contains(t, c.View(80, 24), "Unknown modal: error")
}

func TestScheduleDismiss(t *testing.T) {
	t.Run("sticky notice has no timer", func(t *testing.T) {
		assert.Nil(t, scheduleDismiss(modal.Dismissal{ID: "n1"}))
	})

	t.Run("auto notice ticks", func(t *testing.T) {
		cmd := scheduleDismiss(modal.Dismissal{ID: "n1", After: time.Millisecond})
		require.NotNil(t, cmd)

		msg, ok := cmd().(dismissMsg)
		require.True(t, ok)
		assert.Equal(t, modal.EntryID("n1"), msg.dismissal.ID)
	})
}
