package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/campus/internal/core/notify"
)

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.True(t, k.Valid())
	}
}

func TestKind_Names(t *testing.T) {
	assert.Equal(t, "delete-confirm", KindDeleteConfirm.String())
	assert.Equal(t, "kind(-1)", Kind(-1).String())
	assert.False(t, KindNone.Valid())
	assert.False(t, kindCount.Valid())

	_, err := ParseKind("teleport")
	assert.ErrorContains(t, err, "unknown modal kind")
}

func TestKind_IsNotice(t *testing.T) {
	notices := 0
	for _, k := range Kinds() {
		if k.IsNotice() {
			notices++
		}
	}
	assert.Equal(t, 4, notices)
	assert.False(t, KindNotificationHistory.IsNotice())
}

func TestKind_Level(t *testing.T) {
	assert.Equal(t, notify.LevelSuccess, KindSuccess.Level())
	assert.Equal(t, notify.LevelError, KindError.Level())
	assert.Equal(t, notify.LevelWarning, KindWarning.Level())
	assert.Equal(t, notify.LevelInfo, KindInfo.Level())
}
