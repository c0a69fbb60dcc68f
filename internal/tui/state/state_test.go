package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIState_Cursor(t *testing.T) {
	s := NewUIState()

	s.MoveCursor(1, 3)
	s.MoveCursor(1, 3)
	s.MoveCursor(1, 3)
	assert.Equal(t, 2, s.Cursor(), "cursor stops at the last row")

	s.MoveCursor(-5, 3)
	assert.Equal(t, 0, s.Cursor())

	s.MoveCursor(2, 3)
	s.ClampCursor(1)
	assert.Equal(t, 0, s.Cursor())

	s.ClampCursor(0)
	assert.Equal(t, 0, s.Cursor(), "empty screens keep the cursor at zero")
}

func TestUIState_Scroll(t *testing.T) {
	s := NewUIState()
	s.SetWindowSize(80, 10)
	assert.Equal(t, 4, s.VisibleRows())

	s.MoveCursor(6, 20)
	assert.Equal(t, 3, s.ScrollOffset())

	s.SetWindowSize(80, 2)
	assert.Equal(t, 1, s.VisibleRows())
}

func TestUIState_Mode(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, NormalMode, s.Mode())

	s.SetMode(ConfirmMode)
	assert.Equal(t, ConfirmMode, s.Mode())
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	s.Add(LevelError, "")
	assert.False(t, s.HasAny(), "empty messages are dropped")

	s.Add(LevelError, "Could not save your changes.")
	s.Add(LevelInfo, "List created")
	assert.Len(t, s.All(), 2)
	assert.Equal(t, LevelError, s.All()[0].Level)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestDialog(t *testing.T) {
	d := NewConfirmDialog(DialogDeleteList, "Delete list", "Delete \"Groceries\"?", "y", "n")

	assert.Equal(t, DialogDeleteList, d.Kind)
	assert.True(t, d.Destructive)
	assert.Equal(t, []DialogAction{{Key: "y", Label: "Delete"}, {Key: "n", Label: "Cancel"}}, d.Actions)
}

func TestInputState(t *testing.T) {
	s := NewInputState()
	s.Open(InputNewItem, "New item")
	assert.Equal(t, InputNewItem, s.Purpose)

	s.Clear()
	assert.Equal(t, InputNone, s.Purpose)
	assert.Empty(t, s.Prompt)
}
