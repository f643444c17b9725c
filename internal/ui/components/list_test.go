package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListCursorMovesAndScrolls(t *testing.T) {
	l := NewList(2)
	l.SetItems([]string{"a", "b", "c", "d"})

	assert.Equal(t, []string{"a", "b"}, l.Visible())

	l.Down()
	l.Down()
	assert.Equal(t, 2, l.Selected())
	assert.Equal(t, []string{"b", "c"}, l.Visible())

	l.Up()
	assert.Equal(t, 1, l.Selected())
}

func TestListCursorClampsAtBounds(t *testing.T) {
	l := NewList(5)
	l.SetItems([]string{"a", "b"})

	l.Up()
	assert.Equal(t, 0, l.Selected())

	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, 1, l.Selected())
}

func TestListToggleMark(t *testing.T) {
	l := NewList(5)
	l.SetItems([]string{"a", "b", "c"})

	l.ToggleMark()
	l.Down()
	l.Down()
	l.ToggleMark()

	assert.True(t, l.IsMarked(0))
	assert.False(t, l.IsMarked(1))
	assert.True(t, l.IsMarked(2))
	assert.Equal(t, []int{0, 2}, l.Marked())
	assert.Equal(t, 2, l.MarkedCount())

	l.ToggleMark() // unmark cursor item (index 2)
	assert.Equal(t, []int{0}, l.Marked())
}

func TestListSetItemsResetsMarks(t *testing.T) {
	l := NewList(5)
	l.SetItems([]string{"a", "b"})
	l.ToggleMark()

	l.SetItems([]string{"x"})
	assert.Equal(t, 0, l.MarkedCount())
	assert.Equal(t, 0, l.Selected())
}

func TestListToggleMarkOnEmptyList(t *testing.T) {
	l := NewList(5)
	l.ToggleMark()
	assert.Equal(t, 0, l.MarkedCount())
}

func TestListClearMarks(t *testing.T) {
	l := NewList(5)
	l.SetItems([]string{"a", "b"})
	l.ToggleMark()
	l.ClearMarks()
	assert.Equal(t, 0, l.MarkedCount())
	assert.Nil(t, l.Marked())
}
