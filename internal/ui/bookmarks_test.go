package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/engram/internal/bookmarks"
	"github.com/halcyard/engram/internal/i18n"
	"github.com/halcyard/engram/internal/palette"
)

func newTestBookmarks(t *testing.T) BookmarksModel {
	t.Helper()
	store, err := bookmarks.Open(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)
	m := NewBookmarksModel(i18n.New("en"), palette.New(nil), store)
	m.SetSize(100, 30)
	return m
}

func TestBookmarksEmptyState(t *testing.T) {
	m := newTestBookmarks(t)

	assert.Contains(t, m.View(), "Nothing bookmarked yet")
}

func TestBookmarksListsSavedMemories(t *testing.T) {
	m := newTestBookmarks(t)
	_, err := m.store.Add("mem-1", "Meeting notes", "work")
	require.NoError(t, err)
	_, err = m.store.Add("mem-2", "Pasta recipe", "cooking")
	require.NoError(t, err)
	m.Reload()

	view := m.View()
	assert.Contains(t, view, "Meeting notes")
	assert.Contains(t, view, "Pasta recipe")
}

func TestBookmarksEnterOpensMemory(t *testing.T) {
	m := newTestBookmarks(t)
	_, err := m.store.Add("mem-1", "Meeting notes", "work")
	require.NoError(t, err)
	m.Reload()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	open, ok := msg.(openMemoryMsg)
	require.True(t, ok)
	assert.Equal(t, "mem-1", open.memoryID)
}

func TestBookmarksRemove(t *testing.T) {
	m := newTestBookmarks(t)
	_, err := m.store.Add("mem-1", "Meeting notes", "work")
	require.NoError(t, err)
	m.Reload()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	assert.Equal(t, 0, m.store.Len())
	assert.Contains(t, m.View(), "Nothing bookmarked yet")
}

func TestBookmarksEnterOnEmptyListNoOp(t *testing.T) {
	m := newTestBookmarks(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}
