package bookmarks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)
	return s
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestAddPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")

	s, err := Open(path)
	require.NoError(t, err)
	bm, err := s.Add("mem-1", "Standup notes", "work")
	require.NoError(t, err)
	assert.NotEmpty(t, bm.ID)

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, reopened.Len())
	assert.True(t, reopened.IsBookmarked("mem-1"))
	assert.Equal(t, "Standup notes", reopened.List()[0].Title)
}

func TestAddIsIdempotentPerMemory(t *testing.T) {
	s := testStore(t)
	first, err := s.Add("mem-1", "a", "")
	require.NoError(t, err)
	second, err := s.Add("mem-1", "a", "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, s.Len())
}

func TestRemove(t *testing.T) {
	s := testStore(t)
	_, err := s.Add("mem-1", "a", "")
	require.NoError(t, err)

	require.NoError(t, s.Remove("mem-1"))
	assert.False(t, s.IsBookmarked("mem-1"))

	// absent removal is a no-op
	require.NoError(t, s.Remove("mem-1"))
}

func TestToggle(t *testing.T) {
	s := testStore(t)

	on, err := s.Toggle("mem-1", "a", "work")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := s.Toggle("mem-1", "a", "work")
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, 0, s.Len())
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	_, err := s.Add("mem-1", "older", "")
	require.NoError(t, err)

	// Force distinct timestamps.
	s.items[0].SavedAt = time.Now().Add(-time.Hour)

	_, err = s.Add("mem-2", "newer", "")
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Title)
	assert.Equal(t, "older", list[1].Title)
}

func TestOpenCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}
