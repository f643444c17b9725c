package ui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/bookmarks"
	"github.com/halcyard/engram/internal/config"
	"github.com/halcyard/engram/internal/i18n"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	store, err := bookmarks.Open(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)
	client := api.NewClient("http://localhost:0", "")
	return NewApp(client, config.Default(), i18n.New("en"), store)
}

func TestAppStartsChecking(t *testing.T) {
	app := newTestApp(t)

	assert.True(t, app.checking)
	assert.Contains(t, app.View(), "Connecting")
}

func TestHealthCheckSuccessUnlocksTabs(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(healthCheckedMsg{attempt: 1})
	updated := model.(App)

	assert.False(t, updated.checking)
	assert.False(t, updated.checkFailed)
	require.NotNil(t, cmd)
	assert.Contains(t, updated.View(), "Memories")
}

func TestHealthCheckRetriesBeforeFailing(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(healthCheckedMsg{attempt: 1, err: errors.New("connection refused")})
	updated := model.(App)

	assert.True(t, updated.checking)
	assert.False(t, updated.checkFailed)
	require.NotNil(t, cmd)
}

func TestHealthCheckFailsAfterMaxAttempts(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(healthCheckedMsg{attempt: maxHealthAttempts, err: errors.New("connection refused")})
	updated := model.(App)

	assert.False(t, updated.checking)
	assert.True(t, updated.checkFailed)
	assert.Contains(t, updated.View(), "Could not reach")
	assert.Contains(t, updated.View(), "press r to retry")
}

func TestFailedOverlayRetryRestartsCheck(t *testing.T) {
	app := newTestApp(t)
	app.checking = false
	app.checkFailed = true

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	updated := model.(App)

	assert.True(t, updated.checking)
	assert.False(t, updated.checkFailed)
	require.NotNil(t, cmd)
}

func TestTabKeyCyclesTabs(t *testing.T) {
	app := newTestApp(t)
	app.checking = false

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated := model.(App)
	assert.Equal(t, tabBookmarks, updated.tab)

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated = model.(App)
	assert.Equal(t, tabMemories, updated.tab)
}

func TestNumberKeysJumpToTab(t *testing.T) {
	app := newTestApp(t)
	app.checking = false

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	updated := model.(App)
	assert.Equal(t, tabBookmarks, updated.tab)

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	updated = model.(App)
	assert.Equal(t, tabMemories, updated.tab)
}

func TestToastAppearsAndClears(t *testing.T) {
	app := newTestApp(t)
	app.checking = false

	model, cmd := app.Update(toastMsg{level: toastSuccess, text: "saved"})
	updated := model.(App)

	require.NotNil(t, updated.toast)
	require.NotNil(t, cmd)
	assert.Contains(t, updated.View(), "saved")

	model, _ = updated.Update(clearToastMsg{})
	updated = model.(App)
	assert.Nil(t, updated.toast)
}

func TestStatsLoadedShowsInBar(t *testing.T) {
	app := newTestApp(t)
	app.checking = false
	app.width = 100

	model, _ := app.Update(statsLoadedMsg{stats: &api.Stats{Memories: 42, Categories: 3}})
	updated := model.(App)

	assert.Contains(t, updated.View(), "42 memories")
}

func TestOpenMemorySwitchesToMemoriesTab(t *testing.T) {
	app := newTestApp(t)
	app.checking = false
	app.tab = tabBookmarks
	app.memories.items = []api.Memory{{ID: "mem-1", Title: "First"}, {ID: "mem-2", Title: "Second"}}
	app.memories.list.SetItems([]string{"First", "Second"})

	model, _ := app.Update(openMemoryMsg{memoryID: "mem-2"})
	updated := model.(App)

	assert.Equal(t, tabMemories, updated.tab)
	assert.Equal(t, 1, updated.memories.list.Selected())
}

func TestQuitDisabledWhileFilterOpen(t *testing.T) {
	app := newTestApp(t)
	app.checking = false
	app.memories.filter.Open()

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	updated := model.(App)

	// "q" must reach the filter, not quit the program.
	assert.Nil(t, cmd)
	assert.True(t, updated.memories.CapturesInput())
}
