package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyard/engram/internal/bookmarks"
	"github.com/halcyard/engram/internal/i18n"
	"github.com/halcyard/engram/internal/palette"
	"github.com/halcyard/engram/internal/ui/components"
)

const bookmarksPageSize = 14

// openMemoryMsg asks the app to switch to the memories tab focused on a
// memory.
type openMemoryMsg struct{ memoryID string }

// BookmarksModel is the saved-memories panel.
type BookmarksModel struct {
	tr    *i18n.Translator
	pal   *palette.Palette
	store *bookmarks.Store

	list  *components.List
	items []bookmarks.Bookmark

	width  int
	height int
}

// NewBookmarksModel builds the bookmarks view.
func NewBookmarksModel(tr *i18n.Translator, pal *palette.Palette, store *bookmarks.Store) BookmarksModel {
	m := BookmarksModel{
		tr:    tr,
		pal:   pal,
		store: store,
		list:  components.NewList(bookmarksPageSize),
	}
	m.Reload()
	return m
}

// Reload re-reads the store; called when the tab gains focus so bookmarks
// added from the memories view appear.
func (m *BookmarksModel) Reload() {
	m.items = m.store.List()
	titles := make([]string, len(m.items))
	for i, bm := range m.items {
		titles[i] = bm.Title
	}
	m.list.SetItems(titles)
}

// SetSize stores the window dimensions.
func (m *BookmarksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the bookmarks view.
func (m BookmarksModel) Update(msg tea.Msg) (BookmarksModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.list.Up()
	case "down", "j":
		m.list.Down()
	case "enter":
		if len(m.items) > 0 {
			id := m.items[m.list.Selected()].MemoryID
			return m, func() tea.Msg { return openMemoryMsg{memoryID: id} }
		}
	case "d", "x":
		if len(m.items) > 0 {
			bm := m.items[m.list.Selected()]
			if err := m.store.Remove(bm.MemoryID); err != nil {
				return m, toastCmd(toastError, err.Error())
			}
			m.Reload()
		}
	}
	return m, nil
}

// View renders the bookmarks tab.
func (m BookmarksModel) View() string {
	if len(m.items) == 0 {
		return MutedStyle.Render(m.tr.T("bookmarks.empty"))
	}

	rowWidth := m.width - 8
	if rowWidth < 30 {
		rowWidth = 30
	}

	rows := make([]string, 0, len(m.items))
	for i := range m.list.Visible() {
		idx := m.list.Offset + i
		bm := m.items[idx]

		cursor := "  "
		if m.list.IsCursor(idx) {
			cursor = SelectedStyle.Render("› ")
		}
		title := components.ClampEllipsis(components.SanitizeOneLine(bm.Title), rowWidth-24)
		if m.list.IsCursor(idx) {
			title = SelectedStyle.Render(title)
		} else {
			title = NormalStyle.Render(title)
		}
		meta := MutedStyle.Render(bm.SavedAt.Local().Format("2006-01-02"))
		badge := ""
		if bm.Category != "" {
			badge = m.pal.Style(bm.Category).Render(" " + bm.Category)
		}
		rows = append(rows, cursor+WarningStyle.Render("★ ")+title+badge+"  "+meta)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Hints returns the status-bar hints for this view.
func (m BookmarksModel) Hints() []string {
	return []string{
		components.Hint("↑/↓", m.tr.T("hint.navigate")),
		components.Hint("enter", m.tr.T("bookmarks.open")),
		components.Hint("d", m.tr.T("bookmarks.remove")),
	}
}
