package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/bookmarks"
	"github.com/halcyard/engram/internal/export"
	"github.com/halcyard/engram/internal/i18n"
	"github.com/halcyard/engram/internal/markdown"
	"github.com/halcyard/engram/internal/palette"
	"github.com/halcyard/engram/internal/ui/components"
)

// --- Messages ---

type memoriesLoadedMsg struct {
	items []api.Memory
	err   error
}
type memCategoriesLoadedMsg struct {
	cats []api.Category
	err  error
}
type memBulkTaggedMsg struct {
	updated int
	err     error
}
type memExportedMsg struct {
	path  string
	count int
	err   error
}

const memoriesPageSize = 12

// MemoriesModel is the main browsing view: filterable memory list with a
// markdown preview pane and multi-select actions.
type MemoriesModel struct {
	client   *api.Client
	tr       *i18n.Translator
	pal      *palette.Palette
	store    *bookmarks.Store
	renderer *markdown.Renderer

	list   *components.List
	items  []api.Memory
	filter *components.Select

	loading bool
	errText string
	tagging bool
	tagBuf  string

	width  int
	height int
}

// NewMemoriesModel builds the memories view.
func NewMemoriesModel(client *api.Client, tr *i18n.Translator, pal *palette.Palette, store *bookmarks.Store) MemoriesModel {
	return MemoriesModel{
		client:   client,
		tr:       tr,
		pal:      pal,
		store:    store,
		renderer: markdown.New(),
		list:     components.NewList(memoriesPageSize),
		filter:   components.NewSelect(tr.T("memories.filter"), []string{tr.T("memories.all")}),
		loading:  true,
	}
}

// Init starts the memory and category loads.
func (m MemoriesModel) Init() tea.Cmd {
	return tea.Batch(m.loadMemoriesCmd(""), m.loadCategoriesCmd())
}

func (m MemoriesModel) loadMemoriesCmd(category string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		params := api.QueryParams{"limit": "200"}
		if category != "" {
			params["category"] = category
		}
		items, err := client.ListMemories(params)
		return memoriesLoadedMsg{items: items, err: err}
	}
}

func (m MemoriesModel) loadCategoriesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cats, err := client.ListCategories()
		return memCategoriesLoadedMsg{cats: cats, err: err}
	}
}

func (m MemoriesModel) bulkTagCmd(ids []string, tag string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		res, err := client.BulkTagMemories(api.BulkTagInput{
			MemoryIDs: ids,
			Tags:      []string{tag},
			Op:        "add",
		})
		if err != nil {
			return memBulkTaggedMsg{err: err}
		}
		return memBulkTaggedMsg{updated: res.Updated}
	}
}

func (m MemoriesModel) exportCmd(memories []api.Memory) tea.Cmd {
	pal := m.pal
	return func() tea.Msg {
		exporter := export.New(pal)
		path := export.DefaultFilename(export.FormatHTML, time.Now())
		if err := exporter.Write(path, export.FormatHTML, memories); err != nil {
			return memExportedMsg{err: err}
		}
		return memExportedMsg{path: path, count: len(memories)}
	}
}

// SetSize stores the window dimensions.
func (m *MemoriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CapturesInput reports whether a widget owns the keyboard, so global
// bindings must stand down.
func (m MemoriesModel) CapturesInput() bool {
	return m.filter.IsOpen() || m.tagging
}

// FocusMemory moves the cursor onto the memory with the given id, if it is
// in the loaded list.
func (m *MemoriesModel) FocusMemory(id string) {
	for i, mem := range m.items {
		if mem.ID == id {
			for m.list.Selected() > i {
				m.list.Up()
			}
			for m.list.Selected() < i {
				m.list.Down()
			}
			return
		}
	}
}

// Update handles messages for the memories view.
func (m MemoriesModel) Update(msg tea.Msg) (MemoriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case memoriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.items = msg.items
		m.list.SetItems(memoryTitles(msg.items))
		return m, nil

	case memCategoriesLoadedMsg:
		if msg.err != nil {
			return m, nil
		}
		options := []string{m.tr.T("memories.all")}
		for _, c := range msg.cats {
			options = append(options, c.Name)
		}
		m.filter.SetOptions(options)
		return m, nil

	case memBulkTaggedMsg:
		if msg.err != nil {
			return m, toastCmd(toastError, msg.err.Error())
		}
		m.list.ClearMarks()
		return m, tea.Batch(
			toastCmd(toastSuccess, fmt.Sprintf("tagged %d", msg.updated)),
			m.loadMemoriesCmd(m.selectedCategory()),
		)

	case memExportedMsg:
		if msg.err != nil {
			return m, toastCmd(toastError, msg.err.Error())
		}
		m.list.ClearMarks()
		return m, toastCmd(toastSuccess, m.tr.T("export.written", msg.path))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MemoriesModel) handleKey(msg tea.KeyMsg) (MemoriesModel, tea.Cmd) {
	key := msg.String()

	if m.filter.IsOpen() {
		if m.filter.HandleKey(key) {
			m.loading = true
			return m, m.loadMemoriesCmd(m.selectedCategory())
		}
		return m, nil
	}

	if m.tagging {
		switch key {
		case "esc":
			m.tagging = false
			m.tagBuf = ""
		case "enter":
			tag := m.tagBuf
			m.tagging = false
			m.tagBuf = ""
			ids := m.markedIDs()
			if tag != "" && len(ids) > 0 {
				return m, m.bulkTagCmd(ids, tag)
			}
		case "backspace":
			if m.tagBuf != "" {
				m.tagBuf = m.tagBuf[:len(m.tagBuf)-1]
			}
		default:
			if len(key) == 1 {
				m.tagBuf += key
			}
		}
		return m, nil
	}

	switch key {
	case "up", "k":
		m.list.Up()
	case "down", "j":
		m.list.Down()
	case "f", "/":
		m.filter.Open()
	case " ":
		m.list.ToggleMark()
	case "esc":
		m.list.ClearMarks()
	case "b":
		return m.toggleBookmarks()
	case "t":
		if m.list.MarkedCount() > 0 {
			m.tagging = true
		}
	case "e":
		targets := m.markedMemories()
		if len(targets) == 0 && len(m.items) > 0 {
			targets = []api.Memory{m.items[m.list.Selected()]}
		}
		if len(targets) > 0 {
			return m, m.exportCmd(targets)
		}
	case "r":
		m.loading = true
		return m, tea.Batch(m.loadMemoriesCmd(m.selectedCategory()), m.loadCategoriesCmd())
	}
	return m, nil
}

func (m MemoriesModel) toggleBookmarks() (MemoriesModel, tea.Cmd) {
	targets := m.markedMemories()
	if len(targets) == 0 {
		if len(m.items) == 0 {
			return m, nil
		}
		targets = []api.Memory{m.items[m.list.Selected()]}
	}

	added := 0
	for _, mem := range targets {
		on, err := m.store.Toggle(mem.ID, mem.Title, mem.Category)
		if err != nil {
			return m, toastCmd(toastError, err.Error())
		}
		if on {
			added++
		}
	}
	m.list.ClearMarks()
	if added > 0 {
		return m, toastCmd(toastSuccess, fmt.Sprintf("+%d %s", added, m.tr.T("tab.bookmarks")))
	}
	return m, nil
}

func (m MemoriesModel) selectedCategory() string {
	v := m.filter.Value()
	if v == m.tr.T("memories.all") {
		return ""
	}
	return v
}

func (m MemoriesModel) markedIDs() []string {
	marked := m.list.Marked()
	ids := make([]string, 0, len(marked))
	for _, idx := range marked {
		if idx < len(m.items) {
			ids = append(ids, m.items[idx].ID)
		}
	}
	return ids
}

func (m MemoriesModel) markedMemories() []api.Memory {
	marked := m.list.Marked()
	out := make([]api.Memory, 0, len(marked))
	for _, idx := range marked {
		if idx < len(m.items) {
			out = append(out, m.items[idx])
		}
	}
	return out
}

// View renders the memories tab.
func (m MemoriesModel) View() string {
	if m.loading {
		return MutedStyle.Render("…")
	}
	if m.errText != "" {
		return ErrorStyle.Render(m.errText)
	}

	filterRow := m.filter.View()
	if m.tagging {
		filterRow = WarningStyle.Render(m.tr.T("actionbar.tag")+": ") + NormalStyle.Render(m.tagBuf+"▏")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.listPane(), m.previewPane())

	sections := []string{filterRow, body}
	if bar := components.ActionBar(
		m.tr.T("actionbar.selected", m.list.MarkedCount()),
		m.list.MarkedCount(),
		[]components.Action{
			{Key: "b", Desc: m.tr.T("actionbar.bookmark")},
			{Key: "t", Desc: m.tr.T("actionbar.tag")},
			{Key: "e", Desc: m.tr.T("actionbar.export")},
			{Key: "esc", Desc: m.tr.T("actionbar.clear")},
		},
	); bar != "" {
		sections = append(sections, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m MemoriesModel) listPane() string {
	if len(m.items) == 0 {
		return MutedStyle.Render(m.tr.T("memories.empty"))
	}

	listWidth := m.width/2 - 4
	if listWidth < 24 {
		listWidth = 24
	}

	rows := make([]string, 0, memoriesPageSize)
	for i, title := range m.list.Visible() {
		idx := m.list.Offset + i
		mem := m.items[idx]

		marker := "  "
		if m.list.IsMarked(idx) {
			marker = MarkStyle.Render("◆ ")
		}
		cursor := "  "
		if m.list.IsCursor(idx) {
			cursor = SelectedStyle.Render("› ")
		}
		bookmark := " "
		if m.store.IsBookmarked(mem.ID) {
			bookmark = WarningStyle.Render("★")
		}

		label := components.ClampEllipsis(components.SanitizeOneLine(title), listWidth-10)
		if m.list.IsCursor(idx) {
			label = SelectedStyle.Render(label)
		} else {
			label = NormalStyle.Render(label)
		}
		badge := ""
		if mem.Category != "" {
			badge = " " + m.pal.Style(mem.Category).Render("●")
		}
		rows = append(rows, cursor+marker+bookmark+" "+label+badge)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m MemoriesModel) previewPane() string {
	if len(m.items) == 0 {
		return ""
	}
	mem := m.items[m.list.Selected()]

	previewWidth := m.width/2 - 6
	if previewWidth < 30 {
		previewWidth = 30
	}

	header := m.pal.Badge(mem.Category).Render(mem.Category)
	if mem.Category == "" {
		header = MutedStyle.Render("—")
	}
	content := m.renderer.RenderTerm(components.SanitizeText(mem.Content), previewWidth-4)
	body := TitleStyle.Render(components.SanitizeOneLine(mem.Title)) + "\n" + header + "\n\n" + content

	return PreviewBoxStyle.Width(previewWidth).Render(body)
}

// Hints returns the status-bar hints for this view.
func (m MemoriesModel) Hints() []string {
	return []string{
		components.Hint("↑/↓", m.tr.T("hint.navigate")),
		components.Hint("space", m.tr.T("hint.select")),
		components.Hint("f", m.tr.T("memories.filter")),
		components.Hint("b", m.tr.T("actionbar.bookmark")),
		components.Hint("e", m.tr.T("actionbar.export")),
	}
}

func memoryTitles(items []api.Memory) []string {
	titles := make([]string, len(items))
	for i, mem := range items {
		titles[i] = mem.Title
	}
	return titles
}
