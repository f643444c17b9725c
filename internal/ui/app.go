package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/bookmarks"
	"github.com/halcyard/engram/internal/config"
	"github.com/halcyard/engram/internal/i18n"
	"github.com/halcyard/engram/internal/palette"
	"github.com/halcyard/engram/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabMemories  = 0
	tabBookmarks = 1
	tabCount     = 2
)

// --- Messages ---

type healthCheckedMsg struct {
	attempt int
	err     error
}
type healthRetryMsg struct{ attempt int }
type spinnerTickMsg struct{}
type statsLoadedMsg struct {
	stats *api.Stats
	err   error
}
type toastMsg struct {
	level string
	text  string
}
type clearToastMsg struct{}

const (
	toastSuccess = "success"
	toastError   = "error"
)

const (
	maxHealthAttempts = 5
	healthRetryDelay  = 750 * time.Millisecond
)

func toastCmd(level, text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{level: level, text: text} }
}

// --- App Model ---

// App is the root TUI model: it gates the tabs behind the startup health
// check and routes input to the active view.
type App struct {
	client *api.Client
	config *config.Config
	tr     *i18n.Translator
	pal    *palette.Palette
	store  *bookmarks.Store

	tab    int
	width  int
	height int

	checking     bool
	checkFailed  bool
	checkAttempt int
	checkErrText string
	spinnerFrame int

	stats *api.Stats
	toast *toastMsg

	memories  MemoriesModel
	bookmarks BookmarksModel
}

// NewApp builds the root model.
func NewApp(client *api.Client, cfg *config.Config, tr *i18n.Translator, store *bookmarks.Store) App {
	pal := palette.New(cfg.CategoryColors)
	return App{
		client:    client,
		config:    cfg,
		tr:        tr,
		pal:       pal,
		store:     store,
		checking:  true,
		memories:  NewMemoriesModel(client, tr, pal, store),
		bookmarks: NewBookmarksModel(tr, pal, store),
	}
}

// Init starts the health check and the spinner.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.healthCmd(1), spinnerTick())
}

func (a App) healthCmd(attempt int) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		status, err := client.WithTimeout(3 * time.Second).Health()
		if err == nil && status != "ok" {
			err = errServerStatus(status)
		}
		return healthCheckedMsg{attempt: attempt, err: err}
	}
}

func (a App) statsCmd() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		stats, err := client.GetStats()
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// Update routes messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.memories.SetSize(msg.Width, msg.Height)
		a.bookmarks.SetSize(msg.Width, msg.Height)
		return a, nil

	case spinnerTickMsg:
		if !a.checking {
			return a, nil
		}
		a.spinnerFrame++
		return a, spinnerTick()

	case healthCheckedMsg:
		return a.handleHealthChecked(msg)

	case healthRetryMsg:
		return a, a.healthCmd(msg.attempt)

	case statsLoadedMsg:
		if msg.err == nil {
			a.stats = msg.stats
		}
		return a, nil

	case toastMsg:
		a.toast = &msg
		return a, tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
			return clearToastMsg{}
		})

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case openMemoryMsg:
		a.tab = tabMemories
		a.memories.FocusMemory(msg.memoryID)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.routeToTab(msg)
}

func (a App) handleHealthChecked(msg healthCheckedMsg) (tea.Model, tea.Cmd) {
	a.checkAttempt = msg.attempt
	if msg.err == nil {
		a.checking = false
		a.checkFailed = false
		return a, tea.Batch(a.statsCmd(), a.memories.Init())
	}

	a.checkErrText = msg.err.Error()
	if msg.attempt >= maxHealthAttempts {
		a.checking = false
		a.checkFailed = true
		return a, nil
	}

	next := msg.attempt + 1
	return a, tea.Tick(healthRetryDelay, func(time.Time) tea.Msg {
		return healthRetryMsg{attempt: next}
	})
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.checkFailed {
		switch key {
		case "r":
			a.checkFailed = false
			a.checking = true
			a.checkAttempt = 0
			return a, tea.Batch(a.healthCmd(1), spinnerTick())
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.checking {
		if key == "q" || key == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	// Dropdown and tag input capture keys before global bindings.
	if a.tab == tabMemories && a.memories.CapturesInput() {
		return a.routeToTab(msg)
	}

	switch key {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "tab":
		a.setTab((a.tab + 1) % tabCount)
		return a, nil
	case "1":
		a.setTab(tabMemories)
		return a, nil
	case "2":
		a.setTab(tabBookmarks)
		return a, nil
	}

	return a.routeToTab(msg)
}

func (a *App) setTab(tab int) {
	a.tab = tab
	if tab == tabBookmarks {
		a.bookmarks.Reload()
	}
}

func (a App) routeToTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.tab {
	case tabMemories:
		a.memories, cmd = a.memories.Update(msg)
	case tabBookmarks:
		a.bookmarks, cmd = a.bookmarks.Update(msg)
	}
	return a, cmd
}

// View renders the whole screen.
func (a App) View() string {
	if a.checking {
		return loadingOverlay(a.tr, a.spinnerFrame, a.checkAttempt, maxHealthAttempts, a.width, a.height)
	}
	if a.checkFailed {
		return failedOverlay(a.tr, a.checkErrText, a.width, a.height)
	}

	sections := []string{
		statsBar(a.tr, a.stats, a.store.Len(), a.width),
		a.tabRow(),
	}

	switch a.tab {
	case tabMemories:
		sections = append(sections, a.memories.View())
		sections = append(sections, components.StatusBar(a.memories.Hints()))
	case tabBookmarks:
		sections = append(sections, a.bookmarks.View())
		sections = append(sections, components.StatusBar(a.bookmarks.Hints()))
	}

	if a.toast != nil {
		style := SuccessStyle
		if a.toast.level == toastError {
			style = ErrorStyle
		}
		sections = append(sections, style.Render(a.toast.text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) tabRow() string {
	names := []string{a.tr.T("tab.memories"), a.tr.T("tab.bookmarks")}
	row := ""
	for i, name := range names {
		if i == a.tab {
			row += TabActiveStyle.Render(name)
			continue
		}
		row += TabInactiveStyle.Render(name)
	}
	return row
}

type errServerStatus string

func (e errServerStatus) Error() string {
	return "server status " + string(e)
}
