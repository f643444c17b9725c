package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	selectBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(0, 1)
	selectClosedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da"))
	selectLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ba0bf"))
	selectCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)
	selectOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da"))
	selectFilterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c78854"))
)

// Select is a dropdown widget: closed it shows the current choice, open it
// shows a filterable option list. Typing narrows options with fuzzy
// matching.
type Select struct {
	Label   string
	options []string

	open     bool
	filter   string
	filtered []string
	cursor   int
	choice   int
	maxRows  int
}

// NewSelect builds a dropdown over the given options; the first option is
// preselected.
func NewSelect(label string, options []string) *Select {
	s := &Select{Label: label, maxRows: 8}
	s.SetOptions(options)
	return s
}

// SetOptions replaces the options, keeping the current choice when its
// value survives the swap.
func (s *Select) SetOptions(options []string) {
	current := s.Value()
	s.options = options
	s.choice = 0
	for i, opt := range options {
		if opt == current {
			s.choice = i
			break
		}
	}
	s.resetFilter()
}

// Value returns the chosen option, or "" when there are none.
func (s *Select) Value() string {
	if s.choice < 0 || s.choice >= len(s.options) {
		return ""
	}
	return s.options[s.choice]
}

// IsOpen reports whether the option list is showing.
func (s *Select) IsOpen() bool {
	return s.open
}

// Open shows the option list with a cleared filter.
func (s *Select) Open() {
	s.open = true
	s.resetFilter()
	for i, opt := range s.filtered {
		if opt == s.Value() {
			s.cursor = i
			break
		}
	}
}

// Close hides the option list without changing the choice.
func (s *Select) Close() {
	s.open = false
}

// HandleKey processes a key while open. It reports whether the choice was
// committed (enter on an option).
func (s *Select) HandleKey(key string) bool {
	switch key {
	case "esc":
		s.Close()
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "ctrl+n":
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
		}
	case "backspace":
		if s.filter != "" {
			s.filter = s.filter[:len(s.filter)-1]
			s.applyFilter()
		}
	case "enter":
		if s.cursor >= 0 && s.cursor < len(s.filtered) {
			picked := s.filtered[s.cursor]
			for i, opt := range s.options {
				if opt == picked {
					s.choice = i
					break
				}
			}
			s.Close()
			return true
		}
		s.Close()
	default:
		if len(key) == 1 {
			s.filter += key
			s.applyFilter()
		}
	}
	return false
}

func (s *Select) resetFilter() {
	s.filter = ""
	s.filtered = s.options
	s.cursor = 0
}

func (s *Select) applyFilter() {
	if s.filter == "" {
		s.filtered = s.options
		s.cursor = 0
		return
	}
	matches := fuzzy.Find(s.filter, s.options)
	s.filtered = make([]string, 0, len(matches))
	for _, m := range matches {
		s.filtered = append(s.filtered, m.Str)
	}
	s.cursor = 0
}

// View renders the widget.
func (s *Select) View() string {
	if !s.open {
		return selectLabelStyle.Render(s.Label+": ") + selectClosedStyle.Render(s.Value()) + selectLabelStyle.Render(" ▾")
	}

	var rows []string
	header := selectLabelStyle.Render(s.Label)
	if s.filter != "" {
		header += selectFilterStyle.Render(" /" + s.filter)
	}
	rows = append(rows, header)

	if len(s.filtered) == 0 {
		rows = append(rows, selectLabelStyle.Render("(no match)"))
	}
	limit := len(s.filtered)
	if limit > s.maxRows {
		limit = s.maxRows
	}
	start := 0
	if s.cursor >= s.maxRows {
		start = s.cursor - s.maxRows + 1
	}
	for i := start; i < start+limit && i < len(s.filtered); i++ {
		opt := s.filtered[i]
		if i == s.cursor {
			rows = append(rows, selectCursorStyle.Render("› "+opt))
			continue
		}
		rows = append(rows, selectOptionStyle.Render("  "+opt))
	}

	return selectBoxStyle.Render(strings.Join(rows, "\n"))
}
