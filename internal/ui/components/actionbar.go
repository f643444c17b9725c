package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	actionBarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#7f57b4")).
			Padding(0, 1)
	actionCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#16161d")).
				Background(lipgloss.Color("#7f57b4")).
				Bold(true).
				Padding(0, 1)
	actionKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c78854")).
			Bold(true)
	actionDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))
)

// Action is a single keyed operation offered by the action bar.
type Action struct {
	Key  string
	Desc string
}

// ActionBar renders a bar shown while a multi-select is active: the
// selected count followed by the available actions. Returns "" when the
// selection is empty, which hides the bar.
func ActionBar(countLabel string, count int, actions []Action) string {
	if count <= 0 {
		return ""
	}
	parts := []string{actionCountStyle.Render(countLabel)}
	for _, a := range actions {
		parts = append(parts, actionKeyStyle.Render(a.Key)+" "+actionDescStyle.Render(a.Desc))
	}
	return actionBarStyle.Render(strings.Join(parts, "  "))
}
