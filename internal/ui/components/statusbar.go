package components

import "github.com/charmbracelet/lipgloss"

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingTop(1)
)

// StatusBar renders the bottom hint bar.
func StatusBar(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	row := ""
	for i, h := range hints {
		if i > 0 {
			row += "  "
		}
		row += h
	}
	return statusBarStyle.Render(row)
}

// Hint formats a single keybind hint like "↑/↓ navigate".
func Hint(key, desc string) string {
	return keyCapStyle.Render(key) + " " + hintDescStyle.Render(desc)
}
