package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/halcyard/engram/internal/i18n"
)

var overlayBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(1, 3)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// loadingOverlay renders the startup health-check screen: a spinner, the
// connecting message, and the current attempt count.
func loadingOverlay(tr *i18n.Translator, frame, attempt, maxAttempts, width, height int) string {
	spinner := WarningStyle.Render(spinnerFrames[frame%len(spinnerFrames)])
	lines := []string{
		spinner + " " + NormalStyle.Render(tr.T("loading.checking")),
	}
	if attempt > 1 {
		lines = append(lines, MutedStyle.Render(tr.T("loading.attempt", attempt, maxAttempts)))
	}
	return centerOverlay(strings.Join(lines, "\n"), width, height)
}

// failedOverlay renders the unreachable-server screen with the retry hint.
func failedOverlay(tr *i18n.Translator, errText string, width, height int) string {
	lines := []string{
		ErrorStyle.Render(tr.T("loading.failed")),
	}
	if errText != "" {
		lines = append(lines, MutedStyle.Render(errText))
	}
	lines = append(lines, "", WarningStyle.Render(tr.T("loading.retry")))
	return centerOverlay(strings.Join(lines, "\n"), width, height)
}

func centerOverlay(content string, width, height int) string {
	box := overlayBoxStyle.Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
