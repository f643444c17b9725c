package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/bookmarks"
	"github.com/halcyard/engram/internal/cmd"
	"github.com/halcyard/engram/internal/config"
	"github.com/halcyard/engram/internal/i18n"
	"github.com/halcyard/engram/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "engram",
		Short: "Engram - memory server browser",
		Long:  "Engram CLI: browse memories, filter by category, bookmark, tag, and export.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.RenderCmd())
	root.AddCommand(cmd.ExportCmd())
	root.AddCommand(cmd.StatusCmd())
	root.AddCommand(cmd.SearchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	baseURL := cfg.ServerURL
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	client := api.NewClient(baseURL, cfg.APIKey)

	store, err := bookmarks.Open(filepath.Join(config.DataDir(), "bookmarks.json"))
	if err != nil {
		return fmt.Errorf("open bookmarks: %w", err)
	}

	app := ui.NewApp(client, cfg, i18n.New(cfg.Language), store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
