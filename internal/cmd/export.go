package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/config"
	"github.com/halcyard/engram/internal/export"
	"github.com/halcyard/engram/internal/logger"
	"github.com/halcyard/engram/internal/palette"
)

// ExportCmd returns the `engram export` command: fetch memories from the
// server and write them to a file.
func ExportCmd() *cobra.Command {
	var (
		formatName string
		category   string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export memories to an html, markdown, or text file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(os.Stderr)
			client := newClient(cfg)

			params := api.QueryParams{"limit": "500"}
			if category != "" {
				params["category"] = category
			}
			memories, err := client.ListMemories(params)
			if err != nil {
				log.ServerError("list memories", err)
				return fmt.Errorf("fetch memories: %w", err)
			}
			if len(memories) == 0 {
				return fmt.Errorf("no memories to export")
			}

			path := output
			if path == "" {
				path = export.DefaultFilename(format, time.Now())
			}
			exporter := export.New(palette.New(cfg.CategoryColors))
			if err := exporter.Write(path, format, memories); err != nil {
				return err
			}
			log.ExportWritten(path, string(format), len(memories))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "html", "export format: html, markdown, text")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only export memories in this category")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default engram-export-<date>.<ext>)")
	return cmd
}

func newClient(cfg *config.Config) *api.Client {
	if cfg.ServerURL == "" {
		return api.NewDefaultClient(cfg.APIKey)
	}
	return api.NewClient(cfg.ServerURL, cfg.APIKey)
}
