package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/export"
	"github.com/halcyard/engram/internal/markdown"
	"github.com/halcyard/engram/internal/palette"
)

// RenderCmd returns the `engram render` command: memory text in, HTML out.
func RenderCmd() *cobra.Command {
	var full bool
	var title string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render memory text to HTML (reads stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text, err := readInput(c.InOrStdin(), args)
			if err != nil {
				return err
			}

			if full {
				exporter := export.New(palette.New(nil))
				doc, err := exporter.Render(export.FormatHTML, []api.Memory{{
					Title:   title,
					Content: text,
				}})
				if err != nil {
					return err
				}
				fmt.Fprint(c.OutOrStdout(), doc)
				return nil
			}

			fmt.Fprint(c.OutOrStdout(), markdown.New().Render(text))
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "wrap output in a standalone styled document")
	cmd.Flags().StringVar(&title, "title", "engram render "+time.Now().Format("2006-01-02"), "document title used with --full")
	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
