package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyard/engram/internal/config"
)

// SearchCmd returns the `engram search` command: ranked search one-shot.
func SearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memories by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := newClient(cfg)

			results, err := client.Search(strings.Join(args, " "), limit)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			out := c.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "no matches")
				return nil
			}
			for _, res := range results {
				category := res.Category
				if category == "" {
					category = "-"
				}
				fmt.Fprintf(out, "%.2f  %-12s  %s\n", res.Score, category, res.Title)
				if res.Snippet != "" {
					fmt.Fprintf(out, "      %s\n", res.Snippet)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results")
	return cmd
}
