package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/halcyard/engram/internal/config"
)

// StatusCmd returns the `engram status` command: one-shot health and stats.
func StatusCmd() *cobra.Command {
	var wait int
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show server health and memory counts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := newClient(cfg)
			out := c.OutOrStdout()

			if wait > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()
				attempts, err := client.WaitHealthy(ctx, wait)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "server healthy after %d attempt(s)\n", attempts)
			} else {
				status, err := client.Health()
				if err != nil {
					return fmt.Errorf("health check: %w", err)
				}
				fmt.Fprintf(out, "server status: %s\n", status)
			}

			stats, err := client.GetStats()
			if err != nil {
				return fmt.Errorf("fetch stats: %w", err)
			}
			fmt.Fprintf(out, "memories:   %d\n", stats.Memories)
			fmt.Fprintf(out, "categories: %d\n", stats.Categories)
			fmt.Fprintf(out, "tags:       %d\n", stats.Tags)
			fmt.Fprintf(out, "pinned:     %d\n", stats.Pinned)
			if stats.StorageMB != "" {
				fmt.Fprintf(out, "storage:    %s MB\n", stats.StorageMB)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&wait, "wait", 0, "retry the health check up to N times before giving up")
	return cmd
}
