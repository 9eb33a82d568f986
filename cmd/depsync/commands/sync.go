package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depsync/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Merge example dependencies into the root manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			config, _ := cmd.Flags().GetString("config")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			check, _ := cmd.Flags().GetBool("check")
			strategy, _ := cmd.Flags().GetString("strategy")

			return c.app.Sync(cmd.Context(), app.SyncOptions{
				Dir:      dir,
				Config:   config,
				DryRun:   dryRun,
				Check:    check,
				Strategy: strategy,
			})
		},
	}

	cmd.Flags().StringP("dir", "d", ".", "Repository root to operate in")
	cmd.Flags().StringP("config", "c", "", "Policy file path (default: depsync.yaml in the repository root)")
	cmd.Flags().Bool("dry-run", false, "Show proposed changes without writing")
	cmd.Flags().Bool("check", false, "Fail if the root manifest would change (for CI)")
	cmd.Flags().String("strategy", "", "Writer strategy: structural or textual (overrides policy)")
	return cmd
}
