package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xivtypes/internal/log"
	"github.com/zjrosen/xivtypes/internal/presentation"
)

func newDumpCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the whole compiled-in snapshot",
		Long: `Write the snapshot this build carries: the game patch and every variant
of every domain. Keep a YAML dump per release so the next content patch can
be reviewed with "xivtypes diff".

Examples:
  xivtypes dump > snapshot-7.0.yaml
  xivtypes dump --output snapshot-7.0.yaml
  xivtypes dump -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := presentation.BuildSnapshot()

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output) //nolint:gosec // G304: output path comes from the user
				if err != nil {
					return fmt.Errorf("creating dump file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := presentation.NewFormatter(out, c.cfg.Format).FormatSnapshot(snap); err != nil {
				log.ErrorErr(log.CatOutput, "Failed to write dump", err, "output", output)
				return fmt.Errorf("writing dump: %w", err)
			}
			log.Info(log.CatOutput, "Wrote snapshot dump", "patch", snap.Patch, "domains", len(snap.Domains), "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
