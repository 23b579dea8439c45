package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xivtypes/internal/log"
	"github.com/zjrosen/xivtypes/internal/presentation"
)

// ErrSnapshotsDiffer is returned by diff --exit-code when the dump and the
// compiled-in snapshot differ.
var ErrSnapshotsDiffer = errors.New("snapshots differ")

func newDiffCmd(c *cli) *cobra.Command {
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "diff <old-dump.yaml>",
		Short: "Compare an older snapshot dump with this build",
		Long: `Show a line diff from a YAML dump written by an earlier build to the
snapshot compiled into this one. Both sides are re-encoded the same way
first, so only data changes show up.

Examples:
  xivtypes diff snapshot-6.5.yaml
  xivtypes diff snapshot-6.5.yaml --color always | less -R
  xivtypes diff snapshot-7.0.yaml --exit-code   # non-zero when anything changed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path) //nolint:gosec // G304: dump path comes from the user
			if err != nil {
				return fmt.Errorf("reading dump: %w", err)
			}

			old, err := presentation.ParseSnapshotYAML(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			oldText, err := presentation.MarshalSnapshotYAML(old)
			if err != nil {
				return err
			}

			current := presentation.BuildSnapshot()
			newText, err := presentation.MarshalSnapshotYAML(current)
			if err != nil {
				return err
			}

			lines := presentation.DiffText(oldText, newText)
			summary := presentation.Summarize(lines)
			log.Debug(log.CatOutput, "Diffed snapshots",
				"old_patch", old.Patch, "new_patch", current.Patch,
				"added", summary.Added, "deleted", summary.Deleted)

			out := cmd.OutOrStdout()
			if !summary.Changed() {
				_, err := fmt.Fprintf(out, "no changes between %s (patch %s) and patch %s\n", path, old.Patch, current.Patch)
				return err
			}

			styles := presentation.NewStyles(out, c.cfg.Color)
			oldLabel := fmt.Sprintf("%s (patch %s)", path, old.Patch)
			newLabel := fmt.Sprintf("compiled (patch %s)", current.Patch)
			if err := presentation.RenderDiff(out, styles, oldLabel, newLabel, lines); err != nil {
				return fmt.Errorf("writing diff: %w", err)
			}
			if _, err := fmt.Fprintf(out, "%d line(s) added, %d line(s) removed\n", summary.Added, summary.Deleted); err != nil {
				return err
			}

			if exitCode {
				return ErrSnapshotsDiffer
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit non-zero when the snapshots differ")
	return cmd
}
