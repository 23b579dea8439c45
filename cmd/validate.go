package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xivtypes/internal/audit"
	"github.com/zjrosen/xivtypes/internal/presentation"
	"github.com/zjrosen/xivtypes/xiv"
)

// ErrAuditFailed is returned by validate when any check fails.
var ErrAuditFailed = errors.New("snapshot audit failed")

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Audit the compiled-in snapshot",
		Long: `Run every registry check against the compiled-in snapshot: declared
cardinalities, duplicate variants and codes, parse round trips of codes and
names, total relationships, the world and clan partitions, job and class
consistency, and the guardian moon calendar.

Exits non-zero when any check fails. Run it after editing a snapshot table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styles := presentation.NewStyles(out, c.cfg.Color)

			violations := audit.Run()
			if len(violations) == 0 {
				_, err := fmt.Fprintf(out, "%s snapshot %s: all checks passed\n",
					styles.OK.Render("ok"), xiv.SnapshotPatch)
				return err
			}

			for _, v := range violations {
				if _, err := fmt.Fprintf(out, "%s %s %s: %s\n",
					styles.Fail.Render("FAIL"), styles.Domain.Render(v.Domain), v.Check, v.Detail); err != nil {
					return err
				}
			}
			return fmt.Errorf("%w: %d violation(s)", ErrAuditFailed, len(violations))
		},
	}
}
