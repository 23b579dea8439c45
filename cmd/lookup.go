package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/xivtypes/internal/log"
	"github.com/zjrosen/xivtypes/internal/presentation"
)

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <domain> <input>",
		Short: "Parse input as a variant of a domain",
		Long: `Parse input the way the xiv package does (case-insensitive, accepting
codes, display names and abbreviations) and print the variant it resolves to.

Unknown input exits non-zero with the parse error.

Examples:
  xivtypes lookup job blm
  xivtypes lookup world balmung
  xivtypes lookup guardian "nald'thal"
  xivtypes lookup datacenter 한국`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := presentation.FindDomain(args[0])
			if err != nil {
				return err
			}

			variant, err := domain.Lookup(args[1])
			if err != nil {
				log.Debug(log.CatRegistry, "Lookup failed", "domain", domain.Name, "input", args[1])
				return err
			}
			log.Debug(log.CatRegistry, "Lookup resolved", "domain", domain.Name, "input", args[1], "code", variant.Code)

			formatter := presentation.NewFormatter(cmd.OutOrStdout(), c.cfg.Format)
			return formatter.FormatVariant(variant)
		},
	}
}
