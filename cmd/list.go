package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xivtypes/internal/log"
	"github.com/zjrosen/xivtypes/internal/presentation"
)

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list <domain>",
		Short: "List every variant of a domain",
		Long: fmt.Sprintf(`List every variant of a domain in declaration order, with its code,
display name and relationships.

Domains: %s

Examples:
  # Every world with its data center and region
  xivtypes list world

  # Jobs as JSON
  xivtypes list job --format json | jq '.[] | select(.role == "Tank") | .code'

  # Aligned table
  xivtypes list datacenter -f table`, strings.Join(presentation.DomainKeys(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: presentation.DomainKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := presentation.FindDomain(args[0])
			if err != nil {
				return err
			}

			variants := domain.List()
			log.Debug(log.CatRegistry, "Listing domain", "domain", domain.Name, "count", len(variants))

			formatter := presentation.NewFormatter(cmd.OutOrStdout(), c.cfg.Format)
			return formatter.FormatVariants(variants)
		},
	}
}
