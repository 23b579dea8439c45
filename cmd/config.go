package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xivtypes/internal/config"
)

// ErrConfigExists is returned by config init when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

func newConfigCmd(c *cli) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Create and edit the xivtypes config file",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.allowMissingConfig = true
			return c.initConfig(cmd)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		Long: `Write a commented default config file to --config, or to
~/.config/xivtypes/config.yaml when no path is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfgFile
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one config value, keeping comments",
		Long: fmt.Sprintf(`Set one top-level config value in place. Comments and other keys are
kept, and the result is validated before it is written.

Keys: %s

Examples:
  xivtypes config set format json
  xivtypes config set color never`, strings.Join(config.Keys(), ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			if err := config.SaveValue(path, args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "set %s = %s in %s\n", args[0], args[1], path)
			return err
		},
	}

	configCmd.AddCommand(initCmd, setCmd)
	return configCmd
}
