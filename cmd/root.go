// Package cmd implements the xivtypes maintainer CLI.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/xivtypes/internal/config"
	"github.com/zjrosen/xivtypes/internal/log"
)

var version = "dev"

// cli carries the state shared by one command tree: its viper instance,
// the resolved configuration and the debug log cleanup.
type cli struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	closeLog func()

	// allowMissingConfig lets config subcommands name a file that does not
	// exist yet.
	allowMissingConfig bool
}

// NewRootCmd builds the xivtypes command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{v: viper.New(), cfg: config.Defaults()}

	rootCmd := &cobra.Command{
		Use:   "xivtypes",
		Short: "Inspect and audit the compiled-in FFXIV reference data",
		Long: `xivtypes inspects the closed reference-data types of the xiv package
(worlds, data centers, races, clans, jobs, classes, guardians and roles).

Use it to look up how an input parses, dump the snapshot a build carries,
diff that dump against an older one when a content patch lands, and audit
the tables before releasing.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "",
		"config file (default: ./.xivtypes/config.yaml or ~/.config/xivtypes/config.yaml)")
	flags.StringP("format", "f", "", "output format: yaml, json, or table")
	flags.String("color", "", "colored output: auto, always, or never")
	flags.Bool("debug", false, "write a debug log (stderr unless log_file is set)")

	// Bind flags to viper
	_ = c.v.BindPFlag("format", flags.Lookup("format"))
	_ = c.v.BindPFlag("color", flags.Lookup("color"))
	_ = c.v.BindPFlag("debug", flags.Lookup("debug"))

	rootCmd.AddCommand(
		newListCmd(c),
		newLookupCmd(c),
		newDumpCmd(c),
		newDiffCmd(c),
		newValidateCmd(c),
		newConfigCmd(c),
	)
	return rootCmd, c
}

func (c *cli) initConfig(cmd *cobra.Command) error {
	defaults := config.Defaults()
	c.v.SetDefault("format", defaults.Format)
	c.v.SetDefault("color", defaults.Color)
	c.v.SetDefault("debug", defaults.Debug)
	c.v.SetDefault("log_file", defaults.LogFile)
	c.v.SetDefault("log_level", defaults.LogLevel)

	c.v.SetEnvPrefix("XIVTYPES")
	c.v.AutomaticEnv()

	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if _, err := os.Stat(c.cfgFile); err != nil && c.allowMissingConfig {
			return c.finishConfig(cmd)
		}
	} else {
		// Config lookup order:
		// 1. .xivtypes/config.yaml (current directory)
		// 2. ~/.config/xivtypes/config.yaml (user config)
		if _, err := os.Stat(filepath.Join(".xivtypes", "config.yaml")); err == nil {
			c.v.SetConfigFile(filepath.Join(".xivtypes", "config.yaml"))
		} else {
			c.v.AddConfigPath(config.DefaultConfigDir())
			c.v.SetConfigName("config")
			c.v.SetConfigType("yaml")
		}
	}

	if err := c.v.ReadInConfig(); err != nil {
		// A missing config is fine, defaults apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return c.finishConfig(cmd)
}

// finishConfig resolves the merged settings and starts the debug log.
func (c *cli) finishConfig(cmd *cobra.Command) error {
	if err := c.v.Unmarshal(&c.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.cfg.Debug {
		if c.cfg.LogFile != "" {
			closeLog, err := log.Init(c.cfg.LogFile)
			if err != nil {
				return fmt.Errorf("opening debug log: %w", err)
			}
			c.closeLog = closeLog
		} else {
			log.InitWriter(cmd.ErrOrStderr())
		}
		// Validate already rejected unknown levels
		level, _ := c.cfg.Level()
		log.SetMinLevel(level)
	}

	log.Debug(log.CatConfig, "Loaded config",
		"file", c.v.ConfigFileUsed(),
		"format", c.cfg.Format,
		"color", c.cfg.Color)
	return nil
}

func (c *cli) close() {
	if c.closeLog != nil {
		c.closeLog()
		c.closeLog = nil
	}
}

// configPath is where config subcommands read and write: --config, then the
// file viper loaded, then the user config path.
func (c *cli) configPath() string {
	if c.cfgFile != "" {
		return c.cfgFile
	}
	if used := c.v.ConfigFileUsed(); used != "" {
		if _, err := os.Stat(used); err == nil {
			return used
		}
	}
	return config.DefaultConfigPath()
}

// Execute runs the root command
func Execute() error {
	rootCmd, c := newRootCmd()
	defer c.close()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}
