package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"recipebox/internal/config"

	"github.com/spf13/cobra"
)

var (
	configInitOutput string
	configInitForce  bool
)

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Writes the default settings to $XDG_CONFIG_HOME/recipebox/config.yaml
(or ~/.config/recipebox/config.yaml) unless --output is given.
An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and where they came from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := cfgSource
		if source == "" {
			source = "(defaults)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n%s\n", source, cfg.Summary())
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "", "path to write (default: user config dir)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configInitOutput
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
