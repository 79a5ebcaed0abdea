package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Haseeb-Arshad/chime/internal/config"
)

// errConfigExists guards against clobbering an existing configuration file.
var errConfigExists = errors.New("configuration file already exists")

var (
	// configForce stores the --force flag for `config init`.
	configForce bool

	// configCmd groups configuration file commands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file.",
	}

	// configInitCmd writes a configuration file populated with defaults.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultConfigFilename
			}

			if !configForce {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%w: %q (use --force to overwrite)", errConfigExists, path)
				}
			}

			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s.\n", path)

			return nil
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
