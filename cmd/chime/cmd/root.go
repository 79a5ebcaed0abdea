package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Haseeb-Arshad/chime/internal/config"
	"github.com/Haseeb-Arshad/chime/internal/service/daemon"
	"github.com/Haseeb-Arshad/chime/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where preferences are persisted.
	stateFile string
	// timezone overrides the persisted timezone.
	timezone string
	// timeFormat overrides the persisted display format.
	timeFormat string
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command running the clock daemon.
	rootCmd = &cobra.Command{
		Use:   "chime",
		Short: "Run the drift-corrected clock and alarm daemon.",
		Long: `Starts the clock daemon that ticks once per wall-clock second, corrects
scheduler and clock-source drift, converts time into the selected timezone,
and fires the configured alarm exactly once per matching minute.

Preferences (timezone, 12/24-hour format, theme, alarm) persist in a JSON
state file and survive restarts. Flag values override the persisted ones
and become the new preference.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return daemon.Run(ctx, &daemon.Options{
				ConfigPath: configPath,
				StateFile:  stateFile,
				Timezone:   timezone,
				TimeFormat: timeFormat,
				LogLevel:   logLevel,
			})
		},
	}
)

// Execute runs the chime CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&stateFile, "state-file", "s", "", "path to the preference state file (defaults to the configured one)")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error or fatal")
	rootCmd.Flags().StringVarP(&timezone, "timezone", "t", "", `timezone id: an IANA name or "local"`)
	rootCmd.Flags().StringVarP(&timeFormat, "format", "f", "", `time format: "12h" or "24h"`)
}
