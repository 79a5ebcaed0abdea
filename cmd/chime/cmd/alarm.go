package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haseeb-Arshad/chime/internal/config"
	"github.com/Haseeb-Arshad/chime/internal/service/alarmctl"
)

// errToggleArgument rejects toggle arguments other than on/off.
var errToggleArgument = errors.New(`argument must be "on" or "off"`)

var (
	// alarmDisabled stores the --disabled flag for `alarm set`.
	alarmDisabled bool

	// alarmCmd groups the one-shot alarm management commands.
	alarmCmd = &cobra.Command{
		Use:   "alarm",
		Short: "Manage the persisted alarm.",
		Long: `Edits the alarm in the preference state file. The daemon reads the file
at startup, so a running daemon picks changes up on its next start.`,
	}

	// alarmSetCmd stores a new alarm, replacing any existing one.
	alarmSetCmd = &cobra.Command{
		Use:   "set HH:MM",
		Short: "Set the alarm, replacing any existing one.",
		Long: `Validates the time against the 24-hour HH:MM pattern and stores a fresh
alarm. Replacement is wholesale: the new alarm gets its own id and
creation timestamp.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := alarmctl.Set(cmd.Context(), alarmOptions(), args[0], !alarmDisabled)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Alarm set for %s (%s).\n",
				created.Time, enabledLabel(created.Enabled))

			return nil
		},
	}

	// alarmClearCmd removes the alarm.
	alarmClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Remove the alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := alarmctl.Clear(cmd.Context(), alarmOptions()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Alarm cleared.")

			return nil
		},
	}

	// alarmToggleCmd enables or disables the alarm without replacing it.
	alarmToggleCmd = &cobra.Command{
		Use:   "toggle on|off",
		Short: "Enable or disable the alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool

			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("%w, got %q", errToggleArgument, args[0])
			}

			toggled, err := alarmctl.Toggle(cmd.Context(), alarmOptions(), enabled)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Alarm for %s is now %s.\n",
				toggled.Time, enabledLabel(toggled.Enabled))

			return nil
		},
	}

	// alarmStatusCmd prints the effective preferences and the alarm.
	alarmStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the current time, preferences, and alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := alarmctl.Status(cmd.Context(), alarmOptions())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			format := config.Format12Hour
			if report.Use24Hour {
				format = config.Format24Hour
			}

			fmt.Fprintf(out, "Current time: %s (%s, %s)\n", report.Now.String(), report.Timezone, format)
			fmt.Fprintf(out, "Date: %s, %s %d, %d\n",
				report.Now.DayName, report.Now.MonthName, report.Now.DayOfMonth, report.Now.Year)
			fmt.Fprintf(out, "Theme: %s\n", report.Theme)

			if report.Alarm == nil {
				fmt.Fprintln(out, "Alarm: none")

				return nil
			}

			fmt.Fprintf(out, "Alarm: %s (%s), created %s\n",
				report.Alarm.Time,
				enabledLabel(report.Alarm.Enabled),
				report.Alarm.CreatedAt.Format(time.RFC3339))

			return nil
		},
	}
)

// alarmOptions builds the shared store options from persistent flags.
func alarmOptions() *alarmctl.Options {
	return &alarmctl.Options{
		ConfigPath: configPath,
		StateFile:  stateFile,
	}
}

// enabledLabel renders the enabled flag for command output.
func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	alarmSetCmd.Flags().BoolVar(&alarmDisabled, "disabled", false, "store the alarm disabled")

	alarmCmd.AddCommand(alarmSetCmd, alarmClearCmd, alarmToggleCmd, alarmStatusCmd)
	rootCmd.AddCommand(alarmCmd)
}
