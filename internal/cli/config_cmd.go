package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), app.ConfigPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "db-path",
			Short: "Print the database location",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), app.DBPath)
				return nil
			},
		},
		newConfigSetUnitsCmd(app),
		newConfigSetStreakIntervalCmd(app),
		newConfigSetPBNotifyCmd(app),
		newConfigSetBodyweightPromptCmd(app),
	)

	return cmd
}

func newConfigSetUnitsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-units <metric|imperial>",
		Short: "Set display units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := domain.ParseUnits(args[0])
			if err != nil {
				return err
			}
			app.Config.Units = units
			if err := app.saveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Units set to %s\n", units)
			return nil
		},
	}
}

func newConfigSetStreakIntervalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-streak-interval <days>",
		Short: "Set how many days may pass between workouts without breaking a streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil || days < 1 {
				return fmt.Errorf("interval must be a positive number of days")
			}
			app.Config.StreakIntervalDays = days
			if err := app.saveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Streak interval set to %d day(s)\n", days)
			return nil
		},
	}
}

func newConfigSetPBNotifyCmd(app *App) *cobra.Command {
	var metric string

	cmd := &cobra.Command{
		Use:   "set-pb-notify <on|off>",
		Short: "Toggle personal-best notifications, globally or per metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseOnOff(args[0])
			if err != nil {
				return err
			}

			n := &app.Config.PBNotifications
			switch metric {
			case "":
				n.Enabled = &enabled
			case "weight":
				n.NotifyWeight = enabled
			case "reps":
				n.NotifyReps = enabled
			case "duration":
				n.NotifyDuration = enabled
			case "distance":
				n.NotifyDistance = enabled
			default:
				return fmt.Errorf("unknown metric %q (want weight, reps, duration or distance)", metric)
			}
			if err := app.saveConfig(); err != nil {
				return err
			}
			if metric == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "PB notifications %s\n", onOff(enabled))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "PB notifications for %s %s\n", metric, onOff(enabled))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "", "Limit the toggle to one metric (weight|reps|duration|distance)")

	return cmd
}

func newConfigSetBodyweightPromptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-bodyweight-prompt <on|off>",
		Short: "Toggle the bodyweight question before body-weight workouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			app.Config.PromptForBodyweight = enabled
			if err := app.saveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bodyweight prompt %s\n", onOff(enabled))
			return nil
		},
	}
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", s)
}

func onOff(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}
