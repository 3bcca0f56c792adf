package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/spf13/cobra"
)

func newBodyweightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bodyweight",
		Short: "Track bodyweight",
	}

	cmd.AddCommand(
		newBodyweightLogCmd(app),
		newBodyweightListCmd(app),
		newBodyweightDeleteCmd(app),
		newBodyweightTargetCmd(app),
	)

	return cmd
}

func newBodyweightLogCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log <weight>",
		Short: "Log the current bodyweight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			ts, err := timestampFor(date, app.now())
			if err != nil {
				return err
			}
			entry, err := app.Bodyweights.Add(context.Background(), weightToKg(v, app.Config.Units), ts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged bodyweight %s (entry %d)\n",
				formatter.FormatWeight(entry.Weight, app.Config.Units), entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Entry date")

	return cmd
}

func newBodyweightListCmd(app *App) *cobra.Command {
	var limit int
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bodyweight entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entries, err := app.Bodyweights.List(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asCSV {
				return formatter.WriteBodyweightsCSV(out, entries, app.Config.Units)
			}
			if len(entries) > 0 {
				fmt.Fprint(out, formatter.BodyweightSummary(entries[0], app.Config.TargetBodyweight, app.Config.Units))
			}
			fmt.Fprint(out, formatter.BodyweightTable(entries, app.Config.Units))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum entries")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV instead of a table")

	return cmd
}

func newBodyweightDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bodyweight entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Bodyweights.Delete(context.Background(), id); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no bodyweight entry with id %d", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted bodyweight entry %d\n", id)
			return nil
		},
	}
}

func newBodyweightTargetCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "set-target [weight]",
		Short: "Set or clear the target bodyweight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				app.Config.TargetBodyweight = nil
				if err := app.saveConfig(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared target bodyweight")
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("provide a weight or --clear")
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil || v <= 0 {
				return fmt.Errorf("invalid target weight %q", args[0])
			}
			kg := weightToKg(v, app.Config.Units)
			app.Config.TargetBodyweight = &kg
			if err := app.saveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target bodyweight set to %s\n",
				formatter.FormatWeight(kg, app.Config.Units))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the target")

	return cmd
}
