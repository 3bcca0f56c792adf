package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/alexanderramin/athlog/internal/service"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var exercise string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats and personal bests for an exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.ExerciseStats(context.Background(), exercise, app.Config.StreakIntervalDays)
			if err != nil {
				if errors.Is(err, service.ErrNoWorkoutData) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No workouts logged for "+exercise+" yet."))
					return nil
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.StatsBlock(stats, app.Config.Units))
			return nil
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise id, name or alias")
	_ = cmd.MarkFlagRequired("exercise")

	return cmd
}
