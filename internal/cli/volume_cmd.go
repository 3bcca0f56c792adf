package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/spf13/cobra"
)

func newVolumeCmd(app *App) *cobra.Command {
	var exercise, date, start, end, typeStr, muscle string
	var limitDays int
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Show per-day training volume (sets × reps × weight)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeActive := date != "" || start != "" || end != ""
			if rangeActive && cmd.Flags().Changed("limit-days") {
				return fmt.Errorf("--limit-days cannot be combined with --date/--start/--end")
			}
			if rangeActive {
				limitDays = 0
			}
			if date != "" {
				start, end = date, date
			}

			f := repository.VolumeFilters{}
			if exercise != "" {
				f.ExerciseName = &exercise
			}
			if start != "" {
				d, err := parseDate(start, app.now())
				if err != nil {
					return err
				}
				f.StartDate = &d
			}
			if end != "" {
				d, err := parseDate(end, app.now())
				if err != nil {
					return err
				}
				f.EndDate = &d
			}
			if typeStr != "" {
				typ, err := domain.ParseExerciseType(typeStr)
				if err != nil {
					return err
				}
				f.ExerciseType = &typ
			}
			if muscle != "" {
				f.Muscle = &muscle
			}

			rows, err := app.Stats.Volume(context.Background(), f, limitDays)
			if err != nil {
				return err
			}
			if asCSV {
				return formatter.WriteVolumeCSV(cmd.OutOrStdout(), rows, app.Config.Units)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.VolumeTable(rows, app.Config.Units))
			return nil
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Filter by exercise id, name or alias")
	cmd.Flags().StringVar(&date, "date", "", "Single date (today, yesterday, YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "End date (inclusive)")
	cmd.Flags().StringVar(&typeStr, "type", "", "Filter by exercise type")
	cmd.Flags().StringVar(&muscle, "muscle", "", "Filter by muscle")
	cmd.Flags().IntVar(&limitDays, "limit-days", 7, "Keep the N most recent training days (0 for all)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV instead of a table")
	cmd.MarkFlagsMutuallyExclusive("date", "start")
	cmd.MarkFlagsMutuallyExclusive("date", "end")

	return cmd
}
