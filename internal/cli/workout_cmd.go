package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/alexanderramin/athlog/internal/config"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/alexanderramin/athlog/internal/service"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Log and inspect workouts",
	}

	cmd.AddCommand(
		newWorkoutAddCmd(app),
		newWorkoutListCmd(app),
		newWorkoutEditCmd(app),
		newWorkoutDeleteCmd(app),
	)

	return cmd
}

func newWorkoutAddCmd(app *App) *cobra.Command {
	var exercise, date, typeStr, muscles, notes string
	var sets, reps, duration int64
	var weight, distance float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a workout entry",
		Long: "Log a workout entry. The exercise accepts an id, a name or an\n" +
			"alias; an unknown name is created on the fly when --type is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			units := app.Config.Units

			ts, err := timestampFor(date, app.now())
			if err != nil {
				return err
			}

			req := service.AddWorkoutRequest{Identifier: exercise, Timestamp: ts}
			if cmd.Flags().Changed("sets") {
				req.Sets = &sets
			}
			if cmd.Flags().Changed("reps") {
				req.Reps = &reps
			}
			if cmd.Flags().Changed("weight") {
				kg := weightToKg(weight, units)
				req.Weight = &kg
			}
			if cmd.Flags().Changed("duration") {
				req.DurationMin = &duration
			}
			if cmd.Flags().Changed("distance") {
				km := distanceToKm(distance, units)
				req.DistanceKm = &km
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			if typeStr != "" {
				typ, err := domain.ParseExerciseType(typeStr)
				if err != nil {
					return err
				}
				req.ImplicitType = &typ
				if muscles != "" {
					req.ImplicitMuscles = &muscles
				}
			}

			if bw, ok, err := app.maybePromptBodyweight(ctx, req); err != nil {
				return err
			} else if ok {
				req.Bodyweight = &bw
			}

			res, err := app.Workouts.Add(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.CreatedExercise {
				fmt.Fprintf(out, "Created exercise %s (id %d)\n", res.Exercise.Name, res.Exercise.ID)
			}
			fmt.Fprintf(out, "Logged %s on %s (workout id %d)\n",
				res.Exercise.Name, res.Workout.Timestamp.UTC().Format("2006-01-02"), res.Workout.ID)

			return app.notifyPB(out, res.PB)
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise id, name or alias")
	cmd.Flags().StringVar(&date, "date", "today", "Entry date (today, yesterday, YYYY-MM-DD, DD.MM.YYYY, YYYY/MM/DD)")
	cmd.Flags().Int64VarP(&sets, "sets", "s", 0, "Number of sets")
	cmd.Flags().Int64VarP(&reps, "reps", "r", 0, "Reps per set")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight lifted (additional weight for body-weight exercises)")
	cmd.Flags().Int64VarP(&duration, "duration", "d", 0, "Duration in minutes")
	cmd.Flags().Float64VarP(&distance, "distance", "l", 0, "Distance covered")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Freeform notes")
	cmd.Flags().StringVar(&typeStr, "type", "", "Exercise type for implicit creation")
	cmd.Flags().StringVar(&muscles, "muscles", "", "Muscle list for implicit creation")
	_ = cmd.MarkFlagRequired("exercise")

	return cmd
}

// maybePromptBodyweight asks for the current bodyweight before logging a
// body-weight exercise when there is no stored entry yet. The answer is
// persisted as a regular bodyweight entry so the question is asked once.
func (a *App) maybePromptBodyweight(ctx context.Context, req service.AddWorkoutRequest) (float64, bool, error) {
	if !a.Config.PromptForBodyweight || !a.interactive() {
		return 0, false, nil
	}

	isBodyweight := req.ImplicitType != nil && *req.ImplicitType == domain.ExerciseBodyWeight
	if e, err := a.Exercises.Resolve(ctx, req.Identifier); err == nil {
		isBodyweight = e.Type == domain.ExerciseBodyWeight
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, false, err
	}
	if !isBodyweight {
		return 0, false, nil
	}

	if _, err := a.Bodyweights.Latest(ctx); err == nil {
		return 0, false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, false, err
	}

	kg, entered, err := promptBodyweight(a.Config.Units)
	if err != nil || !entered {
		return 0, false, err
	}
	if _, err := a.Bodyweights.Add(ctx, kg, a.now()); err != nil {
		return 0, false, err
	}
	return kg, true, nil
}

// notifyPB applies the notification policy to a PB result: per-metric
// toggles filter first, then the global tri-state decides. An undecided
// global toggle triggers a one-time enrollment prompt on a terminal and
// defaults to showing the banner otherwise.
func (a *App) notifyPB(out io.Writer, pb domain.PBInfo) error {
	filtered := filterPB(pb, a.Config.PBNotifications)
	if !filtered.Any() {
		return nil
	}

	enabled := true
	if a.Config.PBNotifications.Enabled != nil {
		enabled = *a.Config.PBNotifications.Enabled
	} else if a.interactive() {
		answer, err := promptPBEnrollment()
		if err != nil {
			return err
		}
		a.Config.PBNotifications.Enabled = &answer
		if err := a.saveConfig(); err != nil {
			return err
		}
		enabled = answer
	}
	if !enabled {
		return nil
	}

	fmt.Fprint(out, formatter.PBBanner(filtered, a.Config.Units))
	return nil
}

// filterPB drops metrics the user muted in the config.
func filterPB(pb domain.PBInfo, n config.PBNotifications) domain.PBInfo {
	if !n.NotifyWeight {
		pb.Weight = domain.PBMetric[float64]{}
	}
	if !n.NotifyReps {
		pb.Reps = domain.PBMetric[int64]{}
	}
	if !n.NotifyDuration {
		pb.Duration = domain.PBMetric[int64]{}
	}
	if !n.NotifyDistance {
		pb.Distance = domain.PBMetric[float64]{}
	}
	return pb
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func newWorkoutListCmd(app *App) *cobra.Command {
	var exercise, date, typeStr, muscle string
	var limit, nthLastDay int
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workout entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var workouts []*domain.Workout
			var err error
			if nthLastDay > 0 {
				if exercise == "" {
					return fmt.Errorf("--nth-last-day requires --exercise")
				}
				workouts, err = app.Workouts.ListNthLastDay(ctx, exercise, nthLastDay)
			} else {
				f := repository.WorkoutFilters{}
				if exercise != "" {
					f.ExerciseName = &exercise
				}
				if date != "" {
					d, derr := parseDate(date, app.now())
					if derr != nil {
						return derr
					}
					f.Date = &d
				}
				if typeStr != "" {
					typ, terr := domain.ParseExerciseType(typeStr)
					if terr != nil {
						return terr
					}
					f.ExerciseType = &typ
				}
				if muscle != "" {
					f.Muscle = &muscle
				}
				if f.Date == nil {
					f.Limit = &limit
				}
				workouts, err = app.Workouts.List(ctx, f)
			}
			if err != nil {
				return err
			}

			if asCSV {
				return formatter.WriteWorkoutsCSV(cmd.OutOrStdout(), workouts, app.Config.Units)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.WorkoutTable(workouts, app.Config.Units))
			return nil
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Filter by exercise id, name or alias")
	cmd.Flags().StringVar(&date, "date", "", "Filter by date")
	cmd.Flags().StringVar(&typeStr, "type", "", "Filter by exercise type")
	cmd.Flags().StringVar(&muscle, "muscle", "", "Filter by muscle")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries (ignored with --date)")
	cmd.Flags().IntVar(&nthLastDay, "nth-last-day", 0, "Show the n-th most recent training day of --exercise")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV instead of a table")

	return cmd
}

func newWorkoutEditCmd(app *App) *cobra.Command {
	var exercise, date, notes string
	var sets, reps, duration int64
	var weight, distance float64

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a workout entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			units := app.Config.Units

			upd := service.WorkoutUpdate{}
			if cmd.Flags().Changed("exercise") {
				upd.Identifier = &exercise
			}
			if cmd.Flags().Changed("date") {
				ts, err := timestampFor(date, app.now())
				if err != nil {
					return err
				}
				upd.Timestamp = &ts
			}
			if cmd.Flags().Changed("sets") {
				upd.Sets = &sets
			}
			if cmd.Flags().Changed("reps") {
				upd.Reps = &reps
			}
			if cmd.Flags().Changed("weight") {
				kg := weightToKg(weight, units)
				upd.Weight = &kg
			}
			if cmd.Flags().Changed("duration") {
				upd.DurationMin = &duration
			}
			if cmd.Flags().Changed("distance") {
				km := distanceToKm(distance, units)
				upd.DistanceKm = &km
			}
			if cmd.Flags().Changed("notes") {
				upd.Notes = &notes
			}

			w, err := app.Workouts.Update(context.Background(), id, upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workout %d (%s)\n", w.ID, w.ExerciseName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Move the entry to another exercise")
	cmd.Flags().StringVar(&date, "date", "", "New entry date")
	cmd.Flags().Int64VarP(&sets, "sets", "s", 0, "Number of sets")
	cmd.Flags().Int64VarP(&reps, "reps", "r", 0, "Reps per set")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight lifted")
	cmd.Flags().Int64VarP(&duration, "duration", "d", 0, "Duration in minutes")
	cmd.Flags().Float64VarP(&distance, "distance", "l", 0, "Distance covered")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Freeform notes")

	return cmd
}

func newWorkoutDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workout entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Workouts.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %d\n", id)
			return nil
		},
	}
}
