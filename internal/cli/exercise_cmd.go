package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/service"
	"github.com/spf13/cobra"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Manage exercise definitions",
	}

	cmd.AddCommand(
		newExerciseCreateCmd(app),
		newExerciseListCmd(app),
		newExerciseEditCmd(app),
		newExerciseDeleteCmd(app),
	)

	return cmd
}

func newExerciseCreateCmd(app *App) *cobra.Command {
	var name, typeStr, muscles string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Define a new exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := domain.ParseExerciseType(typeStr)
			if err != nil {
				return err
			}
			var musclesPtr *string
			if muscles != "" {
				musclesPtr = &muscles
			}
			e, err := app.Exercises.Create(context.Background(), name, typ, musclesPtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created exercise %s (id %d)\n", e.Name, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exercise name")
	cmd.Flags().StringVar(&typeStr, "type", "", "Exercise type (resistance|cardio|body_weight)")
	cmd.Flags().StringVar(&muscles, "muscles", "", "Comma-separated muscle list")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newExerciseListCmd(app *App) *cobra.Command {
	var typeStr, muscle string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercise definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var typeFilter *domain.ExerciseType
			if typeStr != "" {
				typ, err := domain.ParseExerciseType(typeStr)
				if err != nil {
					return err
				}
				typeFilter = &typ
			}
			var musclePtr *string
			if muscle != "" {
				musclePtr = &muscle
			}
			exercises, err := app.Exercises.List(context.Background(), typeFilter, musclePtr)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.ExerciseTable(exercises))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "", "Filter by type")
	cmd.Flags().StringVar(&muscle, "muscle", "", "Filter by muscle")

	return cmd
}

func newExerciseEditCmd(app *App) *cobra.Command {
	var newName, typeStr, muscles string
	var logWeight, logReps, logDuration, logDistance bool

	cmd := &cobra.Command{
		Use:   "edit <id|name|alias>",
		Short: "Edit an exercise definition",
		Long: "Edit an exercise definition. Renames cascade to the workout log\n" +
			"and aliases keep pointing at the same exercise.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upd := service.ExerciseUpdate{}
			if cmd.Flags().Changed("name") {
				upd.Name = &newName
			}
			if cmd.Flags().Changed("type") {
				typ, err := domain.ParseExerciseType(typeStr)
				if err != nil {
					return err
				}
				upd.Type = &typ
			}
			if cmd.Flags().Changed("muscles") {
				upd.Muscles = &muscles
			}
			if cmd.Flags().Changed("log-weight") {
				upd.LogWeight = &logWeight
			}
			if cmd.Flags().Changed("log-reps") {
				upd.LogReps = &logReps
			}
			if cmd.Flags().Changed("log-duration") {
				upd.LogDuration = &logDuration
			}
			if cmd.Flags().Changed("log-distance") {
				upd.LogDistance = &logDistance
			}

			e, err := app.Exercises.Update(context.Background(), args[0], upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated exercise %s (id %d)\n", e.Name, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "New name")
	cmd.Flags().StringVar(&typeStr, "type", "", "New type (resistance|cardio|body_weight)")
	cmd.Flags().StringVar(&muscles, "muscles", "", "New comma-separated muscle list")
	cmd.Flags().BoolVar(&logWeight, "log-weight", false, "Track weight for this exercise")
	cmd.Flags().BoolVar(&logReps, "log-reps", false, "Track reps for this exercise")
	cmd.Flags().BoolVar(&logDuration, "log-duration", false, "Track duration for this exercise")
	cmd.Flags().BoolVar(&logDistance, "log-distance", false, "Track distance for this exercise")

	return cmd
}

func newExerciseDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id|name|alias>",
		Short: "Delete an exercise definition",
		Long: "Delete an exercise definition and its aliases. Logged workouts\n" +
			"keep the exercise name and stay listed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Exercises.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise %s\n", args[0])
			return nil
		},
	}
	return cmd
}
