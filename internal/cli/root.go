package cli

import (
	"time"

	"github.com/alexanderramin/athlog/internal/config"
	"github.com/alexanderramin/athlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the loaded config and its location so setter commands can persist
// changes.
type App struct {
	Exercises   service.ExerciseService
	Workouts    service.WorkoutService
	Bodyweights service.BodyweightService
	Stats       service.StatsService

	Config     config.Config
	ConfigPath string
	DBPath     string

	// IsInteractive gates huh prompts; nil means non-interactive.
	IsInteractive func() bool

	// Now is swapped in tests to pin date-shorthand parsing.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) saveConfig() error {
	return config.Save(a.ConfigPath, a.Config)
}

// NewRootCmd creates the top-level "athlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "athlog",
		Short:         "Track workouts, bodyweight and personal bests",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newExerciseCmd(app),
		newAliasCmd(app),
		newWorkoutCmd(app),
		newBodyweightCmd(app),
		newStatsCmd(app),
		newVolumeCmd(app),
		newConfigCmd(app),
	)

	return root
}
