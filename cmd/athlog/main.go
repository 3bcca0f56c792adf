package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/athlog/internal/cli"
	"github.com/alexanderramin/athlog/internal/config"
	"github.com/alexanderramin/athlog/internal/db"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/alexanderramin/athlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dbPath, err := config.DefaultDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	exerciseRepo := repository.NewSQLiteExerciseRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	bodyweightRepo := repository.NewSQLiteBodyweightRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case telemetry, off unless requested.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ATHLOG_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Exercises:   service.NewExerciseService(exerciseRepo, workoutRepo, uow, observer),
		Workouts:    service.NewWorkoutService(workoutRepo, exerciseRepo, bodyweightRepo, uow, observer),
		Bodyweights: service.NewBodyweightService(bodyweightRepo),
		Stats:       service.NewStatsService(workoutRepo, exerciseRepo),

		Config:     cfg,
		ConfigPath: configPath,
		DBPath:     dbPath,
	}

	// Detect interactive terminal for huh prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
