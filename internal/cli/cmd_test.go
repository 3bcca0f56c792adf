package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/athlog/internal/config"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/alexanderramin/athlog/internal/service"
	"github.com/alexanderramin/athlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. Prompts stay off (non-interactive) and "now" is pinned.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	exRepo := repository.NewSQLiteExerciseRepo(db)
	woRepo := repository.NewSQLiteWorkoutRepo(db)
	bwRepo := repository.NewSQLiteBodyweightRepo(db)
	uow := testutil.NewTestUoW(db)

	return &App{
		Exercises:   service.NewExerciseService(exRepo, woRepo, uow),
		Workouts:    service.NewWorkoutService(woRepo, exRepo, bwRepo, uow),
		Bodyweights: service.NewBodyweightService(bwRepo),
		Stats:       service.NewStatsService(woRepo, exRepo),
		Config:      config.Default(),
		ConfigPath:  filepath.Join(t.TempDir(), "config.toml"),
		DBPath:      ":memory:",
		Now:         func() time.Time { return time.Date(2025, 6, 15, 17, 30, 0, 0, time.UTC) },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCLI_ExerciseLifecycle(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "exercise", "create", "--name", "Bench Press", "--type", "resistance", "--muscles", "chest,triceps")
	require.NoError(t, err)
	assert.Contains(t, out, "Created exercise Bench Press")

	out, err = executeCmd(t, app, "exercise", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Bench Press")
	assert.Contains(t, out, "chest,triceps")

	out, err = executeCmd(t, app, "exercise", "edit", "bench press", "--name", "BB Bench")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated exercise BB Bench")

	_, err = executeCmd(t, app, "exercise", "delete", "BB Bench")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "exercise", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No exercises")
}

func TestCLI_AliasCommands(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Overhead Press", "--type", "resistance")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "alias", "add", "ohp", "Overhead Press")
	require.NoError(t, err)
	assert.Contains(t, out, "ohp -> Overhead Press")

	out, err = executeCmd(t, app, "alias", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ohp")

	_, err = executeCmd(t, app, "alias", "remove", "ohp")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "alias", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No aliases")
}

func TestCLI_WorkoutAddAndList(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Squat", "--type", "resistance")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "workout", "add", "-e", "Squat",
		"--date", "2025-06-01", "-s", "3", "-r", "5", "-w", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Squat on 2025-06-01")
	// First entry is a PB; notifications default on when undecided and
	// non-interactive.
	assert.Contains(t, out, "Personal Best")

	out, err = executeCmd(t, app, "workout", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Squat")
	assert.Contains(t, out, "100")

	out, err = executeCmd(t, app, "workout", "list", "--csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "id,date,exercise"))
	assert.Contains(t, out, "Squat")
}

func TestCLI_WorkoutImplicitCreation(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "workout", "add", "-e", "Trail Run",
		"--type", "cardio", "--muscles", "legs", "-d", "40", "-l", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Created exercise Trail Run")
	assert.Contains(t, out, "Logged Trail Run")

	// Without --type an unknown exercise is an error.
	_, err = executeCmd(t, app, "workout", "add", "-e", "Mystery", "-s", "3")
	assert.Error(t, err)
}

func TestCLI_PBNotificationsMuted(t *testing.T) {
	app := testApp(t)
	off := false
	app.Config.PBNotifications.Enabled = &off

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Squat", "--type", "resistance")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "workout", "add", "-e", "Squat", "-s", "3", "-r", "5", "-w", "100")
	require.NoError(t, err)
	assert.NotContains(t, out, "Personal Best")
}

func TestCLI_PBPerMetricToggle(t *testing.T) {
	app := testApp(t)
	on := true
	app.Config.PBNotifications.Enabled = &on
	app.Config.PBNotifications.NotifyReps = false

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Squat", "--type", "resistance")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "workout", "add", "-e", "Squat", "-r", "5", "-w", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Weight")
	assert.NotContains(t, out, "Reps:")
}

func TestCLI_StatsAndVolume(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Squat", "--type", "resistance")
	require.NoError(t, err)
	for _, d := range []string{"2025-06-10", "2025-06-11", "2025-06-12"} {
		_, err = executeCmd(t, app, "workout", "add", "-e", "Squat", "--date", d, "-s", "3", "-r", "5", "-w", "100")
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "stats", "-e", "Squat")
	require.NoError(t, err)
	assert.Contains(t, out, "STATS: SQUAT")
	assert.Contains(t, out, "Total workouts")
	assert.Contains(t, out, "Max weight")

	out, err = executeCmd(t, app, "volume", "-e", "Squat")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-12")
	assert.Contains(t, out, "1500")

	out, err = executeCmd(t, app, "volume", "--csv", "--limit-days", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-12,Squat,1500")
	assert.NotContains(t, out, "2025-06-11")
}

func TestCLI_StatsNoData(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Squat", "--type", "resistance")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "stats", "-e", "Squat")
	require.NoError(t, err)
	assert.Contains(t, out, "No workouts logged")
}

func TestCLI_BodyweightCommands(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "bodyweight", "log", "70.5", "--date", "2025-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged bodyweight 70.5 kg")

	out, err = executeCmd(t, app, "bodyweight", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "70.5")

	out, err = executeCmd(t, app, "bodyweight", "set-target", "68")
	require.NoError(t, err)
	assert.Contains(t, out, "Target bodyweight set to 68 kg")

	out, err = executeCmd(t, app, "bodyweight", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "above target")

	// The target persists to the config file.
	cfg, err := config.Load(app.ConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg.TargetBodyweight)
	assert.Equal(t, 68.0, *cfg.TargetBodyweight)
}

func TestCLI_ConfigCommands(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")

	out, err = executeCmd(t, app, "config", "set-units", "imperial")
	require.NoError(t, err)
	assert.Contains(t, out, "imperial")

	out, err = executeCmd(t, app, "config", "set-streak-interval", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 day(s)")

	_, err = executeCmd(t, app, "config", "set-streak-interval", "0")
	assert.Error(t, err)

	out, err = executeCmd(t, app, "config", "set-pb-notify", "off", "--metric", "reps")
	require.NoError(t, err)
	assert.Contains(t, out, "reps disabled")

	cfg, err := config.Load(app.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "imperial", string(cfg.Units))
	assert.Equal(t, 3, cfg.StreakIntervalDays)
	assert.False(t, cfg.PBNotifications.NotifyReps)
}

func TestCLI_ImperialInputConversion(t *testing.T) {
	app := testApp(t)
	app.Config.Units = "imperial"

	_, err := executeCmd(t, app, "exercise", "create", "--name", "Squat", "--type", "resistance")
	require.NoError(t, err)

	// 220.462 lbs is 100 kg canonically; the table shows lbs again.
	out, err := executeCmd(t, app, "workout", "add", "-e", "Squat", "-s", "1", "-r", "1", "-w", "220.462")
	require.NoError(t, err)
	assert.Contains(t, out, "Personal Best")

	out, err = executeCmd(t, app, "workout", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "(lbs)")
	assert.Contains(t, out, "220.46")
}
