package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/alexanderramin/athlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsFixture struct {
	stats     StatsService
	workouts  WorkoutService
	exercises ExerciseService
}

func newStatsFixture(t *testing.T, now time.Time) statsFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	exRepo := repository.NewSQLiteExerciseRepo(database)
	woRepo := repository.NewSQLiteWorkoutRepo(database)
	bwRepo := repository.NewSQLiteBodyweightRepo(database)
	uow := testutil.NewTestUoW(database)

	stats := NewStatsService(woRepo, exRepo).(*statsService)
	stats.now = func() time.Time { return now }

	return statsFixture{
		stats:     stats,
		workouts:  NewWorkoutService(woRepo, exRepo, bwRepo, uow),
		exercises: NewExerciseService(exRepo, woRepo, uow),
	}
}

func TestStatsService_NoWorkoutData(t *testing.T) {
	f := newStatsFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := f.exercises.Create(ctx, "Squat", domain.ExerciseResistance, nil)
	require.NoError(t, err)

	_, err = f.stats.ExerciseStats(ctx, "Squat", 1)
	assert.True(t, errors.Is(err, ErrNoWorkoutData))

	_, err = f.stats.ExerciseStats(ctx, "missing", 1)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestStatsService_ExerciseStats(t *testing.T) {
	today := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	f := newStatsFixture(t, today)
	ctx := context.Background()

	_, err := f.exercises.Create(ctx, "Squat", domain.ExerciseResistance, nil)
	require.NoError(t, err)
	_, err = f.exercises.CreateAlias(ctx, "sq", "Squat")
	require.NoError(t, err)

	day := func(d int) time.Time { return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC) }
	for _, e := range []struct {
		d      int
		weight float64
	}{{1, 100}, {2, 105}, {4, 110}} {
		_, err := f.workouts.Add(ctx, AddWorkoutRequest{
			Identifier: "sq", Timestamp: day(e.d),
			Sets: int64p(3), Reps: int64p(5), Weight: float64p(e.weight),
		})
		require.NoError(t, err)
	}

	stats, err := f.stats.ExerciseStats(ctx, "sq", 2)
	require.NoError(t, err)
	assert.Equal(t, "Squat", stats.CanonicalName)
	assert.Equal(t, 3, stats.TotalWorkouts)
	assert.Equal(t, 2, stats.StreakIntervalDays)
	// Jun 1, 2, 4 with a two-day tolerance is one unbroken streak.
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	require.NotNil(t, stats.PersonalBests.MaxWeight)
	assert.Equal(t, 110.0, *stats.PersonalBests.MaxWeight)
	require.NotNil(t, stats.FirstWorkoutDate)
	assert.Equal(t, 1, stats.FirstWorkoutDate.Day())
}

func TestStatsService_VolumeResolvesIdentifier(t *testing.T) {
	f := newStatsFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := f.exercises.Create(ctx, "Bench Press", domain.ExerciseResistance, nil)
	require.NoError(t, err)
	_, err = f.exercises.CreateAlias(ctx, "bp", "Bench Press")
	require.NoError(t, err)
	_, err = f.exercises.Create(ctx, "Squat", domain.ExerciseResistance, nil)
	require.NoError(t, err)

	day := func(d int) time.Time { return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC) }
	_, err = f.workouts.Add(ctx, AddWorkoutRequest{Identifier: "bp", Timestamp: day(1), Sets: int64p(3), Reps: int64p(5), Weight: float64p(80)})
	require.NoError(t, err)
	_, err = f.workouts.Add(ctx, AddWorkoutRequest{Identifier: "Squat", Timestamp: day(1), Sets: int64p(5), Reps: int64p(5), Weight: float64p(100)})
	require.NoError(t, err)
	_, err = f.workouts.Add(ctx, AddWorkoutRequest{Identifier: "bp", Timestamp: day(2), Sets: int64p(3), Reps: int64p(5), Weight: float64p(82.5)})
	require.NoError(t, err)

	ident := "bp"
	rows, err := f.stats.Volume(ctx, repository.VolumeFilters{ExerciseName: &ident}, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Most recent date first.
	assert.Equal(t, 2, rows[0].Date.Day())
	assert.Equal(t, 3*5*82.5, rows[0].Volume)
	assert.Equal(t, "Bench Press", rows[0].ExerciseName)

	// Unfiltered, limited to the most recent training day.
	all, err := f.stats.Volume(ctx, repository.VolumeFilters{}, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].Date.Day())

	_, err = f.stats.Volume(ctx, repository.VolumeFilters{ExerciseName: &[]string{"ghost"}[0]}, 0)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
