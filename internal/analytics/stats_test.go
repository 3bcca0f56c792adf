package analytics

import (
	"testing"

	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExerciseStats_Empty(t *testing.T) {
	stats := ComputeExerciseStats("Squat", nil, 1, day(2025, 1, 10))

	assert.Equal(t, "Squat", stats.CanonicalName)
	assert.Zero(t, stats.TotalWorkouts)
	assert.Nil(t, stats.FirstWorkoutDate)
	assert.Nil(t, stats.LastWorkoutDate)
	assert.Nil(t, stats.AvgWorkoutsPerWeek)
	assert.Nil(t, stats.LongestGapDays)
}

func TestComputeExerciseStats_SingleDayMinimumWeekDenominator(t *testing.T) {
	// Two workouts on the same day: the span is 0 days, which is treated as
	// one week, so the average is 2 per week rather than a division blowup.
	workouts := []*domain.Workout{
		testutil.NewTestWorkout("Squat",
			testutil.WithTimestamp(at(2025, 1, 10, 9)),
			testutil.WithSets(3), testutil.WithReps(5), testutil.WithWeight(100)),
		testutil.NewTestWorkout("Squat",
			testutil.WithTimestamp(at(2025, 1, 10, 18)),
			testutil.WithSets(3), testutil.WithReps(5), testutil.WithWeight(105)),
	}

	stats := ComputeExerciseStats("Squat", workouts, 1, day(2025, 1, 10))

	require.NotNil(t, stats.AvgWorkoutsPerWeek)
	assert.Equal(t, 2.0, *stats.AvgWorkoutsPerWeek)
	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
}

func TestComputeExerciseStats_FullSnapshot(t *testing.T) {
	workouts := []*domain.Workout{
		testutil.NewTestWorkout("Squat",
			testutil.WithTimestamp(at(2025, 1, 1, 9)),
			testutil.WithSets(3), testutil.WithReps(5), testutil.WithWeight(100)),
		testutil.NewTestWorkout("Squat",
			testutil.WithTimestamp(at(2025, 1, 2, 9)),
			testutil.WithSets(3), testutil.WithReps(5), testutil.WithWeight(110)),
		testutil.NewTestWorkout("Squat",
			testutil.WithTimestamp(at(2025, 1, 15, 9)),
			testutil.WithSets(3), testutil.WithReps(8), testutil.WithWeight(105)),
	}

	stats := ComputeExerciseStats("Squat", workouts, 1, day(2025, 1, 15))

	assert.Equal(t, 3, stats.TotalWorkouts)
	require.NotNil(t, stats.FirstWorkoutDate)
	assert.Equal(t, at(2025, 1, 1, 9), *stats.FirstWorkoutDate)
	require.NotNil(t, stats.LastWorkoutDate)
	assert.Equal(t, at(2025, 1, 15, 9), *stats.LastWorkoutDate)

	// 14-day span = 2 weeks, 3 workouts.
	require.NotNil(t, stats.AvgWorkoutsPerWeek)
	assert.InDelta(t, 1.5, *stats.AvgWorkoutsPerWeek, 1e-9)

	require.NotNil(t, stats.LongestGapDays)
	assert.Equal(t, 13, *stats.LongestGapDays)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.LongestStreak)

	require.NotNil(t, stats.PersonalBests.MaxWeight)
	assert.Equal(t, 110.0, *stats.PersonalBests.MaxWeight)
	require.NotNil(t, stats.PersonalBests.MaxReps)
	assert.Equal(t, int64(8), *stats.PersonalBests.MaxReps)
	assert.Nil(t, stats.PersonalBests.MaxDurationMin)
	assert.Nil(t, stats.PersonalBests.MaxDistanceKm)
}

func TestComputeExerciseStats_KeepsConfiguredInterval(t *testing.T) {
	workouts := []*domain.Workout{
		testutil.NewTestWorkout("Squat", testutil.WithTimestamp(at(2025, 1, 1, 9))),
		testutil.NewTestWorkout("Squat", testutil.WithTimestamp(at(2025, 1, 3, 9))),
	}

	stats := ComputeExerciseStats("Squat", workouts, 2, day(2025, 1, 3))

	assert.Equal(t, 2, stats.StreakIntervalDays)
	assert.Equal(t, 2, stats.CurrentStreak, "2-day interval bridges the gap")
	assert.Equal(t, 2, stats.LongestStreak)
}

func TestComputeExerciseStats_TodayFarAway(t *testing.T) {
	workouts := []*domain.Workout{
		testutil.NewTestWorkout("Squat", testutil.WithTimestamp(at(2025, 1, 1, 9))),
	}

	stats := ComputeExerciseStats("Squat", workouts, 1, day(2025, 6, 1))
	assert.Zero(t, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
}
