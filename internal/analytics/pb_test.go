package analytics

import (
	"testing"

	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPB_StrictInequality(t *testing.T) {
	history := []*domain.Workout{
		testutil.NewTestWorkout("Bench Press", testutil.WithReps(10)),
	}

	// A tie is not a PB.
	tie := testutil.NewTestWorkout("Bench Press", testutil.WithReps(10))
	info := DetectPB(history, tie)
	assert.False(t, info.Reps.Achieved)
	require.NotNil(t, info.Reps.PreviousValue)
	assert.Equal(t, int64(10), *info.Reps.PreviousValue)

	// One more rep is.
	better := testutil.NewTestWorkout("Bench Press", testutil.WithReps(11))
	info = DetectPB(history, better)
	assert.True(t, info.Reps.Achieved)
	require.NotNil(t, info.Reps.NewValue)
	assert.Equal(t, int64(11), *info.Reps.NewValue)
	require.NotNil(t, info.Reps.PreviousValue)
	assert.Equal(t, int64(10), *info.Reps.PreviousValue)
}

func TestDetectPB_FirstOccurrence(t *testing.T) {
	// Exercise has history, but duration was never logged before.
	history := []*domain.Workout{
		testutil.NewTestWorkout("Plank", testutil.WithReps(5)),
	}

	w := testutil.NewTestWorkout("Plank", testutil.WithDuration(20))
	info := DetectPB(history, w)

	assert.True(t, info.Duration.Achieved)
	assert.Nil(t, info.Duration.PreviousValue)
	require.NotNil(t, info.Duration.NewValue)
	assert.Equal(t, int64(20), *info.Duration.NewValue)
}

func TestDetectPB_EmptyHistoryAllProvidedMetricsAchieve(t *testing.T) {
	w := testutil.NewTestWorkout("Row",
		testutil.WithDuration(30),
		testutil.WithDistance(5.2),
	)
	info := DetectPB(nil, w)

	assert.True(t, info.Duration.Achieved)
	assert.True(t, info.Distance.Achieved)
	assert.False(t, info.Weight.Achieved, "weight was not provided")
	assert.False(t, info.Reps.Achieved, "reps were not provided")
	assert.True(t, info.Any())
}

func TestDetectPB_MissingMetricNeverAchieves(t *testing.T) {
	history := []*domain.Workout{
		testutil.NewTestWorkout("Bench Press", testutil.WithWeight(80)),
	}

	w := testutil.NewTestWorkout("Bench Press", testutil.WithReps(8))
	info := DetectPB(history, w)

	assert.False(t, info.Weight.Achieved)
	require.NotNil(t, info.Weight.PreviousValue, "previous max is still reported")
	assert.Equal(t, 80.0, *info.Weight.PreviousValue)
}

func TestDetectPB_WeightUsesEffectiveWeight(t *testing.T) {
	// Bodyweight pull-ups: 70 kg athlete, prior best +5 kg = 75 effective.
	history := []*domain.Workout{
		testutil.NewTestWorkout("Pull-up",
			testutil.WithExerciseType(domain.ExerciseBodyWeight),
			testutil.WithBodyweight(70),
			testutil.WithWeight(5),
		),
	}

	// Lighter athlete with more additional weight: 68 + 8 = 76 effective.
	w := testutil.NewTestWorkout("Pull-up",
		testutil.WithExerciseType(domain.ExerciseBodyWeight),
		testutil.WithBodyweight(68),
		testutil.WithWeight(8),
	)
	info := DetectPB(history, w)

	assert.True(t, info.Weight.Achieved)
	require.NotNil(t, info.Weight.NewValue)
	assert.Equal(t, 76.0, *info.Weight.NewValue)
	require.NotNil(t, info.Weight.PreviousValue)
	assert.Equal(t, 75.0, *info.Weight.PreviousValue)
}

func TestAllTimeBests_ScansEveryMetric(t *testing.T) {
	workouts := []*domain.Workout{
		testutil.NewTestWorkout("Run", testutil.WithDuration(25), testutil.WithDistance(4.0)),
		testutil.NewTestWorkout("Run", testutil.WithDuration(40), testutil.WithDistance(3.5)),
		testutil.NewTestWorkout("Run", testutil.WithDuration(30), testutil.WithDistance(6.1)),
	}

	pb := AllTimeBests(workouts)

	require.NotNil(t, pb.MaxDurationMin)
	assert.Equal(t, int64(40), *pb.MaxDurationMin)
	require.NotNil(t, pb.MaxDistanceKm)
	assert.Equal(t, 6.1, *pb.MaxDistanceKm)
	assert.Nil(t, pb.MaxWeight)
	assert.Nil(t, pb.MaxReps)
}
