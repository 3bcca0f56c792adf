package analytics

import (
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
)

// ComputeExerciseStats builds the full derived statistics snapshot for one
// exercise from its complete workout history. The history must be ordered
// ascending by timestamp. Pure function of (data, config snapshot, today).
//
// Average workouts per week uses a minimum one-week denominator: a history
// spanning less than seven days is treated as one week rather than dividing
// by a fractional or zero span.
func ComputeExerciseStats(canonicalName string, workouts []*domain.Workout, intervalDays int, today time.Time) domain.ExerciseStats {
	stats := domain.ExerciseStats{
		CanonicalName:      canonicalName,
		TotalWorkouts:      len(workouts),
		StreakIntervalDays: intervalDays,
	}
	if len(workouts) == 0 {
		return stats
	}

	first := workouts[0].Timestamp
	last := workouts[len(workouts)-1].Timestamp
	stats.FirstWorkoutDate = &first
	stats.LastWorkoutDate = &last

	weeks := float64(daysBetween(workouts[0].Date(), workouts[len(workouts)-1].Date())) / 7.0
	if weeks < 1 {
		weeks = 1
	}
	avg := float64(len(workouts)) / weeks
	stats.AvgWorkoutsPerWeek = &avg

	streaks := ComputeStreaks(DistinctDates(workouts), intervalDays, today)
	stats.CurrentStreak = streaks.Current
	stats.LongestStreak = streaks.Longest
	stats.LongestGapDays = streaks.LongestGapDays

	stats.PersonalBests = AllTimeBests(workouts)
	return stats
}
