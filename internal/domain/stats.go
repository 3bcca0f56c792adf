package domain

import "time"

// PBMetric reports the outcome of a personal-best comparison for one metric.
// NewValue is only meaningful when Achieved; PreviousValue is nil when the
// metric had never been logged before.
type PBMetric[T int64 | float64] struct {
	Achieved      bool
	NewValue      *T
	PreviousValue *T
}

// PBInfo bundles the four independent per-metric PB results produced when a
// workout is inserted. Transient; never persisted.
type PBInfo struct {
	Weight   PBMetric[float64]
	Reps     PBMetric[int64]
	Duration PBMetric[int64]
	Distance PBMetric[float64]
}

// Any reports whether at least one metric achieved a new personal best.
func (p *PBInfo) Any() bool {
	return p.Weight.Achieved || p.Reps.Achieved || p.Duration.Achieved || p.Distance.Achieved
}

// PersonalBests holds the all-time maximum per metric across an exercise's
// history. A nil field means the metric was never logged.
type PersonalBests struct {
	MaxWeight      *float64
	MaxReps        *int64
	MaxDurationMin *int64
	MaxDistanceKm  *float64
}

// ExerciseStats is the derived statistics snapshot for one exercise.
// Recomputed on demand from the workout history; never persisted.
type ExerciseStats struct {
	CanonicalName      string
	TotalWorkouts      int
	FirstWorkoutDate   *time.Time
	LastWorkoutDate    *time.Time
	AvgWorkoutsPerWeek *float64
	LongestGapDays     *int
	StreakIntervalDays int
	CurrentStreak      int
	LongestStreak      int
	PersonalBests      PersonalBests
}
