package testutil

import (
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
)

// Exercise options

type ExerciseOption func(*domain.Exercise)

func WithMuscles(muscles string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Muscles = &muscles
	}
}

func WithLogFlags(weight, reps, duration, distance bool) ExerciseOption {
	return func(e *domain.Exercise) {
		e.LogWeight = weight
		e.LogReps = reps
		e.LogDuration = duration
		e.LogDistance = distance
	}
}

func NewTestExercise(name string, typ domain.ExerciseType, opts ...ExerciseOption) *domain.Exercise {
	e := &domain.Exercise{
		Name:      name,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}
	e.LogWeight, e.LogReps, e.LogDuration, e.LogDistance = domain.DefaultLogFlags(typ)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workout options

type WorkoutOption func(*domain.Workout)

func WithSets(sets int64) WorkoutOption {
	return func(w *domain.Workout) {
		w.Sets = &sets
	}
}

func WithReps(reps int64) WorkoutOption {
	return func(w *domain.Workout) {
		w.Reps = &reps
	}
}

func WithWeight(weight float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.Weight = &weight
	}
}

func WithDuration(minutes int64) WorkoutOption {
	return func(w *domain.Workout) {
		w.DurationMin = &minutes
	}
}

func WithDistance(km float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.DistanceKm = &km
	}
}

func WithBodyweight(bw float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.Bodyweight = &bw
	}
}

func WithNotes(notes string) WorkoutOption {
	return func(w *domain.Workout) {
		w.Notes = &notes
	}
}

func WithTimestamp(ts time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.Timestamp = ts
	}
}

func WithExerciseType(t domain.ExerciseType) WorkoutOption {
	return func(w *domain.Workout) {
		w.ExerciseType = &t
	}
}

func NewTestWorkout(exerciseName string, opts ...WorkoutOption) *domain.Workout {
	w := &domain.Workout{
		ExerciseName: exerciseName,
		Timestamp:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func NewTestBodyweight(weight float64, ts time.Time) *domain.BodyweightEntry {
	return &domain.BodyweightEntry{
		Timestamp: ts,
		Weight:    weight,
	}
}
