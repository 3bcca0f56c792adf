package service

import (
	"context"
	"time"

	"github.com/alexanderramin/athlog/internal/analytics"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
)

// ExerciseUpdate carries the optional fields of an exercise edit. Nil fields
// are left unchanged. A Name change cascades to workout history and keeps
// aliases pointing at the same exercise.
type ExerciseUpdate struct {
	Name        *string
	Type        *domain.ExerciseType
	Muscles     *string
	LogWeight   *bool
	LogReps     *bool
	LogDuration *bool
	LogDistance *bool
}

type ExerciseService interface {
	Create(ctx context.Context, name string, typ domain.ExerciseType, muscles *string) (*domain.Exercise, error)
	// Resolve maps an identifier to an exercise: numeric id first, then
	// exact case-insensitive name, then exact alias.
	Resolve(ctx context.Context, identifier string) (*domain.Exercise, error)
	List(ctx context.Context, typeFilter *domain.ExerciseType, muscle *string) ([]*domain.Exercise, error)
	Update(ctx context.Context, identifier string, upd ExerciseUpdate) (*domain.Exercise, error)
	Delete(ctx context.Context, identifier string) error

	CreateAlias(ctx context.Context, alias, identifier string) (*domain.Exercise, error)
	DeleteAlias(ctx context.Context, alias string) error
	ListAliases(ctx context.Context) ([]domain.Alias, []*domain.Exercise, error)
}

// AddWorkoutRequest holds one workout entry to log. Identifier goes through
// the resolver; when it resolves to nothing and ImplicitType is set, the
// exercise definition is created in the same transaction.
type AddWorkoutRequest struct {
	Identifier      string
	Timestamp       time.Time
	Sets            *int64
	Reps            *int64
	Weight          *float64
	DurationMin     *int64
	DistanceKm      *float64
	Notes           *string
	ImplicitType    *domain.ExerciseType
	ImplicitMuscles *string
	// Bodyweight overrides the stored latest entry for body-weight
	// exercises; the interactive prompt in the CLI fills it in.
	Bodyweight *float64
}

// AddWorkoutResult reports what a logged workout did: the stored entry, the
// exercise it resolved (or created) and per-metric personal bests relative
// to all prior history.
type AddWorkoutResult struct {
	Workout         *domain.Workout
	Exercise        *domain.Exercise
	CreatedExercise bool
	PB              domain.PBInfo
}

// WorkoutUpdate carries the optional fields of a workout edit. Nil fields
// are left unchanged.
type WorkoutUpdate struct {
	Identifier  *string
	Timestamp   *time.Time
	Sets        *int64
	Reps        *int64
	Weight      *float64
	DurationMin *int64
	DistanceKm  *float64
	Notes       *string
}

type WorkoutService interface {
	Add(ctx context.Context, req AddWorkoutRequest) (*AddWorkoutResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	List(ctx context.Context, f repository.WorkoutFilters) ([]*domain.Workout, error)
	// ListNthLastDay returns the workouts of the n-th most recent training
	// day for the exercise (n=1 is the latest day).
	ListNthLastDay(ctx context.Context, identifier string, n int) ([]*domain.Workout, error)
	Update(ctx context.Context, id int64, upd WorkoutUpdate) (*domain.Workout, error)
	Delete(ctx context.Context, id int64) error
}

type BodyweightService interface {
	Add(ctx context.Context, weight float64, ts time.Time) (*domain.BodyweightEntry, error)
	Latest(ctx context.Context) (*domain.BodyweightEntry, error)
	List(ctx context.Context, limit int) ([]*domain.BodyweightEntry, error)
	Delete(ctx context.Context, id int64) error
}

type StatsService interface {
	// ExerciseStats computes the full stats block for one exercise.
	// Returns ErrNoWorkoutData when the exercise resolves but has no
	// logged workouts.
	ExerciseStats(ctx context.Context, identifier string, streakIntervalDays int) (*domain.ExerciseStats, error)
	// Volume aggregates per-day training volume. limitDays > 0 keeps only
	// the N most recent distinct training dates.
	Volume(ctx context.Context, f repository.VolumeFilters, limitDays int) ([]analytics.DailyVolume, error)
}
