package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
)

// WorkoutFilters narrows a workout listing. All fields are optional and
// compose with AND semantics. Limit applies after ordering by timestamp
// descending and is ignored when a Date filter is present.
type WorkoutFilters struct {
	ExerciseName *string
	Date         *time.Time
	ExerciseType *domain.ExerciseType
	Muscle       *string
	Limit        *int
}

// VolumeFilters narrows the workout set feeding volume aggregation.
// StartDate/EndDate bound the window inclusively; a single-date query sets
// both to the same day.
type VolumeFilters struct {
	ExerciseName *string
	StartDate    *time.Time
	EndDate      *time.Time
	ExerciseType *domain.ExerciseType
	Muscle       *string
}

type ExerciseRepo interface {
	Create(ctx context.Context, e *domain.Exercise) error
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	GetByAlias(ctx context.Context, alias string) (*domain.Exercise, error)
	List(ctx context.Context, typeFilter *domain.ExerciseType, muscle *string) ([]*domain.Exercise, error)
	Update(ctx context.Context, e *domain.Exercise) error
	Delete(ctx context.Context, id int64) error

	CreateAlias(ctx context.Context, a *domain.Alias) error
	DeleteAlias(ctx context.Context, name string) error
	ListAliases(ctx context.Context) ([]domain.Alias, error)
}

type WorkoutRepo interface {
	Create(ctx context.Context, w *domain.Workout) error
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	List(ctx context.Context, f WorkoutFilters) ([]*domain.Workout, error)
	ListForVolume(ctx context.Context, f VolumeFilters) ([]*domain.Workout, error)
	ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error)
	Update(ctx context.Context, w *domain.Workout) error
	Delete(ctx context.Context, id int64) error
	RenameExercise(ctx context.Context, oldName, newName string) (int64, error)
}

type BodyweightRepo interface {
	Create(ctx context.Context, b *domain.BodyweightEntry) error
	Latest(ctx context.Context) (*domain.BodyweightEntry, error)
	List(ctx context.Context, limit int) ([]*domain.BodyweightEntry, error)
	Delete(ctx context.Context, id int64) error
}
