package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/athlog/internal/analytics"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
)

type statsService struct {
	workouts  repository.WorkoutRepo
	exercises repository.ExerciseRepo
	// now is swapped in tests to pin streak arithmetic.
	now func() time.Time
}

func NewStatsService(workouts repository.WorkoutRepo, exercises repository.ExerciseRepo) StatsService {
	return &statsService{
		workouts:  workouts,
		exercises: exercises,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *statsService) ExerciseStats(ctx context.Context, identifier string, streakIntervalDays int) (*domain.ExerciseStats, error) {
	if streakIntervalDays < 1 {
		streakIntervalDays = 1
	}
	e, err := resolveExercise(ctx, s.exercises, identifier)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workouts.ListByExercise(ctx, e.Name)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, fmt.Errorf("exercise %q: %w", e.Name, ErrNoWorkoutData)
	}
	stats := analytics.ComputeExerciseStats(e.Name, workouts, streakIntervalDays, s.now())
	return &stats, nil
}

func (s *statsService) Volume(ctx context.Context, f repository.VolumeFilters, limitDays int) ([]analytics.DailyVolume, error) {
	if f.ExerciseName != nil {
		e, err := resolveExercise(ctx, s.exercises, *f.ExerciseName)
		if err != nil {
			return nil, err
		}
		f.ExerciseName = &e.Name
	}
	workouts, err := s.workouts.ListForVolume(ctx, f)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateVolume(workouts, limitDays), nil
}
