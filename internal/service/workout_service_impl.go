package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/athlog/internal/analytics"
	"github.com/alexanderramin/athlog/internal/db"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
)

type workoutService struct {
	workouts    repository.WorkoutRepo
	exercises   repository.ExerciseRepo
	bodyweights repository.BodyweightRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewWorkoutService(
	workouts repository.WorkoutRepo,
	exercises repository.ExerciseRepo,
	bodyweights repository.BodyweightRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) WorkoutService {
	return &workoutService{
		workouts:    workouts,
		exercises:   exercises,
		bodyweights: bodyweights,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *workoutService) Add(ctx context.Context, req AddWorkoutRequest) (result *AddWorkoutResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"identifier": req.Identifier}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-workout",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := validateWorkoutValues(req.Sets, req.Reps, req.Weight, req.DurationMin, req.DistanceKm); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txExercises := repository.NewSQLiteExerciseRepo(tx)
		txWorkouts := repository.NewSQLiteWorkoutRepo(tx)
		txBodyweights := repository.NewSQLiteBodyweightRepo(tx)

		exercise, resolveErr := resolveExercise(ctx, txExercises, req.Identifier)
		created := false
		switch {
		case resolveErr == nil:
		case errors.Is(resolveErr, repository.ErrNotFound) && req.ImplicitType != nil:
			exercise = &domain.Exercise{
				Name:      req.Identifier,
				Type:      *req.ImplicitType,
				Muscles:   normalizeMuscles(req.ImplicitMuscles),
				CreatedAt: time.Now().UTC(),
			}
			exercise.LogWeight, exercise.LogReps, exercise.LogDuration, exercise.LogDistance = domain.DefaultLogFlags(exercise.Type)
			if err := txExercises.Create(ctx, exercise); err != nil {
				return err
			}
			created = true
		default:
			return resolveErr
		}

		w := &domain.Workout{
			ExerciseName: exercise.Name,
			Timestamp:    req.Timestamp.UTC(),
			Sets:         req.Sets,
			Reps:         req.Reps,
			Weight:       req.Weight,
			DurationMin:  req.DurationMin,
			DistanceKm:   req.DistanceKm,
			Notes:        req.Notes,
		}
		exType := exercise.Type
		w.ExerciseType = &exType
		w.ExerciseMuscles = exercise.Muscles

		// Body-weight exercises fold the athlete's weight into the
		// effective weight, so it is captured on the entry itself.
		if exercise.Type == domain.ExerciseBodyWeight {
			bw, err := s.captureBodyweight(ctx, txBodyweights, req.Bodyweight)
			if err != nil {
				return err
			}
			w.Bodyweight = &bw
		}

		// PBs compare against history as it was before this entry.
		history, err := txWorkouts.ListByExercise(ctx, exercise.Name)
		if err != nil {
			return err
		}
		if err := txWorkouts.Create(ctx, w); err != nil {
			return err
		}

		result = &AddWorkoutResult{
			Workout:         w,
			Exercise:        exercise,
			CreatedExercise: created,
			PB:              analytics.DetectPB(history, w),
		}
		fields["workout_id"] = w.ID
		fields["created_exercise"] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *workoutService) captureBodyweight(ctx context.Context, bodyweights repository.BodyweightRepo, override *float64) (float64, error) {
	if override != nil {
		if *override <= 0 {
			return 0, fmt.Errorf("bodyweight must be positive: %w", ErrInvalidInput)
		}
		return *override, nil
	}
	latest, err := bodyweights.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.Weight, nil
}

func (s *workoutService) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

func (s *workoutService) List(ctx context.Context, f repository.WorkoutFilters) ([]*domain.Workout, error) {
	if f.ExerciseName != nil {
		e, err := resolveExercise(ctx, s.exercises, *f.ExerciseName)
		if err != nil {
			return nil, err
		}
		f.ExerciseName = &e.Name
	}
	return s.workouts.List(ctx, f)
}

func (s *workoutService) ListNthLastDay(ctx context.Context, identifier string, n int) ([]*domain.Workout, error) {
	if n < 1 {
		return nil, fmt.Errorf("n must be at least 1: %w", ErrInvalidInput)
	}
	e, err := resolveExercise(ctx, s.exercises, identifier)
	if err != nil {
		return nil, err
	}
	all, err := s.workouts.ListByExercise(ctx, e.Name)
	if err != nil {
		return nil, err
	}
	dates := analytics.DistinctDates(all)
	if n > len(dates) {
		return nil, nil
	}
	target := dates[len(dates)-n]

	var day []*domain.Workout
	for _, w := range all {
		if w.Date().Equal(target) {
			day = append(day, w)
		}
	}
	return day, nil
}

func (s *workoutService) Update(ctx context.Context, id int64, upd WorkoutUpdate) (*domain.Workout, error) {
	w, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Identifier != nil {
		e, err := resolveExercise(ctx, s.exercises, *upd.Identifier)
		if err != nil {
			return nil, err
		}
		w.ExerciseName = e.Name
	}
	if upd.Timestamp != nil {
		w.Timestamp = upd.Timestamp.UTC()
	}
	if upd.Sets != nil {
		w.Sets = upd.Sets
	}
	if upd.Reps != nil {
		w.Reps = upd.Reps
	}
	if upd.Weight != nil {
		w.Weight = upd.Weight
	}
	if upd.DurationMin != nil {
		w.DurationMin = upd.DurationMin
	}
	if upd.DistanceKm != nil {
		w.DistanceKm = upd.DistanceKm
	}
	if upd.Notes != nil {
		w.Notes = upd.Notes
	}
	if err := validateWorkoutValues(w.Sets, w.Reps, w.Weight, w.DurationMin, w.DistanceKm); err != nil {
		return nil, err
	}
	if err := s.workouts.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workoutService) Delete(ctx context.Context, id int64) error {
	return s.workouts.Delete(ctx, id)
}

func validateWorkoutValues(sets, reps *int64, weight *float64, durationMin *int64, distanceKm *float64) error {
	if sets != nil && *sets < 1 {
		return fmt.Errorf("sets must be at least 1: %w", ErrInvalidInput)
	}
	if reps != nil && *reps < 0 {
		return fmt.Errorf("reps must not be negative: %w", ErrInvalidInput)
	}
	if weight != nil && *weight < 0 {
		return fmt.Errorf("weight must not be negative: %w", ErrInvalidInput)
	}
	if durationMin != nil && *durationMin < 0 {
		return fmt.Errorf("duration must not be negative: %w", ErrInvalidInput)
	}
	if distanceKm != nil && *distanceKm < 0 {
		return fmt.Errorf("distance must not be negative: %w", ErrInvalidInput)
	}
	return nil
}
