package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/athlog/internal/db"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
)

type exerciseService struct {
	exercises repository.ExerciseRepo
	workouts  repository.WorkoutRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewExerciseService(
	exercises repository.ExerciseRepo,
	workouts repository.WorkoutRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ExerciseService {
	return &exerciseService{
		exercises: exercises,
		workouts:  workouts,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// resolveExercise maps an identifier to an exercise: numeric id, then exact
// case-insensitive name, then exact alias. Works on plain and tx-scoped
// repositories alike.
func resolveExercise(ctx context.Context, exercises repository.ExerciseRepo, identifier string) (*domain.Exercise, error) {
	ident := strings.TrimSpace(identifier)
	if ident == "" {
		return nil, fmt.Errorf("empty exercise identifier: %w", ErrInvalidInput)
	}

	if id, err := strconv.ParseInt(ident, 10, 64); err == nil {
		e, err := exercises.GetByID(ctx, id)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	e, err := exercises.GetByName(ctx, ident)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	e, err = exercises.GetByAlias(ctx, ident)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return nil, fmt.Errorf("exercise %q: %w", ident, repository.ErrNotFound)
}

func (s *exerciseService) Create(ctx context.Context, name string, typ domain.ExerciseType, muscles *string) (*domain.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("exercise name must not be empty: %w", ErrInvalidInput)
	}
	if err := s.checkNameFree(ctx, name); err != nil {
		return nil, err
	}

	e := &domain.Exercise{
		Name:      name,
		Type:      typ,
		Muscles:   normalizeMuscles(muscles),
		CreatedAt: time.Now().UTC(),
	}
	e.LogWeight, e.LogReps, e.LogDuration, e.LogDistance = domain.DefaultLogFlags(typ)

	if err := s.exercises.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *exerciseService) Resolve(ctx context.Context, identifier string) (*domain.Exercise, error) {
	return resolveExercise(ctx, s.exercises, identifier)
}

func (s *exerciseService) List(ctx context.Context, typeFilter *domain.ExerciseType, muscle *string) ([]*domain.Exercise, error) {
	return s.exercises.List(ctx, typeFilter, muscle)
}

func (s *exerciseService) Update(ctx context.Context, identifier string, upd ExerciseUpdate) (e *domain.Exercise, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"identifier": identifier}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "edit-exercise",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txExercises := repository.NewSQLiteExerciseRepo(tx)
		txWorkouts := repository.NewSQLiteWorkoutRepo(tx)

		e, err = resolveExercise(ctx, txExercises, identifier)
		if err != nil {
			return err
		}
		oldName := e.Name

		if upd.Name != nil {
			newName := strings.TrimSpace(*upd.Name)
			if newName == "" {
				return fmt.Errorf("exercise name must not be empty: %w", ErrInvalidInput)
			}
			e.Name = newName
		}
		if upd.Type != nil {
			e.Type = *upd.Type
		}
		if upd.Muscles != nil {
			e.Muscles = normalizeMuscles(upd.Muscles)
		}
		if upd.LogWeight != nil {
			e.LogWeight = *upd.LogWeight
		}
		if upd.LogReps != nil {
			e.LogReps = *upd.LogReps
		}
		if upd.LogDuration != nil {
			e.LogDuration = *upd.LogDuration
		}
		if upd.LogDistance != nil {
			e.LogDistance = *upd.LogDistance
		}

		if err := txExercises.Update(ctx, e); err != nil {
			return err
		}

		// The workout table stores the name, not the id, so a rename has
		// to rewrite history in the same transaction.
		if !strings.EqualFold(oldName, e.Name) {
			n, err := txWorkouts.RenameExercise(ctx, oldName, e.Name)
			if err != nil {
				return err
			}
			fields["renamed_workouts"] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *exerciseService) Delete(ctx context.Context, identifier string) error {
	e, err := s.Resolve(ctx, identifier)
	if err != nil {
		return err
	}
	// Aliases go with the definition (FK cascade); workout history keeps
	// the name and stays listable.
	return s.exercises.Delete(ctx, e.ID)
}

func (s *exerciseService) CreateAlias(ctx context.Context, alias, identifier string) (*domain.Exercise, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, fmt.Errorf("alias must not be empty: %w", ErrInvalidInput)
	}
	if _, err := strconv.ParseInt(alias, 10, 64); err == nil {
		return nil, fmt.Errorf("alias %q would shadow id lookup: %w", alias, ErrInvalidInput)
	}
	// An alias that matches an exercise name would be unreachable.
	if _, err := s.exercises.GetByName(ctx, alias); err == nil {
		return nil, fmt.Errorf("alias %q: %w", alias, ErrNameTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	e, err := s.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := s.exercises.CreateAlias(ctx, &domain.Alias{Name: alias, ExerciseID: e.ID}); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *exerciseService) DeleteAlias(ctx context.Context, alias string) error {
	return s.exercises.DeleteAlias(ctx, alias)
}

// ListAliases returns all aliases along with their exercises, index-aligned.
func (s *exerciseService) ListAliases(ctx context.Context) ([]domain.Alias, []*domain.Exercise, error) {
	aliases, err := s.exercises.ListAliases(ctx)
	if err != nil {
		return nil, nil, err
	}
	exercises := make([]*domain.Exercise, len(aliases))
	for i, a := range aliases {
		e, err := s.exercises.GetByID(ctx, a.ExerciseID)
		if err != nil {
			return nil, nil, err
		}
		exercises[i] = e
	}
	return aliases, exercises, nil
}

func (s *exerciseService) checkNameFree(ctx context.Context, name string) error {
	if _, err := s.exercises.GetByName(ctx, name); err == nil {
		return fmt.Errorf("exercise %q: %w", name, ErrNameTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if _, err := s.exercises.GetByAlias(ctx, name); err == nil {
		return fmt.Errorf("exercise %q collides with an alias: %w", name, ErrNameTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func normalizeMuscles(muscles *string) *string {
	if muscles == nil {
		return nil
	}
	parts := strings.Split(*muscles, ",")
	cleaned := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	joined := strings.Join(cleaned, ",")
	return &joined
}
