package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
	"github.com/alexanderramin/athlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExerciseFixture(t *testing.T) (ExerciseService, *repository.SQLiteWorkoutRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	exercises := repository.NewSQLiteExerciseRepo(database)
	workouts := repository.NewSQLiteWorkoutRepo(database)
	uow := testutil.NewTestUoW(database)
	return NewExerciseService(exercises, workouts, uow), workouts
}

func TestExerciseService_CreateAppliesDefaultLogFlags(t *testing.T) {
	svc, _ := newExerciseFixture(t)
	ctx := context.Background()

	muscles := " legs , glutes ,"
	e, err := svc.Create(ctx, "Squat", domain.ExerciseResistance, &muscles)
	require.NoError(t, err)
	assert.True(t, e.LogWeight)
	assert.True(t, e.LogReps)
	assert.False(t, e.LogDuration)
	require.NotNil(t, e.Muscles)
	assert.Equal(t, "legs,glutes", *e.Muscles)

	cardio, err := svc.Create(ctx, "Running", domain.ExerciseCardio, nil)
	require.NoError(t, err)
	assert.False(t, cardio.LogWeight)
	assert.True(t, cardio.LogDuration)
	assert.True(t, cardio.LogDistance)
}

func TestExerciseService_CreateRejectsCollisions(t *testing.T) {
	svc, _ := newExerciseFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Bench Press", domain.ExerciseResistance, nil)
	require.NoError(t, err)
	_, err = svc.CreateAlias(ctx, "bp", "Bench Press")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "bench press", domain.ExerciseResistance, nil)
	assert.True(t, errors.Is(err, ErrNameTaken), "duplicate name differs only in case")

	_, err = svc.Create(ctx, "BP", domain.ExerciseResistance, nil)
	assert.True(t, errors.Is(err, ErrNameTaken), "name must not collide with an alias")

	_, err = svc.Create(ctx, "  ", domain.ExerciseResistance, nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestExerciseService_ResolveOrder(t *testing.T) {
	svc, _ := newExerciseFixture(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "Pull-up", domain.ExerciseBodyWeight, nil)
	require.NoError(t, err)
	_, err = svc.CreateAlias(ctx, "pu", "Pull-up")
	require.NoError(t, err)

	byID, err := svc.Resolve(ctx, fmt.Sprintf("%d", e.ID))
	require.NoError(t, err)
	assert.Equal(t, e.ID, byID.ID)

	byName, err := svc.Resolve(ctx, "PULL-UP")
	require.NoError(t, err)
	assert.Equal(t, e.ID, byName.ID)

	byAlias, err := svc.Resolve(ctx, "Pu")
	require.NoError(t, err)
	assert.Equal(t, e.ID, byAlias.ID)

	_, err = svc.Resolve(ctx, "nope")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestExerciseService_RenameKeepsHistoryAndAliases(t *testing.T) {
	svc, workouts := newExerciseFixture(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "Bench Press", domain.ExerciseResistance, nil)
	require.NoError(t, err)
	_, err = svc.CreateAlias(ctx, "bp", "Bench Press")
	require.NoError(t, err)

	w := testutil.NewTestWorkout("Bench Press",
		testutil.WithTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		testutil.WithSets(3), testutil.WithReps(5), testutil.WithWeight(80))
	require.NoError(t, workouts.Create(ctx, w))

	newName := "Barbell Bench Press"
	updated, err := svc.Update(ctx, "bp", ExerciseUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, e.ID, updated.ID)

	// History follows the rename and keeps resolving.
	moved, err := workouts.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, moved.ExerciseName)
	require.NotNil(t, moved.ExerciseType)

	// The alias still points at the same exercise.
	viaAlias, err := svc.Resolve(ctx, "bp")
	require.NoError(t, err)
	assert.Equal(t, e.ID, viaAlias.ID)
	assert.Equal(t, newName, viaAlias.Name)
}

func TestExerciseService_UpdateLogFlagsAndType(t *testing.T) {
	svc, _ := newExerciseFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Plank", domain.ExerciseBodyWeight, nil)
	require.NoError(t, err)

	newType := domain.ExerciseResistance
	logDuration := true
	updated, err := svc.Update(ctx, "Plank", ExerciseUpdate{Type: &newType, LogDuration: &logDuration})
	require.NoError(t, err)
	assert.Equal(t, domain.ExerciseResistance, updated.Type)
	assert.True(t, updated.LogDuration)
}

func TestExerciseService_DeleteRemovesAliases(t *testing.T) {
	svc, workouts := newExerciseFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Dip", domain.ExerciseBodyWeight, nil)
	require.NoError(t, err)
	_, err = svc.CreateAlias(ctx, "dips", "Dip")
	require.NoError(t, err)

	w := testutil.NewTestWorkout("Dip", testutil.WithReps(12))
	require.NoError(t, workouts.Create(ctx, w))

	require.NoError(t, svc.Delete(ctx, "dips"))

	_, err = svc.Resolve(ctx, "Dip")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	_, err = svc.Resolve(ctx, "dips")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// History outlives the definition.
	orphan, err := workouts.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dip", orphan.ExerciseName)
	assert.Nil(t, orphan.ExerciseType)
}

func TestExerciseService_AliasValidation(t *testing.T) {
	svc, _ := newExerciseFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Squat", domain.ExerciseResistance, nil)
	require.NoError(t, err)

	_, err = svc.CreateAlias(ctx, "42", "Squat")
	assert.True(t, errors.Is(err, ErrInvalidInput), "numeric alias would shadow id lookup")

	_, err = svc.CreateAlias(ctx, "squat", "Squat")
	assert.True(t, errors.Is(err, ErrNameTaken), "alias must not match an exercise name")

	_, err = svc.CreateAlias(ctx, "sq", "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = svc.CreateAlias(ctx, "sq", "Squat")
	require.NoError(t, err)

	aliases, exercises, err := svc.ListAliases(ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	require.Len(t, exercises, 1)
	assert.Equal(t, "sq", aliases[0].Name)
	assert.Equal(t, "Squat", exercises[0].Name)

	require.NoError(t, svc.DeleteAlias(ctx, "SQ"))
	assert.True(t, errors.Is(svc.DeleteAlias(ctx, "sq"), repository.ErrNotFound))
}
