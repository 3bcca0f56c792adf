package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/athlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyweightRepo_CreateAndLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBodyweightRepo(db)
	ctx := context.Background()

	older := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestBodyweight(71.5, older)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestBodyweight(70.2, newer)))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70.2, latest.Weight)
	assert.True(t, latest.Timestamp.Equal(newer))
}

func TestBodyweightRepo_Latest_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBodyweightRepo(db)

	_, err := repo.Latest(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBodyweightRepo_List_NewestFirstWithLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBodyweightRepo(db)
	ctx := context.Background()

	for day := 1; day <= 4; day++ {
		ts := time.Date(2025, 6, day, 8, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Create(ctx, testutil.NewTestBodyweight(70+float64(day), ts)))
	}

	entries, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 74.0, entries[0].Weight)
	assert.Equal(t, 73.0, entries[1].Weight)
}

func TestBodyweightRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBodyweightRepo(db)
	ctx := context.Background()

	b := testutil.NewTestBodyweight(72, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := repo.Latest(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, b.ID), ErrNotFound))
}

func TestBodyweightRepo_RejectsNonPositive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBodyweightRepo(db)

	err := repo.Create(context.Background(), testutil.NewTestBodyweight(0, time.Now().UTC()))
	assert.Error(t, err, "schema constraint requires weight > 0")
}
