package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/athlog/internal/db"
	"github.com/alexanderramin/athlog/internal/domain"
)

// workoutColumns is the canonical joined SELECT column list for workouts.
// The LEFT JOIN keeps history readable when the exercise definition was
// deleted: type and muscles simply come back NULL.
const workoutColumns = `w.id, w.exercise_name, w.timestamp,
		w.sets, w.reps, w.weight, w.duration_min, w.distance_km,
		w.bodyweight, w.notes, e.type, e.muscles`

const workoutJoin = ` FROM workouts w
		LEFT JOIN exercises e ON e.name = w.exercise_name COLLATE NOCASE`

// SQLiteWorkoutRepo implements WorkoutRepo on SQLite.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo on the given
// connection, which may be a *sql.DB or a transaction.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

func (r *SQLiteWorkoutRepo) Create(ctx context.Context, w *domain.Workout) error {
	query := `INSERT INTO workouts (exercise_name, timestamp,
		sets, reps, weight, duration_min, distance_km, bodyweight, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		w.ExerciseName,
		w.Timestamp.UTC().Format(time.RFC3339),
		ptrToValue(w.Sets),
		ptrToValue(w.Reps),
		ptrToValue(w.Weight),
		ptrToValue(w.DurationMin),
		ptrToValue(w.DistanceKm),
		ptrToValue(w.Bodyweight),
		ptrToValue(w.Notes),
	)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading workout id: %w", err)
	}
	w.ID = id
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + workoutJoin + ` WHERE w.id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("loading workout: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading workout: %w", err)
		}
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return scanWorkout(rows)
}

func (r *SQLiteWorkoutRepo) List(ctx context.Context, f WorkoutFilters) ([]*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + workoutJoin
	var conds []string
	var args []any

	if f.ExerciseName != nil {
		conds = append(conds, "w.exercise_name = ? COLLATE NOCASE")
		args = append(args, strings.TrimSpace(*f.ExerciseName))
	}
	if f.Date != nil {
		conds = append(conds, "date(w.timestamp) = date(?)")
		args = append(args, f.Date.UTC().Format("2006-01-02"))
	}
	if f.ExerciseType != nil {
		conds = append(conds, "e.type = ?")
		args = append(args, string(*f.ExerciseType))
	}
	if f.Muscle != nil && strings.TrimSpace(*f.Muscle) != "" {
		conds = append(conds, "e.muscles LIKE ? COLLATE NOCASE")
		args = append(args, "%"+strings.TrimSpace(*f.Muscle)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY w.timestamp DESC, w.id DESC"
	if f.Limit != nil && f.Date == nil {
		query += " LIMIT ?"
		args = append(args, *f.Limit)
	}

	return r.queryWorkouts(ctx, query, args...)
}

func (r *SQLiteWorkoutRepo) ListForVolume(ctx context.Context, f VolumeFilters) ([]*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + workoutJoin
	var conds []string
	var args []any

	if f.ExerciseName != nil {
		conds = append(conds, "w.exercise_name = ? COLLATE NOCASE")
		args = append(args, strings.TrimSpace(*f.ExerciseName))
	}
	if f.StartDate != nil {
		conds = append(conds, "date(w.timestamp) >= date(?)")
		args = append(args, f.StartDate.UTC().Format("2006-01-02"))
	}
	if f.EndDate != nil {
		conds = append(conds, "date(w.timestamp) <= date(?)")
		args = append(args, f.EndDate.UTC().Format("2006-01-02"))
	}
	if f.ExerciseType != nil {
		conds = append(conds, "e.type = ?")
		args = append(args, string(*f.ExerciseType))
	}
	if f.Muscle != nil && strings.TrimSpace(*f.Muscle) != "" {
		conds = append(conds, "e.muscles LIKE ? COLLATE NOCASE")
		args = append(args, "%"+strings.TrimSpace(*f.Muscle)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY w.timestamp DESC, w.exercise_name COLLATE NOCASE"

	return r.queryWorkouts(ctx, query, args...)
}

func (r *SQLiteWorkoutRepo) ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + workoutJoin + `
		WHERE w.exercise_name = ? COLLATE NOCASE
		ORDER BY w.timestamp, w.id`
	return r.queryWorkouts(ctx, query, strings.TrimSpace(exerciseName))
}

func (r *SQLiteWorkoutRepo) Update(ctx context.Context, w *domain.Workout) error {
	query := `UPDATE workouts SET exercise_name = ?, timestamp = ?,
		sets = ?, reps = ?, weight = ?, duration_min = ?, distance_km = ?,
		bodyweight = ?, notes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.ExerciseName,
		w.Timestamp.UTC().Format(time.RFC3339),
		ptrToValue(w.Sets),
		ptrToValue(w.Reps),
		ptrToValue(w.Weight),
		ptrToValue(w.DurationMin),
		ptrToValue(w.DistanceKm),
		ptrToValue(w.Bodyweight),
		ptrToValue(w.Notes),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workout %d: %w", w.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return nil
}

// RenameExercise rewrites the denormalized exercise name across history.
// Runs inside the same transaction as the definition rename so workouts are
// never left pointing at a name that no longer resolves.
func (r *SQLiteWorkoutRepo) RenameExercise(ctx context.Context, oldName, newName string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE workouts SET exercise_name = ? WHERE exercise_name = ? COLLATE NOCASE`,
		newName, strings.TrimSpace(oldName))
	if err != nil {
		return 0, fmt.Errorf("renaming exercise in workouts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rename result: %w", err)
	}
	return n, nil
}

func (r *SQLiteWorkoutRepo) queryWorkouts(ctx context.Context, query string, args ...any) ([]*domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*domain.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func scanWorkout(rows *sql.Rows) (*domain.Workout, error) {
	var w domain.Workout
	var timestampStr string
	var sets, reps, durationMin sql.NullInt64
	var weight, distanceKm, bodyweight sql.NullFloat64
	var notes, typeStr, muscles sql.NullString

	err := rows.Scan(&w.ID, &w.ExerciseName, &timestampStr,
		&sets, &reps, &weight, &durationMin, &distanceKm,
		&bodyweight, &notes, &typeStr, &muscles)
	if err != nil {
		return nil, fmt.Errorf("scanning workout: %w", err)
	}

	w.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("parsing workout timestamp: %w", err)
	}
	w.Sets = nullableInt64(sets)
	w.Reps = nullableInt64(reps)
	w.Weight = nullableFloat64(weight)
	w.DurationMin = nullableInt64(durationMin)
	w.DistanceKm = nullableFloat64(distanceKm)
	w.Bodyweight = nullableFloat64(bodyweight)
	w.Notes = nullableString(notes)
	w.ExerciseMuscles = nullableString(muscles)
	if typeStr.Valid {
		t := domain.ExerciseType(typeStr.String)
		w.ExerciseType = &t
	}
	return &w, nil
}
