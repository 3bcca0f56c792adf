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

// exerciseColumns is the canonical SELECT column list for exercises.
const exerciseColumns = `id, name, type, muscles,
		log_weight, log_reps, log_duration, log_distance, created_at`

// SQLiteExerciseRepo implements ExerciseRepo on SQLite. It also owns the
// alias table since aliases have no life of their own outside an exercise.
type SQLiteExerciseRepo struct {
	db db.DBTX
}

// NewSQLiteExerciseRepo creates a new SQLiteExerciseRepo on the given
// connection, which may be a *sql.DB or a transaction.
func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) Create(ctx context.Context, e *domain.Exercise) error {
	query := `INSERT INTO exercises (name, type, muscles,
		log_weight, log_reps, log_duration, log_distance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		string(e.Type),
		ptrToValue(e.Muscles),
		boolToInt(e.LogWeight),
		boolToInt(e.LogReps),
		boolToInt(e.LogDuration),
		boolToInt(e.LogDistance),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading exercise id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteExerciseRepo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ?`
	return r.scanExercise(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteExerciseRepo) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE name = ? COLLATE NOCASE`
	return r.scanExercise(r.db.QueryRowContext(ctx, query, strings.TrimSpace(name)))
}

func (r *SQLiteExerciseRepo) GetByAlias(ctx context.Context, alias string) (*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumnsAliased + `
		FROM exercises e
		JOIN aliases a ON a.exercise_id = e.id
		WHERE a.name = ? COLLATE NOCASE`
	return r.scanExercise(r.db.QueryRowContext(ctx, query, strings.TrimSpace(alias)))
}

const exerciseColumnsAliased = `e.id, e.name, e.type, e.muscles,
		e.log_weight, e.log_reps, e.log_duration, e.log_distance, e.created_at`

func (r *SQLiteExerciseRepo) List(ctx context.Context, typeFilter *domain.ExerciseType, muscle *string) ([]*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises`
	var conds []string
	var args []any
	if typeFilter != nil {
		conds = append(conds, "type = ?")
		args = append(args, string(*typeFilter))
	}
	if muscle != nil && strings.TrimSpace(*muscle) != "" {
		conds = append(conds, "muscles LIKE ? COLLATE NOCASE")
		args = append(args, "%"+strings.TrimSpace(*muscle)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name COLLATE NOCASE"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		e, err := scanExerciseRow(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *SQLiteExerciseRepo) Update(ctx context.Context, e *domain.Exercise) error {
	query := `UPDATE exercises SET name = ?, type = ?, muscles = ?,
		log_weight = ?, log_reps = ?, log_duration = ?, log_distance = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		string(e.Type),
		ptrToValue(e.Muscles),
		boolToInt(e.LogWeight),
		boolToInt(e.LogReps),
		boolToInt(e.LogDuration),
		boolToInt(e.LogDistance),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating exercise: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("exercise %d: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteExerciseRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteExerciseRepo) CreateAlias(ctx context.Context, a *domain.Alias) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO aliases (name, exercise_id) VALUES (?, ?)`,
		strings.TrimSpace(a.Name), a.ExerciseID)
	if err != nil {
		return fmt.Errorf("inserting alias: %w", err)
	}
	return nil
}

func (r *SQLiteExerciseRepo) DeleteAlias(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM aliases WHERE name = ? COLLATE NOCASE`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("deleting alias: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking alias delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("alias %q: %w", name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteExerciseRepo) ListAliases(ctx context.Context) ([]domain.Alias, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, exercise_id FROM aliases ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}
	defer rows.Close()

	var aliases []domain.Alias
	for rows.Next() {
		var a domain.Alias
		if err := rows.Scan(&a.Name, &a.ExerciseID); err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}
		aliases = append(aliases, a)
	}
	return aliases, rows.Err()
}

func (r *SQLiteExerciseRepo) scanExercise(row *sql.Row) (*domain.Exercise, error) {
	var e domain.Exercise
	var typeStr, createdAtStr string
	var muscles sql.NullString
	var logWeight, logReps, logDuration, logDistance int

	err := row.Scan(&e.ID, &e.Name, &typeStr, &muscles,
		&logWeight, &logReps, &logDuration, &logDistance, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("exercise: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning exercise: %w", err)
	}

	fillExercise(&e, typeStr, muscles, logWeight, logReps, logDuration, logDistance, createdAtStr)
	return &e, nil
}

func scanExerciseRow(rows *sql.Rows) (*domain.Exercise, error) {
	var e domain.Exercise
	var typeStr, createdAtStr string
	var muscles sql.NullString
	var logWeight, logReps, logDuration, logDistance int

	err := rows.Scan(&e.ID, &e.Name, &typeStr, &muscles,
		&logWeight, &logReps, &logDuration, &logDistance, &createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning exercise: %w", err)
	}

	fillExercise(&e, typeStr, muscles, logWeight, logReps, logDuration, logDistance, createdAtStr)
	return &e, nil
}

func fillExercise(e *domain.Exercise, typeStr string, muscles sql.NullString,
	logWeight, logReps, logDuration, logDistance int, createdAtStr string) {
	e.Type = domain.ExerciseType(typeStr)
	e.Muscles = nullableString(muscles)
	e.LogWeight = intToBool(logWeight)
	e.LogReps = intToBool(logReps)
	e.LogDuration = intToBool(logDuration)
	e.LogDistance = intToBool(logDistance)
	if t, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
		e.CreatedAt = t
	}
}
