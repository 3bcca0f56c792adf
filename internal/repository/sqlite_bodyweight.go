package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/athlog/internal/db"
	"github.com/alexanderramin/athlog/internal/domain"
)

// SQLiteBodyweightRepo implements BodyweightRepo on SQLite.
type SQLiteBodyweightRepo struct {
	db db.DBTX
}

// NewSQLiteBodyweightRepo creates a new SQLiteBodyweightRepo on the given
// connection, which may be a *sql.DB or a transaction.
func NewSQLiteBodyweightRepo(conn db.DBTX) *SQLiteBodyweightRepo {
	return &SQLiteBodyweightRepo{db: conn}
}

func (r *SQLiteBodyweightRepo) Create(ctx context.Context, b *domain.BodyweightEntry) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bodyweights (timestamp, weight) VALUES (?, ?)`,
		b.Timestamp.UTC().Format(time.RFC3339), b.Weight)
	if err != nil {
		return fmt.Errorf("inserting bodyweight entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading bodyweight id: %w", err)
	}
	b.ID = id
	return nil
}

// Latest returns the entry with the maximum timestamp.
func (r *SQLiteBodyweightRepo) Latest(ctx context.Context) (*domain.BodyweightEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, timestamp, weight FROM bodyweights
		ORDER BY timestamp DESC, id DESC LIMIT 1`)
	return scanBodyweight(row)
}

func (r *SQLiteBodyweightRepo) List(ctx context.Context, limit int) ([]*domain.BodyweightEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, weight FROM bodyweights
		ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing bodyweight entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.BodyweightEntry
	for rows.Next() {
		var b domain.BodyweightEntry
		var timestampStr string
		if err := rows.Scan(&b.ID, &timestampStr, &b.Weight); err != nil {
			return nil, fmt.Errorf("scanning bodyweight entry: %w", err)
		}
		b.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			return nil, fmt.Errorf("parsing bodyweight timestamp: %w", err)
		}
		entries = append(entries, &b)
	}
	return entries, rows.Err()
}

func (r *SQLiteBodyweightRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bodyweights WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting bodyweight entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bodyweight entry %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanBodyweight(row *sql.Row) (*domain.BodyweightEntry, error) {
	var b domain.BodyweightEntry
	var timestampStr string
	err := row.Scan(&b.ID, &timestampStr, &b.Weight)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bodyweight entry: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning bodyweight entry: %w", err)
	}
	b.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("parsing bodyweight timestamp: %w", err)
	}
	return &b, nil
}
