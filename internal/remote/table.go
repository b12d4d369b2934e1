package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/xolan/shiftbook/internal/normalize"
	"github.com/xolan/shiftbook/internal/shift"
)

// ErrNotFound is returned when no row has the given id
var ErrNotFound = errors.New("shift not found")

// ShiftTable is a table of addressable shifts with simple CRUD
type ShiftTable interface {
	List(ctx context.Context) ([]shift.Shift, error)
	// Insert stores s and returns the identifier assigned to it
	Insert(ctx context.Context, s shift.Shift) (string, error)
	Update(ctx context.Context, id string, s shift.Shift) error
	Delete(ctx context.Context, id string) error
}

// SQLiteTable implements ShiftTable on the shifts table
type SQLiteTable struct {
	db *sql.DB
}

// NewSQLiteTable wraps an open, migrated database
func NewSQLiteTable(db *sql.DB) *SQLiteTable {
	return &SQLiteTable{db: db}
}

const selectColumns = "id, date, title, start_time, end_time, location, salary, type, description, hourly_rate"

// List returns every row ordered by date then start time
func (t *SQLiteTable) List(ctx context.Context) ([]shift.Shift, error) {
	rows, err := t.db.QueryContext(ctx, "SELECT "+selectColumns+" FROM shifts ORDER BY date, start_time")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	shifts := []shift.Shift{}
	for rows.Next() {
		var r normalize.Row
		var hourly sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Date, &r.Title, &r.StartTime, &r.EndTime, &r.Location,
			&r.Salary, &r.Type, &r.Description, &hourly); err != nil {
			return nil, err
		}
		if hourly.Valid {
			rate := int(hourly.Int64)
			r.HourlyRate = &rate
		}
		shifts = append(shifts, normalize.FromRemote(r))
	}
	return shifts, rows.Err()
}

// Get returns the row with the given id
func (t *SQLiteTable) Get(ctx context.Context, id string) (shift.Shift, error) {
	var r normalize.Row
	var hourly sql.NullInt64
	err := t.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM shifts WHERE id = ?", id).
		Scan(&r.ID, &r.Date, &r.Title, &r.StartTime, &r.EndTime, &r.Location,
			&r.Salary, &r.Type, &r.Description, &hourly)
	if errors.Is(err, sql.ErrNoRows) {
		return shift.Shift{}, ErrNotFound
	}
	if err != nil {
		return shift.Shift{}, err
	}
	if hourly.Valid {
		rate := int(hourly.Int64)
		r.HourlyRate = &rate
	}
	return normalize.FromRemote(r), nil
}

// Insert stores s under a new UUID and returns it
func (t *SQLiteTable) Insert(ctx context.Context, s shift.Shift) (string, error) {
	id := uuid.NewString()
	r := normalize.ToRemote(s)

	_, err := t.db.ExecContext(ctx,
		"INSERT INTO shifts ("+selectColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, r.Date, r.Title, r.StartTime, r.EndTime, r.Location, r.Salary, r.Type, r.Description, r.HourlyRate)
	if err != nil {
		return "", fmt.Errorf("failed to insert shift: %w", err)
	}
	return id, nil
}

// Update replaces every column of the row with the given id
func (t *SQLiteTable) Update(ctx context.Context, id string, s shift.Shift) error {
	r := normalize.ToRemote(s)

	result, err := t.db.ExecContext(ctx,
		`UPDATE shifts SET date = ?, title = ?, start_time = ?, end_time = ?, location = ?,
			salary = ?, type = ?, description = ?, hourly_rate = ? WHERE id = ?`,
		r.Date, r.Title, r.StartTime, r.EndTime, r.Location, r.Salary, r.Type, r.Description, r.HourlyRate, id)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return requireOneRow(result)
}

// Delete removes the row with the given id
func (t *SQLiteTable) Delete(ctx context.Context, id string) error {
	result, err := t.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return requireOneRow(result)
}

func requireOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
