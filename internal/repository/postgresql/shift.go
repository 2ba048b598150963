package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, business_id, employee_id, day, date, start_time, end_time, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, business_id, employee_id, day, date, start_time, end_time, position, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		s.BusinessID,
		s.EmployeeID,
		s.Day,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.Position,
	).Scan(
		&created.ID,
		&created.BusinessID,
		&created.EmployeeID,
		&created.Day,
		&created.Date,
		&created.StartTime,
		&created.EndTime,
		&created.Position,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string, businessID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.business_id, s.employee_id, s.day, s.date, s.start_time, s.end_time, s.position,
			   s.created_at, s.updated_at, e.name
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1 AND s.business_id = $2
	`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id, businessID).Scan(
		&found.ID,
		&found.BusinessID,
		&found.EmployeeID,
		&found.Day,
		&found.Date,
		&found.StartTime,
		&found.EndTime,
		&found.Position,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return found, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $1, day = $2, date = $3, start_time = $4, end_time = $5, position = $6, updated_at = NOW()
		WHERE id = $7 AND business_id = $8
	`

	tag, err := q.Exec(ctx, query, s.EmployeeID, s.Day, s.Date, s.StartTime, s.EndTime, s.Position, s.ID, s.BusinessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ListByRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByRange(ctx context.Context, start, end time.Time, businessID string) ([]shift.Shift, error) {
	query := `
		SELECT s.id, s.business_id, s.employee_id, s.day, s.date, s.start_time, s.end_time, s.position,
			   s.created_at, s.updated_at, e.name
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.business_id = $1 AND s.date BETWEEN $2 AND $3
		ORDER BY s.date, s.start_time, s.id
	`
	return r.queryShifts(ctx, query, businessID, start, end)
}

// ListByEmployeeInRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]shift.Shift, error) {
	query := `
		SELECT s.id, s.business_id, s.employee_id, s.day, s.date, s.start_time, s.end_time, s.position,
			   s.created_at, s.updated_at, e.name
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.business_id = $1 AND s.date BETWEEN $2 AND $3 AND s.employee_id = $4
		ORDER BY s.date, s.start_time, s.id
	`
	return r.queryShifts(ctx, query, businessID, start, end, employeeID)
}

func (r *shiftRepositoryImpl) queryShifts(ctx context.Context, query string, args ...interface{}) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []shift.Shift{}
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID,
			&s.BusinessID,
			&s.EmployeeID,
			&s.Day,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Position,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.EmployeeName,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}
