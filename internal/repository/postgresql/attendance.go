package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.ClockRecord) (attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_records (id, business_id, employee_id, date, badge_in_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, business_id, employee_id, date, badge_in_at, badge_out_at, created_at, updated_at
	`

	var created attendance.ClockRecord
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		record.BusinessID,
		record.EmployeeID,
		record.Date,
		record.BadgeInAt,
	).Scan(
		&created.ID,
		&created.BusinessID,
		&created.EmployeeID,
		&created.Date,
		&created.BadgeInAt,
		&created.BadgeOutAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return attendance.ClockRecord{}, err
	}

	return created, nil
}

// SetBadgeOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetBadgeOut(ctx context.Context, id string, at time.Time, businessID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clock_records
		SET badge_out_at = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3 AND badge_out_at IS NULL
	`

	tag, err := q.Exec(ctx, query, at, id, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// GetOpenByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string, businessID string) (*attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, employee_id, date, badge_in_at, badge_out_at, created_at, updated_at
		FROM clock_records
		WHERE employee_id = $1 AND business_id = $2 AND badge_out_at IS NULL
		ORDER BY badge_in_at DESC
		LIMIT 1
	`

	var record attendance.ClockRecord
	err := q.QueryRow(ctx, query, employeeID, businessID).Scan(
		&record.ID,
		&record.BusinessID,
		&record.EmployeeID,
		&record.Date,
		&record.BadgeInAt,
		&record.BadgeOutAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// ListByRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByRange(ctx context.Context, start, end time.Time, businessID string) ([]attendance.ClockRecord, error) {
	query := `
		SELECT c.id, c.business_id, c.employee_id, c.date, c.badge_in_at, c.badge_out_at,
			   c.created_at, c.updated_at, e.name
		FROM clock_records c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.business_id = $1 AND c.date BETWEEN $2 AND $3
		ORDER BY c.date, c.badge_in_at, c.id
	`
	return r.queryRecords(ctx, query, businessID, start, end)
}

// ListByEmployeeInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]attendance.ClockRecord, error) {
	query := `
		SELECT c.id, c.business_id, c.employee_id, c.date, c.badge_in_at, c.badge_out_at,
			   c.created_at, c.updated_at, e.name
		FROM clock_records c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.business_id = $1 AND c.date BETWEEN $2 AND $3 AND c.employee_id = $4
		ORDER BY c.date, c.badge_in_at, c.id
	`
	return r.queryRecords(ctx, query, businessID, start, end, employeeID)
}

func (r *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []attendance.ClockRecord{}
	for rows.Next() {
		var record attendance.ClockRecord
		if err := rows.Scan(
			&record.ID,
			&record.BusinessID,
			&record.EmployeeID,
			&record.Date,
			&record.BadgeInAt,
			&record.BadgeOutAt,
			&record.CreatedAt,
			&record.UpdatedAt,
			&record.EmployeeName,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
