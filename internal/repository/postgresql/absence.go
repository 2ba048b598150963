package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/absence"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.AbsenceRequest) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_requests (id, business_id, employee_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, business_id, employee_id, start_date, end_date, reason, status, created_at, updated_at
	`

	var created absence.AbsenceRequest
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		a.BusinessID,
		a.EmployeeID,
		a.StartDate,
		a.EndDate,
		a.Reason,
		a.Status,
	).Scan(
		&created.ID,
		&created.BusinessID,
		&created.EmployeeID,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}

	return created, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string, businessID string) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.business_id, a.employee_id, a.start_date, a.end_date, a.reason, a.status,
			   a.created_at, a.updated_at, e.name
		FROM absence_requests a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1 AND a.business_id = $2
	`

	var found absence.AbsenceRequest
	err := q.QueryRow(ctx, query, id, businessID).Scan(
		&found.ID,
		&found.BusinessID,
		&found.EmployeeID,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceRequest{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceRequest{}, err
	}

	return found, nil
}

// List implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, status string, businessID string) ([]absence.AbsenceRequest, error) {
	query := `
		SELECT a.id, a.business_id, a.employee_id, a.start_date, a.end_date, a.reason, a.status,
			   a.created_at, a.updated_at, e.name
		FROM absence_requests a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.business_id = $1 AND ($2 = '' OR a.status = $2)
		ORDER BY a.created_at DESC, a.id
	`
	return r.queryRequests(ctx, query, businessID, status)
}

// ListByEmployee implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, businessID string) ([]absence.AbsenceRequest, error) {
	query := `
		SELECT a.id, a.business_id, a.employee_id, a.start_date, a.end_date, a.reason, a.status,
			   a.created_at, a.updated_at, e.name
		FROM absence_requests a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.business_id = $1 AND a.employee_id = $2
		ORDER BY a.created_at DESC, a.id
	`
	return r.queryRequests(ctx, query, businessID, employeeID)
}

// UpdateStatus implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status absence.Status, businessID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3
	`

	tag, err := q.Exec(ctx, query, status, id, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func (r *absenceRepositoryImpl) queryRequests(ctx context.Context, query string, args ...interface{}) ([]absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []absence.AbsenceRequest{}
	for rows.Next() {
		var a absence.AbsenceRequest
		if err := rows.Scan(
			&a.ID,
			&a.BusinessID,
			&a.EmployeeID,
			&a.StartDate,
			&a.EndDate,
			&a.Reason,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, a)
	}

	return requests, rows.Err()
}
