package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, business_id, name, email, position, contract_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, business_id, name, email, position, contract_hours, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		e.BusinessID,
		e.Name,
		e.Email,
		e.Position,
		e.ContractHours,
	).Scan(
		&created.ID,
		&created.BusinessID,
		&created.Name,
		&created.Email,
		&created.Position,
		&created.ContractHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, businessID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, email, position, contract_hours, created_at, updated_at
		FROM employees
		WHERE id = $1 AND business_id = $2
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id, businessID).Scan(
		&found.ID,
		&found.BusinessID,
		&found.Name,
		&found.Email,
		&found.Position,
		&found.ContractHours,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, businessID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, email, position, contract_hours, created_at, updated_at
		FROM employees
		WHERE business_id = $1
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID,
			&e.BusinessID,
			&e.Name,
			&e.Email,
			&e.Position,
			&e.ContractHours,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, position = $3, contract_hours = $4, updated_at = NOW()
		WHERE id = $5 AND business_id = $6
	`

	tag, err := q.Exec(ctx, query, e.Name, e.Email, e.Position, e.ContractHours, e.ID, e.BusinessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
