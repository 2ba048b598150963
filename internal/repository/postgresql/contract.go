package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/contract"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// Create implements contract.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contracts (id, business_id, employee_id, type, contract_hours, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, business_id, employee_id, type, contract_hours, start_date, end_date, created_at, updated_at
	`

	var created contract.Contract
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		c.BusinessID,
		c.EmployeeID,
		c.Type,
		c.ContractHours,
		c.StartDate,
		c.EndDate,
	).Scan(
		&created.ID,
		&created.BusinessID,
		&created.EmployeeID,
		&created.Type,
		&created.ContractHours,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return contract.Contract{}, err
	}

	return created, nil
}

// ListByEmployee implements contract.ContractRepository.
func (r *contractRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, businessID string) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, employee_id, type, contract_hours, start_date, end_date, created_at, updated_at
		FROM contracts
		WHERE employee_id = $1 AND business_id = $2
		ORDER BY start_date DESC, id
	`

	rows, err := q.Query(ctx, query, employeeID, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := []contract.Contract{}
	for rows.Next() {
		var c contract.Contract
		if err := rows.Scan(
			&c.ID,
			&c.BusinessID,
			&c.EmployeeID,
			&c.Type,
			&c.ContractHours,
			&c.StartDate,
			&c.EndDate,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

// GetActiveByEmployee implements contract.ContractRepository. The newest
// contract covering the date wins when ranges overlap.
func (r *contractRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string, on time.Time, businessID string) (*contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, employee_id, type, contract_hours, start_date, end_date, created_at, updated_at
		FROM contracts
		WHERE employee_id = $1 AND business_id = $2
		  AND start_date <= $3
		  AND (end_date IS NULL OR end_date >= $3)
		ORDER BY start_date DESC
		LIMIT 1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, employeeID, businessID, on).Scan(
		&c.ID,
		&c.BusinessID,
		&c.EmployeeID,
		&c.Type,
		&c.ContractHours,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}
