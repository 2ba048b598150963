package contract

import (
	"context"
	"time"
)

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)

	// ListByEmployee returns all contracts for an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string, businessID string) ([]Contract, error)

	// GetActiveByEmployee returns the contract covering the given date,
	// or nil when the employee has none.
	GetActiveByEmployee(ctx context.Context, employeeID string, on time.Time, businessID string) (*Contract, error)
}
