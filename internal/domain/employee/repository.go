package employee

import "context"

// EmployeeRepository defines data access for employee records.
// All methods take businessID to prevent cross-tenant access.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, businessID string) (Employee, error)
	List(ctx context.Context, businessID string) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string, businessID string) error
}
