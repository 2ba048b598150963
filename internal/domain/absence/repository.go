package absence

import "context"

// AbsenceRepository defines data access for absence requests.
// All methods take businessID to prevent cross-tenant access.
type AbsenceRepository interface {
	Create(ctx context.Context, a AbsenceRequest) (AbsenceRequest, error)
	GetByID(ctx context.Context, id string, businessID string) (AbsenceRequest, error)

	// List returns requests for the business, optionally filtered by status
	List(ctx context.Context, status string, businessID string) ([]AbsenceRequest, error)

	// ListByEmployee returns an employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID string, businessID string) ([]AbsenceRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status, businessID string) error
}
