package absence

import "context"

type AbsenceService interface {
	// Create files a new absence request in pending state
	Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)

	// Decide approves or declines a pending request
	Decide(ctx context.Context, id string, req DecideAbsenceRequest) (AbsenceResponse, error)

	// List returns the business's requests, optionally filtered by status
	List(ctx context.Context, status string) (ListAbsenceResponse, error)

	// ListByEmployee returns one employee's requests
	ListByEmployee(ctx context.Context, employeeID string) (ListAbsenceResponse, error)
}
