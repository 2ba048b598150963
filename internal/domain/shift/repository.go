package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access for scheduled shifts.
// All methods take businessID to prevent cross-tenant access.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string, businessID string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string, businessID string) error

	// ListByRange returns shifts whose date falls in [start, end] inclusive
	ListByRange(ctx context.Context, start, end time.Time, businessID string) ([]Shift, error)

	// ListByEmployeeInRange narrows ListByRange to one employee
	ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]Shift, error)
}
