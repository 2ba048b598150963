package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for clock records.
// All methods take businessID to prevent cross-tenant access.
type AttendanceRepository interface {
	Create(ctx context.Context, r ClockRecord) (ClockRecord, error)

	// SetBadgeOut closes the record by stamping its badge-out time
	SetBadgeOut(ctx context.Context, id string, at time.Time, businessID string) error

	// GetOpenByEmployee returns the employee's open session, if any
	GetOpenByEmployee(ctx context.Context, employeeID string, businessID string) (*ClockRecord, error)

	// ListByRange returns records whose date falls in [start, end] inclusive
	ListByRange(ctx context.Context, start, end time.Time, businessID string) ([]ClockRecord, error)

	// ListByEmployeeInRange narrows ListByRange to one employee
	ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]ClockRecord, error)
}
