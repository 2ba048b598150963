package attendance

import "context"

type AttendanceService interface {
	// BadgeIn opens a clock record for the employee
	BadgeIn(ctx context.Context, req BadgeRequest) (ClockRecordResponse, error)

	// BadgeOut closes the employee's open clock record
	BadgeOut(ctx context.Context, req BadgeRequest) (ClockRecordResponse, error)

	// List returns clock records in a date range, optionally for one employee
	List(ctx context.Context, req ListAttendanceRequest) (ListAttendanceResponse, error)
}
