package absence

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusDeclined),
}

// Absences approved here are authorized; a scheduled shift with no clock
// record and no approved absence is what the tardiness report counts as an
// unauthorized absence.
type AbsenceRequest struct {
	ID         string
	BusinessID string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
