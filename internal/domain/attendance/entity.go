package attendance

import "time"

// ClockRecord is one badged work session: a clock-in, and a clock-out once
// the employee badges out.
type ClockRecord struct {
	ID         string
	BusinessID string
	EmployeeID string
	Date       time.Time // calendar day of the session
	BadgeInAt  time.Time
	BadgeOutAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// WorkedMinutes returns the badged session length, or nil while still open.
func (r ClockRecord) WorkedMinutes() *int {
	if r.BadgeOutAt == nil {
		return nil
	}
	minutes := int(r.BadgeOutAt.Sub(r.BadgeInAt).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return &minutes
}
