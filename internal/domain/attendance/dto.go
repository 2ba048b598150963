package attendance

import (
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type BadgeRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *BadgeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceRequest struct {
	StartDate  string
	EndDate    string
	EmployeeID string // empty or "all" for everyone
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockRecordResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	Date          string     `json:"date"`
	BadgeInAt     time.Time  `json:"badge_in_at"`
	BadgeOutAt    *time.Time `json:"badge_out_at,omitempty"`
	WorkedMinutes *int       `json:"worked_minutes,omitempty"`
}

func ToResponse(r ClockRecord) ClockRecordResponse {
	resp := ClockRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format("2006-01-02"),
		BadgeInAt:     r.BadgeInAt,
		BadgeOutAt:    r.BadgeOutAt,
		WorkedMinutes: r.WorkedMinutes(),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	return resp
}

type ListAttendanceResponse struct {
	Records []ClockRecordResponse `json:"records"`
}
