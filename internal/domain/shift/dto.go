package shift

import (
	"strings"
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/pkg/timeutil"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Day        string `json:"day"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Position   string `json:"position"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.Day, Weekdays) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be one of: " + strings.Join(Weekdays, ", "),
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := timeutil.NormalizeTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time of day",
		})
	}
	if _, ok := timeutil.NormalizeTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time of day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Position  string `json:"position"`
}

func (r *UpdateShiftRequest) Validate() error {
	create := CreateShiftRequest{
		EmployeeID: "-", // not updatable, skip that check
		Day:        r.Day,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Position:   r.Position,
	}
	return create.Validate()
}

type ShiftResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Day          string    `json:"day"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Position     string    `json:"position,omitempty"`
	Duration     string    `json:"duration"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Day:        s.Day,
		Date:       s.Date.Format("2006-01-02"),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Position:   s.Position,
		CreatedAt:  s.CreatedAt,
	}
	if s.EmployeeName != nil {
		resp.EmployeeName = *s.EmployeeName
	}
	if d, ok := timeutil.ComputeDuration(s.StartTime, s.EndTime); ok {
		resp.Duration = d.String()
	} else {
		resp.Duration = "Invalid Time"
	}
	return resp
}

type PlanningRequest struct {
	StartDate  string
	EndDate    string
	EmployeeID string // empty or "all" for everyone
}

func (r *PlanningRequest) Validate() error {
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

// DayPlanning lists one weekday's shifts in chronological order.
type DayPlanning struct {
	Day    string          `json:"day"`
	Shifts []ShiftResponse `json:"shifts"`
}

type PlanningResponse struct {
	Days []DayPlanning `json:"days"`
}
