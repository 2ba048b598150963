package analytics

import (
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

// DailyBreakdownEntry is one shift occurrence inside a weekday bucket.
// Hour figures are fractional hours rounded to two decimals.
type DailyBreakdownEntry struct {
	Date      string  `json:"date"`
	Scheduled float64 `json:"scheduled"`
	Worked    float64 `json:"worked"`
	Overtime  float64 `json:"overtime"`
}

// OvertimeStats is the computed contracted-vs-worked result for one employee
// over a query range. It is derived on every query, never persisted.
type OvertimeStats struct {
	EmployeeID      string    `json:"employee_id"`
	EmployeeName    string    `json:"employee_name"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	ContractedHours float64   `json:"contracted_hours"`
	WorkedHours     float64   `json:"worked_hours"`
	OvertimeHours   float64   `json:"overtime_hours"`
	Severity        Severity  `json:"severity"`

	// InvalidShifts counts shifts whose times could not be parsed; they
	// contribute zero worked hours but are flagged rather than dropped.
	InvalidShifts int `json:"invalid_shifts,omitempty"`

	// DailyBreakdown maps weekday name to that day's shift occurrences.
	DailyBreakdown map[string][]DailyBreakdownEntry `json:"daily_breakdown"`
}

type LateArrivalDetail struct {
	Date           string   `json:"date"`
	ScheduledStart string   `json:"scheduled_start"` // "HH:MM"
	MinutesLate    int      `json:"minutes_late"`
	Severity       Severity `json:"severity"`
}

type LateArrivals struct {
	Count            int                 `json:"count"`
	TotalMinutesLate int                 `json:"total_minutes_late"`
	Details          []LateArrivalDetail `json:"details"`
}

type AbsenceDetail struct {
	Date           string `json:"date"`
	ScheduledShift string `json:"scheduled_shift"` // "HH:MM - HH:MM"
}

type UnauthorizedAbsences struct {
	Count   int             `json:"count"`
	Details []AbsenceDetail `json:"details"`
}

// TardinessStats is the computed punctuality result for one employee over a
// query range. A shift occurrence appears in at most one detail list.
type TardinessStats struct {
	EmployeeID           string               `json:"employee_id"`
	EmployeeName         string               `json:"employee_name"`
	PeriodStart          time.Time            `json:"period_start"`
	PeriodEnd            time.Time            `json:"period_end"`
	LateArrivals         LateArrivals         `json:"late_arrivals"`
	UnauthorizedAbsences UnauthorizedAbsences `json:"unauthorized_absences"`
}

type ReportRequest struct {
	StartDate  string
	EndDate    string
	EmployeeID string // empty or "all" for everyone
}

func (r *ReportRequest) Validate() error {
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

type OvertimeReportResponse struct {
	Stats []OvertimeStats `json:"stats"`

	// DailyOvertimeTotals always carries all seven weekdays, zero-valued
	// when there is no data. Drives the weekday bar chart.
	DailyOvertimeTotals map[string]float64 `json:"daily_overtime_totals"`

	TotalOvertimeHours float64 `json:"total_overtime_hours"`
}

type TardinessReportResponse struct {
	Stats []TardinessStats `json:"stats"`

	TotalLateArrivals         int `json:"total_late_arrivals"`
	TotalUnauthorizedAbsences int `json:"total_unauthorized_absences"`
}
