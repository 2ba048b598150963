package contract

import (
	"strings"
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	EmployeeID    string   `json:"employee_id"`
	Type          string   `json:"type"`
	ContractHours *float64 `json:"contract_hours"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date,omitempty"` // empty for open-ended
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, ContractTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(ContractTypeValues, ", "),
		})
	}
	if r.ContractHours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_hours",
			Message: "contract_hours is required",
		})
	}
	if r.ContractHours != nil && *r.ContractHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_hours",
			Message: "contract_hours must be a non-negative number",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.EndDate != "" {
		endDate, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startOK && endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ContractResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	Type          string    `json:"type"`
	ContractHours float64   `json:"contract_hours"`
	StartDate     string    `json:"start_date"`
	EndDate       *string   `json:"end_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(c Contract) ContractResponse {
	resp := ContractResponse{
		ID:            c.ID,
		EmployeeID:    c.EmployeeID,
		Type:          string(c.Type),
		ContractHours: c.ContractHours,
		StartDate:     c.StartDate.Format("2006-01-02"),
		CreatedAt:     c.CreatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

type ListContractResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}
