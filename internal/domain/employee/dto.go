package employee

import (
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Position      string   `json:"position"`
	ContractHours *float64 `json:"contract_hours"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Position      string   `json:"position"`
	ContractHours *float64 `json:"contract_hours"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:          r.Name,
		Email:         r.Email,
		Position:      r.Position,
		ContractHours: r.ContractHours,
	}
	return create.Validate()
}

type EmployeeResponse struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Position      string    `json:"position,omitempty"`
	ContractHours float64   `json:"contract_hours"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		BusinessID:    e.BusinessID,
		Name:          e.Name,
		Email:         e.Email,
		Position:      e.Position,
		ContractHours: e.ContractHours,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
