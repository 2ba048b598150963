package employee

import (
	"context"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/contract"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) (ListEmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error

	// AddContract files a new contract document for an employee
	AddContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error)

	// ListContracts returns all contract documents for an employee
	ListContracts(ctx context.Context, employeeID string) (contract.ListContractResponse, error)
}
