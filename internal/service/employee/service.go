package employee

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/contract"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	contractRepo contract.ContractRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, contractRepo contract.ContractRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		contractRepo: contractRepo,
	}
}

// getBusinessID extracts business_id from JWT claims
func (s *EmployeeServiceImpl) getBusinessID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", fmt.Errorf("business_id not found in claims")
	}
	return businessID, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		BusinessID:    businessID,
		Name:          req.Name,
		Email:         req.Email,
		Position:      req.Position,
		ContractHours: *req.ContractHours,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx, businessID)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{Employees: []employee.EmployeeResponse{}}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(e))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Position = req.Position
	existing.ContractHours = *req.ContractHours

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(existing), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id, businessID)
}

// AddContract implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return contract.ContractResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, businessID); err != nil {
		return contract.ContractResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	newContract := contract.Contract{
		BusinessID:    businessID,
		EmployeeID:    req.EmployeeID,
		Type:          contract.ContractType(req.Type),
		ContractHours: *req.ContractHours,
		StartDate:     startDate,
	}
	if req.EndDate != "" {
		endDate, _ := validator.IsValidDate(req.EndDate)
		newContract.EndDate = &endDate
	}

	created, err := s.contractRepo.Create(ctx, newContract)
	if err != nil {
		return contract.ContractResponse{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return contract.ToResponse(created), nil
}

// ListContracts implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListContracts(ctx context.Context, employeeID string) (contract.ListContractResponse, error) {
	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return contract.ListContractResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, businessID); err != nil {
		return contract.ListContractResponse{}, err
	}

	contracts, err := s.contractRepo.ListByEmployee(ctx, employeeID, businessID)
	if err != nil {
		return contract.ListContractResponse{}, fmt.Errorf("failed to list contracts: %w", err)
	}

	resp := contract.ListContractResponse{Contracts: []contract.ContractResponse{}}
	for _, c := range contracts {
		resp.Contracts = append(resp.Contracts, contract.ToResponse(c))
	}
	return resp, nil
}
