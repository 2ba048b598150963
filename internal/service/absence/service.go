package absence

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/absence"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type AbsenceServiceImpl struct {
	absenceRepo  absence.AbsenceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAbsenceService(absenceRepo absence.AbsenceRepository, employeeRepo employee.EmployeeRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
	}
}

// getBusinessID extracts business_id from JWT claims
func (s *AbsenceServiceImpl) getBusinessID(ctx context.Context) (string, error) {
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

// Create implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, businessID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.absenceRepo.Create(ctx, absence.AbsenceRequest{
		BusinessID: businessID,
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     absence.StatusPending,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence request: %w", err)
	}

	return absence.ToResponse(created), nil
}

// Decide implements absence.AbsenceService. Only pending requests can be
// decided; a second decision is rejected.
func (s *AbsenceServiceImpl) Decide(ctx context.Context, id string, req absence.DecideAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	existing, err := s.absenceRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	if existing.Status != absence.StatusPending {
		return absence.AbsenceResponse{}, absence.ErrAlreadyDecided
	}

	status := absence.Status(req.Status)
	if err := s.absenceRepo.UpdateStatus(ctx, id, status, businessID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	existing.Status = status
	return absence.ToResponse(existing), nil
}

// List implements absence.AbsenceService.
func (s *AbsenceServiceImpl) List(ctx context.Context, status string) (absence.ListAbsenceResponse, error) {
	resp := absence.ListAbsenceResponse{Requests: []absence.AbsenceResponse{}}

	if status != "" && !validator.IsInSlice(status, absence.StatusValues) {
		return resp, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: pending, approved, declined",
		}}
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return resp, err
	}

	requests, err := s.absenceRepo.List(ctx, status, businessID)
	if err != nil {
		return resp, fmt.Errorf("failed to list absence requests: %w", err)
	}

	for _, a := range requests {
		resp.Requests = append(resp.Requests, absence.ToResponse(a))
	}
	return resp, nil
}

// ListByEmployee implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) (absence.ListAbsenceResponse, error) {
	resp := absence.ListAbsenceResponse{Requests: []absence.AbsenceResponse{}}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return resp, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, businessID); err != nil {
		return resp, err
	}

	requests, err := s.absenceRepo.ListByEmployee(ctx, employeeID, businessID)
	if err != nil {
		return resp, fmt.Errorf("failed to list absence requests: %w", err)
	}

	for _, a := range requests {
		resp.Requests = append(resp.Requests, absence.ToResponse(a))
	}
	return resp, nil
}
