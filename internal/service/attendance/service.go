package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// getBusinessID extracts business_id from JWT claims
func (s *AttendanceServiceImpl) getBusinessID(ctx context.Context) (string, error) {
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

// BadgeIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BadgeIn(ctx context.Context, req attendance.BadgeRequest) (attendance.ClockRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, businessID); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenByEmployee(ctx, req.EmployeeID, businessID)
	if err != nil {
		return attendance.ClockRecordResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if open != nil {
		return attendance.ClockRecordResponse{}, attendance.ErrAlreadyBadgedIn
	}

	now := time.Now()
	created, err := s.attendanceRepo.Create(ctx, attendance.ClockRecord{
		BusinessID: businessID,
		EmployeeID: req.EmployeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		BadgeInAt:  now,
	})
	if err != nil {
		return attendance.ClockRecordResponse{}, fmt.Errorf("failed to create clock record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// BadgeOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BadgeOut(ctx context.Context, req attendance.BadgeRequest) (attendance.ClockRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenByEmployee(ctx, req.EmployeeID, businessID)
	if err != nil {
		return attendance.ClockRecordResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if open == nil {
		return attendance.ClockRecordResponse{}, attendance.ErrNotBadgedIn
	}

	now := time.Now()
	if err := s.attendanceRepo.SetBadgeOut(ctx, open.ID, now, businessID); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	open.BadgeOutAt = &now
	return attendance.ToResponse(*open), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListAttendanceRequest) (attendance.ListAttendanceResponse, error) {
	resp := attendance.ListAttendanceResponse{Records: []attendance.ClockRecordResponse{}}

	if err := req.Validate(); err != nil {
		return resp, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return resp, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if start.After(end) {
		return resp, nil
	}

	var records []attendance.ClockRecord
	if req.EmployeeID == "" || req.EmployeeID == "all" {
		records, err = s.attendanceRepo.ListByRange(ctx, start, end, businessID)
	} else {
		records, err = s.attendanceRepo.ListByEmployeeInRange(ctx, req.EmployeeID, start, end, businessID)
	}
	if err != nil {
		return resp, fmt.Errorf("failed to list clock records: %w", err)
	}

	for _, record := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(record))
	}
	return resp, nil
}
