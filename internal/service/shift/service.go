package shift

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/timeutil"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

// getBusinessID extracts business_id from JWT claims
func (s *ShiftServiceImpl) getBusinessID(ctx context.Context) (string, error) {
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

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, businessID); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	newShift := shift.Shift{
		BusinessID: businessID,
		EmployeeID: req.EmployeeID,
		Day:        req.Day,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Position:   req.Position,
	}

	if err := s.checkOverlap(ctx, newShift, ""); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, newShift)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.ToResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	found, err := s.shiftRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(found), nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	existing.Day = req.Day
	existing.Date = date
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.Position = req.Position

	if err := s.checkOverlap(ctx, existing, existing.ID); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(existing), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	businessID, err := s.getBusinessID(ctx)
	if err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id, businessID)
}

// Planning implements shift.ShiftService. Shifts in range are grouped per
// weekday in planning order, each day sorted chronologically by start time.
func (s *ShiftServiceImpl) Planning(ctx context.Context, req shift.PlanningRequest) (shift.PlanningResponse, error) {
	resp := shift.PlanningResponse{Days: []shift.DayPlanning{}}

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

	var shifts []shift.Shift
	if req.EmployeeID == "" || req.EmployeeID == "all" {
		shifts, err = s.shiftRepo.ListByRange(ctx, start, end, businessID)
	} else {
		shifts, err = s.shiftRepo.ListByEmployeeInRange(ctx, req.EmployeeID, start, end, businessID)
	}
	if err != nil {
		return resp, fmt.Errorf("failed to list shifts: %w", err)
	}

	byDay := make(map[string][]shift.Shift)
	for _, sh := range shifts {
		byDay[sh.Day] = append(byDay[sh.Day], sh)
	}

	for _, day := range shift.Weekdays {
		dayShifts := byDay[day]
		sort.SliceStable(dayShifts, func(i, j int) bool {
			mi, _ := timeutil.NormalizeTime(dayShifts[i].StartTime)
			mj, _ := timeutil.NormalizeTime(dayShifts[j].StartTime)
			return mi < mj
		})

		planning := shift.DayPlanning{Day: day, Shifts: []shift.ShiftResponse{}}
		for _, sh := range dayShifts {
			planning.Shifts = append(planning.Shifts, shift.ToResponse(sh))
		}
		resp.Days = append(resp.Days, planning)
	}

	return resp, nil
}

// checkOverlap rejects a shift whose time block intersects another shift of
// the same employee on the same date. excludeID skips the shift being updated.
func (s *ShiftServiceImpl) checkOverlap(ctx context.Context, candidate shift.Shift, excludeID string) error {
	existing, err := s.shiftRepo.ListByEmployeeInRange(ctx, candidate.EmployeeID, candidate.Date, candidate.Date, candidate.BusinessID)
	if err != nil {
		return fmt.Errorf("failed to list shifts for overlap check: %w", err)
	}

	candStart, candEnd, ok := shiftInterval(candidate)
	if !ok {
		return nil
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		otherStart, otherEnd, ok := shiftInterval(other)
		if !ok {
			continue
		}
		if candStart < otherEnd && otherStart < candEnd {
			return shift.ErrShiftOverlap
		}
	}
	return nil
}

// shiftInterval maps a shift onto minutes since its date's midnight, with an
// end past midnight extending beyond a day.
func shiftInterval(s shift.Shift) (start, end int, ok bool) {
	start, ok = timeutil.NormalizeTime(s.StartTime)
	if !ok {
		return 0, 0, false
	}
	d, ok := timeutil.ComputeDuration(s.StartTime, s.EndTime)
	if !ok {
		return 0, 0, false
	}
	return start, start + d.TotalMinutes(), true
}
