package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/absence"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/contract"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

type AnalyticsServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	contractRepo   contract.ContractRepository
	shiftRepo      shift.ShiftRepository
	attendanceRepo attendance.AttendanceRepository
	absenceRepo    absence.AbsenceRepository
	logger         *slog.Logger
}

func NewAnalyticsService(
	employeeRepo employee.EmployeeRepository,
	contractRepo contract.ContractRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	absenceRepo absence.AbsenceRepository,
	logger *slog.Logger,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		employeeRepo:   employeeRepo,
		contractRepo:   contractRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		absenceRepo:    absenceRepo,
		logger:         logger,
	}
}

// getBusinessID extracts business_id from JWT claims
func (s *AnalyticsServiceImpl) getBusinessID(ctx context.Context) (string, error) {
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

// OvertimeReport fetches employees and shifts for the range in parallel,
// overrides contracted hours with the active contract where one exists, and
// runs the overtime computation.
func (s *AnalyticsServiceImpl) OvertimeReport(ctx context.Context, req analytics.ReportRequest) (analytics.OvertimeReportResponse, error) {
	resp := analytics.OvertimeReportResponse{
		Stats:               []analytics.OvertimeStats{},
		DailyOvertimeTotals: CalculateDailyOvertimeTotals(nil),
	}

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
		// Inverted range degrades to an empty result; the caller owns
		// the user-facing message.
		return resp, nil
	}

	var (
		employees []employee.Employee
		shifts    []shift.Shift
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		shifts, err = s.listShifts(gCtx, req.EmployeeID, start, end, businessID)
		return err
	})

	if err := g.Wait(); err != nil {
		return resp, err
	}

	employees = s.applyActiveContracts(ctx, employees, end, businessID)

	stats, skipped := ComputeOvertimeStats(start, end, req.EmployeeID, shifts, employees)
	if skipped > 0 {
		s.logger.Warn("shifts reference unknown employees, excluded from overtime stats",
			slog.Int("skipped", skipped),
			slog.String("business_id", businessID),
		)
	}
	for _, stat := range stats {
		if stat.InvalidShifts > 0 {
			s.logger.Warn("shifts with unparseable times contributed zero worked hours",
				slog.Int("invalid_shifts", stat.InvalidShifts),
				slog.String("employee_id", stat.EmployeeID),
			)
		}
	}

	resp.Stats = stats
	resp.DailyOvertimeTotals = CalculateDailyOvertimeTotals(stats)
	resp.TotalOvertimeHours = TotalOvertimeHours(stats)
	return resp, nil
}

// TardinessReport fetches scheduled shifts and clock records for the range in
// parallel and runs the tardiness computation against the current time.
func (s *AnalyticsServiceImpl) TardinessReport(ctx context.Context, req analytics.ReportRequest) (analytics.TardinessReportResponse, error) {
	resp := analytics.TardinessReportResponse{
		Stats: []analytics.TardinessStats{},
	}

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

	var (
		shifts   []shift.Shift
		records  []attendance.ClockRecord
		approved []absence.AbsenceRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		shifts, err = s.listShifts(gCtx, req.EmployeeID, start, end, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.listRecords(gCtx, req.EmployeeID, start, end, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = s.absenceRepo.List(gCtx, string(absence.StatusApproved), businessID)
		return err
	})

	if err := g.Wait(); err != nil {
		return resp, err
	}

	// An approved absence authorizes the missed shift, so those days never
	// show up as unauthorized absences.
	shifts = dropAuthorizedAbsences(shifts, approved)

	stats := ComputeTardinessStats(start, end, req.EmployeeID, time.Now(), shifts, records)

	resp.Stats = stats
	resp.TotalLateArrivals = TotalLateArrivals(stats)
	resp.TotalUnauthorizedAbsences = TotalUnauthorizedAbsences(stats)
	return resp, nil
}

func (s *AnalyticsServiceImpl) listShifts(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]shift.Shift, error) {
	if employeeID == "" || employeeID == FilterAll {
		return s.shiftRepo.ListByRange(ctx, start, end, businessID)
	}
	return s.shiftRepo.ListByEmployeeInRange(ctx, employeeID, start, end, businessID)
}

func (s *AnalyticsServiceImpl) listRecords(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]attendance.ClockRecord, error) {
	if employeeID == "" || employeeID == FilterAll {
		return s.attendanceRepo.ListByRange(ctx, start, end, businessID)
	}
	return s.attendanceRepo.ListByEmployeeInRange(ctx, employeeID, start, end, businessID)
}

// dropAuthorizedAbsences filters out shifts whose date falls inside an
// approved absence request of the same employee.
func dropAuthorizedAbsences(shifts []shift.Shift, approved []absence.AbsenceRequest) []shift.Shift {
	if len(approved) == 0 {
		return shifts
	}

	kept := make([]shift.Shift, 0, len(shifts))
	for _, sh := range shifts {
		authorized := false
		for _, a := range approved {
			if a.EmployeeID != sh.EmployeeID {
				continue
			}
			key := dateKey(sh.Date)
			if key >= dateKey(a.StartDate) && key <= dateKey(a.EndDate) {
				authorized = true
				break
			}
		}
		if !authorized {
			kept = append(kept, sh)
		}
	}
	return kept
}

// applyActiveContracts overrides each employee's weekly baseline with the
// contract active at the end of the period, when one exists. The contract
// active at period end decides the contracted hours for the whole range.
func (s *AnalyticsServiceImpl) applyActiveContracts(ctx context.Context, employees []employee.Employee, on time.Time, businessID string) []employee.Employee {
	for i, emp := range employees {
		active, err := s.contractRepo.GetActiveByEmployee(ctx, emp.ID, on, businessID)
		if err != nil {
			s.logger.Warn("failed to resolve active contract, falling back to employee record",
				slog.String("employee_id", emp.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if active != nil {
			employees[i].ContractHours = active.ContractHours
		}
	}
	return employees
}
