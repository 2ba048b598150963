package analytics

import (
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/timeutil"
)

// ComputeOvertimeStats derives contracted-vs-worked statistics for every
// employee with shifts in [rangeStart, rangeEnd], or for a single employee
// when employeeID is not empty/"all".
//
// Contracted hours for the range are the weekly ContractHours pro-rated by
// rangeDays/7. Shifts whose times cannot be parsed contribute zero worked
// hours and are flagged on the stat's InvalidShifts counter. Shifts whose
// employee is missing from employees are excluded; the second return value
// counts them so the caller can log the data-integrity problem.
//
// The function is pure: identical inputs yield identical output, results
// sorted by employee ID.
func ComputeOvertimeStats(
	rangeStart, rangeEnd time.Time,
	employeeID string,
	shifts []shift.Shift,
	employees []employee.Employee,
) ([]analytics.OvertimeStats, int) {
	stats := []analytics.OvertimeStats{}
	if !validRange(rangeStart, rangeEnd) {
		return stats, 0
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	inRange := shiftsInRange(shifts, rangeStart, rangeEnd, employeeID)

	skipped := 0
	byEmployee := make(map[string][]shift.Shift)
	for _, s := range inRange {
		if _, known := byID[s.EmployeeID]; !known {
			skipped++
			continue
		}
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	weeks := float64(rangeDays(rangeStart, rangeEnd)) / 7

	for _, id := range distinctEmployeeIDs(inRange) {
		emp, known := byID[id]
		if !known {
			continue
		}

		stat := computeEmployeeOvertime(emp, byEmployee[id], weeks)
		stat.PeriodStart = rangeStart
		stat.PeriodEnd = rangeEnd
		stats = append(stats, stat)
	}

	return stats, skipped
}

func computeEmployeeOvertime(emp employee.Employee, shifts []shift.Shift, weeks float64) analytics.OvertimeStats {
	stat := analytics.OvertimeStats{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		DailyBreakdown: make(map[string][]analytics.DailyBreakdownEntry),
	}

	// Daily pro-rata of the weekly baseline, used for per-entry scheduled
	// hours. Zero when the employee has no contracted hours.
	dailyScheduled := emp.ContractHours / 7

	var workedHours float64
	for _, s := range shifts {
		var worked float64
		if d, ok := timeutil.ComputeDuration(s.StartTime, s.EndTime); ok {
			worked = d.TotalHours()
		} else {
			stat.InvalidShifts++
		}
		workedHours += worked

		overtime := worked - dailyScheduled
		if overtime < 0 {
			overtime = 0
		}

		day := weekdayName(s)
		stat.DailyBreakdown[day] = append(stat.DailyBreakdown[day], analytics.DailyBreakdownEntry{
			Date:      s.Date.Format(dateLayout),
			Scheduled: round2(dailyScheduled),
			Worked:    round2(worked),
			Overtime:  round2(overtime),
		})
	}

	contracted := emp.ContractHours * weeks
	overtime := workedHours - contracted
	if overtime < 0 {
		overtime = 0
	}

	stat.ContractedHours = round2(contracted)
	stat.WorkedHours = round2(workedHours)
	stat.OvertimeHours = round2(overtime)
	stat.Severity = analytics.OvertimeSeverity(stat.OvertimeHours)
	return stat
}
