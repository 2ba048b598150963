package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
)

func badge(employeeID string, date time.Time, hour, minute int) attendance.ClockRecord {
	return attendance.ClockRecord{
		ID:         employeeID + "-" + date.Format("2006-01-02"),
		EmployeeID: employeeID,
		Date:       date,
		BadgeInAt:  time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC),
	}
}

func TestComputeTardinessStats_OnTimeAndEarly(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-1", Date: day("2025-06-03"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 9, 0),
		badge("emp-1", day("2025-06-03"), 8, 45),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].LateArrivals.Count)
	assert.Equal(t, 0, stats[0].LateArrivals.TotalMinutesLate)
	assert.Equal(t, 0, stats[0].UnauthorizedAbsences.Count)
}

func TestComputeTardinessStats_OneMinuteLateCounts(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 9, 1),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	require.Len(t, stats[0].LateArrivals.Details, 1)

	detail := stats[0].LateArrivals.Details[0]
	assert.Equal(t, "2025-06-02", detail.Date)
	assert.Equal(t, "09:00", detail.ScheduledStart)
	assert.Equal(t, 1, detail.MinutesLate)
	assert.Equal(t, analytics.SeverityLow, detail.Severity)
	assert.Equal(t, 1, stats[0].LateArrivals.TotalMinutesLate)
}

func TestComputeTardinessStats_SeverityTiers(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-1", Date: day("2025-06-03"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s3", EmployeeID: "emp-1", Date: day("2025-06-04"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 9, 10),
		badge("emp-1", day("2025-06-03"), 9, 30),
		badge("emp-1", day("2025-06-04"), 9, 31),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	details := stats[0].LateArrivals.Details
	require.Len(t, details, 3)
	assert.Equal(t, analytics.SeverityLow, details[0].Severity)
	assert.Equal(t, analytics.SeverityMedium, details[1].Severity)
	assert.Equal(t, analytics.SeverityHigh, details[2].Severity)
	assert.Equal(t, 71, stats[0].LateArrivals.TotalMinutesLate)
}

func TestComputeTardinessStats_AbsenceOnlyAfterDayPassed(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-1", Date: day("2025-06-04"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}

	// asOf falls on the second shift's day: only the first counts as missed.
	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-04"), shifts, nil)

	require.Len(t, stats, 1)
	require.Len(t, stats[0].UnauthorizedAbsences.Details, 1)
	assert.Equal(t, "2025-06-02", stats[0].UnauthorizedAbsences.Details[0].Date)
	assert.Equal(t, "9:00 AM - 5:00 PM", stats[0].UnauthorizedAbsences.Details[0].ScheduledShift)
	assert.Equal(t, 1, stats[0].UnauthorizedAbsences.Count)
}

func TestComputeTardinessStats_LateAndAbsentMutuallyExclusive(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-1", Date: day("2025-06-03"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 9, 45),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].LateArrivals.Count)
	assert.Equal(t, 1, stats[0].UnauthorizedAbsences.Count)
	assert.Equal(t, "2025-06-02", stats[0].LateArrivals.Details[0].Date)
	assert.Equal(t, "2025-06-03", stats[0].UnauthorizedAbsences.Details[0].Date)
}

func TestComputeTardinessStats_EarliestBadgeWins(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 10, 15),
		badge("emp-1", day("2025-06-02"), 9, 5),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	require.Len(t, stats[0].LateArrivals.Details, 1)
	assert.Equal(t, 5, stats[0].LateArrivals.Details[0].MinutesLate)
}

func TestComputeTardinessStats_UnparseableStartSkipsLatenessCheck(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "25:99 AM", EndTime: "5:00 PM"},
	}
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 9, 30),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].LateArrivals.Count)
	assert.Equal(t, 0, stats[0].UnauthorizedAbsences.Count)
}

func TestComputeTardinessStats_EmployeeFilterAndName(t *testing.T) {
	name := "Grace"
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-2", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM", EmployeeName: &name},
	}
	records := []attendance.ClockRecord{
		badge("emp-2", day("2025-06-02"), 9, 20),
	}

	stats := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "emp-2", day("2025-06-09"), shifts, records)

	require.Len(t, stats, 1)
	assert.Equal(t, "emp-2", stats[0].EmployeeID)
	assert.Equal(t, "Grace", stats[0].EmployeeName)
	assert.Equal(t, 1, stats[0].LateArrivals.Count)
}

func TestComputeTardinessStats_InvalidRange(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}

	stats := ComputeTardinessStats(day("2025-06-08"), day("2025-06-02"), "", day("2025-06-09"), shifts, nil)
	assert.Empty(t, stats)
}

func TestComputeTardinessStats_Deterministic(t *testing.T) {
	shifts := append(weekOfShifts("emp-2", "8:30 AM", "4:30 PM"), weekOfShifts("emp-1", "9:00 AM", "5:00 PM")...)
	records := []attendance.ClockRecord{
		badge("emp-1", day("2025-06-02"), 9, 12),
		badge("emp-2", day("2025-06-03"), 8, 30),
	}

	first := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-05"), shifts, records)
	second := ComputeTardinessStats(day("2025-06-02"), day("2025-06-08"), "", day("2025-06-05"), shifts, records)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "emp-1", first[0].EmployeeID)
	assert.Equal(t, "emp-2", first[1].EmployeeID)
}
