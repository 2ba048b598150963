package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
)

func TestCalculateDailyOvertimeTotals_EmptyInput(t *testing.T) {
	totals := CalculateDailyOvertimeTotals(nil)

	require.Len(t, totals, 7)
	for _, name := range shift.Weekdays {
		assert.Equal(t, 0.0, totals[name], name)
	}
}

func TestCalculateDailyOvertimeTotals_SumsAcrossEmployees(t *testing.T) {
	stats := []analytics.OvertimeStats{
		{
			EmployeeID: "emp-1",
			DailyBreakdown: map[string][]analytics.DailyBreakdownEntry{
				"Monday":  {{Overtime: 1.5}, {Overtime: 0.5}},
				"Tuesday": {{Overtime: 2}},
			},
		},
		{
			EmployeeID: "emp-2",
			DailyBreakdown: map[string][]analytics.DailyBreakdownEntry{
				"Monday": {{Overtime: 1.25}},
			},
		},
	}

	totals := CalculateDailyOvertimeTotals(stats)

	require.Len(t, totals, 7)
	assert.Equal(t, 3.25, totals["Monday"])
	assert.Equal(t, 2.0, totals["Tuesday"])
	assert.Equal(t, 0.0, totals["Wednesday"])
	assert.Equal(t, 0.0, totals["Sunday"])
}

func TestCalculateDailyOvertimeTotals_FromComputedStats(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 0},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "11:00 AM"},
		{ID: "s2", EmployeeID: "emp-1", Day: "Friday", Date: day("2025-06-06"), StartTime: "9:00 AM", EndTime: "12:30 PM"},
	}

	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)
	totals := CalculateDailyOvertimeTotals(stats)

	assert.Equal(t, 2.0, totals["Monday"])
	assert.Equal(t, 3.5, totals["Friday"])
	assert.Equal(t, 0.0, totals["Wednesday"])
}

func TestTotalOvertimeHours(t *testing.T) {
	stats := []analytics.OvertimeStats{
		{OvertimeHours: 4.25},
		{OvertimeHours: 1.1},
	}

	assert.Equal(t, 5.35, TotalOvertimeHours(stats))
	assert.Equal(t, 0.0, TotalOvertimeHours(nil))
}

func TestTardinessTotals(t *testing.T) {
	stats := []analytics.TardinessStats{
		{
			LateArrivals:         analytics.LateArrivals{Count: 2},
			UnauthorizedAbsences: analytics.UnauthorizedAbsences{Count: 1},
		},
		{
			LateArrivals:         analytics.LateArrivals{Count: 1},
			UnauthorizedAbsences: analytics.UnauthorizedAbsences{Count: 3},
		},
	}

	assert.Equal(t, 3, TotalLateArrivals(stats))
	assert.Equal(t, 4, TotalUnauthorizedAbsences(stats))
	assert.Equal(t, 0, TotalLateArrivals(nil))
	assert.Equal(t, 0, TotalUnauthorizedAbsences(nil))
}
