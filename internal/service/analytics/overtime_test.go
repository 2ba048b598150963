package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// weekOfShifts schedules one shift per day of the ISO week starting Monday
// 2025-06-02, using the given daily start and end times.
func weekOfShifts(employeeID, start, end string) []shift.Shift {
	shifts := make([]shift.Shift, 0, 7)
	for i, name := range shift.Weekdays {
		shifts = append(shifts, shift.Shift{
			ID:         employeeID + "-" + name,
			EmployeeID: employeeID,
			Day:        name,
			Date:       day("2025-06-02").AddDate(0, 0, i),
			StartTime:  start,
			EndTime:    end,
		})
	}
	return shifts
}

func TestComputeOvertimeStats_FullWeek(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
	}
	// 8h48m per day over 7 days is 61.6 worked hours.
	shifts := weekOfShifts("emp-1", "9:00 AM", "5:48 PM")

	stats, skipped := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 0, skipped)

	stat := stats[0]
	assert.Equal(t, "emp-1", stat.EmployeeID)
	assert.Equal(t, "Ada", stat.EmployeeName)
	assert.Equal(t, 40.0, stat.ContractedHours)
	assert.Equal(t, 61.6, stat.WorkedHours)
	assert.Equal(t, 21.6, stat.OvertimeHours)
	assert.Equal(t, analytics.SeverityHigh, stat.Severity)
	assert.Equal(t, 0, stat.InvalidShifts)

	for _, name := range shift.Weekdays {
		require.Len(t, stat.DailyBreakdown[name], 1, name)
		entry := stat.DailyBreakdown[name][0]
		assert.Equal(t, 5.71, entry.Scheduled)
		assert.Equal(t, 8.8, entry.Worked)
		assert.Equal(t, 3.09, entry.Overtime)
	}
}

func TestComputeOvertimeStats_FortyHourContractWeek(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
	}
	// Five 8h weekday shifts plus a 4h Saturday shift: 44 worked hours.
	var shifts []shift.Shift
	for i := 0; i < 5; i++ {
		shifts = append(shifts, shift.Shift{
			ID:         string(rune('a' + i)),
			EmployeeID: "emp-1",
			Day:        shift.Weekdays[i],
			Date:       day("2025-06-02").AddDate(0, 0, i),
			StartTime:  "9:00 AM",
			EndTime:    "5:00 PM",
		})
	}
	shifts = append(shifts, shift.Shift{
		ID:         "sat",
		EmployeeID: "emp-1",
		Day:        "Saturday",
		Date:       day("2025-06-07"),
		StartTime:  "10:00 AM",
		EndTime:    "2:00 PM",
	})

	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 40.0, stats[0].ContractedHours)
	assert.Equal(t, 44.0, stats[0].WorkedHours)
	assert.Equal(t, 4.0, stats[0].OvertimeHours)
	assert.Equal(t, analytics.SeverityLow, stats[0].Severity)
}

func TestComputeOvertimeStats_NoOvertimeClampedToZero(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "1:00 PM"},
	}

	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 4.0, stats[0].WorkedHours)
	assert.Equal(t, 0.0, stats[0].OvertimeHours)
	assert.Equal(t, analytics.SeverityNone, stats[0].Severity)
}

func TestComputeOvertimeStats_MidnightCrossing(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 0},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Friday", Date: day("2025-06-06"), StartTime: "10:00 PM", EndTime: "6:00 AM"},
	}

	stats, _ := ComputeOvertimeStats(day("2025-06-06"), day("2025-06-06"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 8.0, stats[0].WorkedHours)
}

func TestComputeOvertimeStats_InvalidTimesFlagged(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 0},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "25:99 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-1", Day: "Tuesday", Date: day("2025-06-03"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}

	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].InvalidShifts)
	assert.Equal(t, 8.0, stats[0].WorkedHours)

	// The invalid occurrence still appears in the breakdown, with zero hours.
	require.Len(t, stats[0].DailyBreakdown["Monday"], 1)
	assert.Equal(t, 0.0, stats[0].DailyBreakdown["Monday"][0].Worked)
}

func TestComputeOvertimeStats_UnknownEmployeeSkipped(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "ghost", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}

	stats, skipped := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, "emp-1", stats[0].EmployeeID)
	assert.Equal(t, 1, skipped)
}

func TestComputeOvertimeStats_EmployeeFilter(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
		{ID: "emp-2", Name: "Grace", ContractHours: 40},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-2", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}

	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "emp-2", shifts, employees)
	require.Len(t, stats, 1)
	assert.Equal(t, "emp-2", stats[0].EmployeeID)

	all, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), FilterAll, shifts, employees)
	require.Len(t, all, 2)
	assert.Equal(t, "emp-1", all[0].EmployeeID)
	assert.Equal(t, "emp-2", all[1].EmployeeID)
}

func TestComputeOvertimeStats_ShiftsOutsideRangeExcluded(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 0},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Sunday", Date: day("2025-06-01"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s2", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
		{ID: "s3", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-09"), StartTime: "9:00 AM", EndTime: "5:00 PM"},
	}

	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 8.0, stats[0].WorkedHours)
}

func TestComputeOvertimeStats_InvalidRange(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
	}
	shifts := weekOfShifts("emp-1", "9:00 AM", "5:00 PM")

	stats, skipped := ComputeOvertimeStats(day("2025-06-08"), day("2025-06-02"), "", shifts, employees)
	assert.Empty(t, stats)
	assert.Equal(t, 0, skipped)

	stats, _ = ComputeOvertimeStats(time.Time{}, day("2025-06-08"), "", shifts, employees)
	assert.Empty(t, stats)
}

func TestComputeOvertimeStats_Deterministic(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-2", Name: "Grace", ContractHours: 35},
		{ID: "emp-1", Name: "Ada", ContractHours: 40},
	}
	shifts := append(weekOfShifts("emp-2", "8:30 AM", "6:15 PM"), weekOfShifts("emp-1", "9:00 AM", "5:48 PM")...)

	first, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)
	second, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-08"), "", shifts, employees)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "emp-1", first[0].EmployeeID)
	assert.Equal(t, "emp-2", first[1].EmployeeID)
}

func TestComputeOvertimeStats_ProRatedContract(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Name: "Ada", ContractHours: 35},
	}
	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "emp-1", Day: "Monday", Date: day("2025-06-02"), StartTime: "9:00 AM", EndTime: "7:00 PM"},
	}

	// Two-day range pro-rates the 35h weekly baseline to 10h.
	stats, _ := ComputeOvertimeStats(day("2025-06-02"), day("2025-06-03"), "", shifts, employees)

	require.Len(t, stats, 1)
	assert.Equal(t, 10.0, stats[0].ContractedHours)
	assert.Equal(t, 10.0, stats[0].WorkedHours)
	assert.Equal(t, 0.0, stats[0].OvertimeHours)
}
