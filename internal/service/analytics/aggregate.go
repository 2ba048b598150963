package analytics

import (
	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
)

// CalculateDailyOvertimeTotals sums overtime hours per weekday across all
// stats. Every weekday is present in the result, zero-valued when no data
// fell on it, so chart consumers never see missing buckets.
func CalculateDailyOvertimeTotals(stats []analytics.OvertimeStats) map[string]float64 {
	totals := make(map[string]float64, len(shift.Weekdays))
	for _, day := range shift.Weekdays {
		totals[day] = 0
	}

	for _, stat := range stats {
		for _, day := range shift.Weekdays {
			for _, entry := range stat.DailyBreakdown[day] {
				totals[day] += entry.Overtime
			}
		}
	}

	for day, total := range totals {
		totals[day] = round2(total)
	}
	return totals
}

// TotalOvertimeHours sums overtime across all stats.
func TotalOvertimeHours(stats []analytics.OvertimeStats) float64 {
	var total float64
	for _, stat := range stats {
		total += stat.OvertimeHours
	}
	return round2(total)
}

// TotalLateArrivals sums late-arrival counts across all stats.
func TotalLateArrivals(stats []analytics.TardinessStats) int {
	total := 0
	for _, stat := range stats {
		total += stat.LateArrivals.Count
	}
	return total
}

// TotalUnauthorizedAbsences sums absence counts across all stats.
func TotalUnauthorizedAbsences(stats []analytics.TardinessStats) int {
	total := 0
	for _, stat := range stats {
		total += stat.UnauthorizedAbsences.Count
	}
	return total
}
