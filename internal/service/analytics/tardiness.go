package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/timeutil"
)

// LateGraceMinutes is the tolerated delay before a clock-in counts as late.
// Zero: any positive delay is a late arrival.
const LateGraceMinutes = 0

// ComputeTardinessStats classifies every scheduled shift in range as on-time,
// late, or an unauthorized absence by matching it against clock records.
//
// asOf is "now" passed explicitly so the computation stays pure: a shift with
// no clock record only counts as an absence once its date has passed. A shift
// whose start time cannot be parsed is excluded from the lateness check but
// remains eligible for the absence check.
func ComputeTardinessStats(
	rangeStart, rangeEnd time.Time,
	employeeID string,
	asOf time.Time,
	shifts []shift.Shift,
	records []attendance.ClockRecord,
) []analytics.TardinessStats {
	stats := []analytics.TardinessStats{}
	if !validRange(rangeStart, rangeEnd) {
		return stats
	}

	inRange := shiftsInRange(shifts, rangeStart, rangeEnd, employeeID)
	firstBadge := firstBadgeByEmployeeDay(records)
	asOfKey := dateKey(asOf)

	byEmployee := make(map[string][]shift.Shift)
	for _, s := range inRange {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	for _, id := range distinctEmployeeIDs(inRange) {
		stat := analytics.TardinessStats{
			EmployeeID:   id,
			EmployeeName: employeeName(byEmployee[id]),
			PeriodStart:  rangeStart,
			PeriodEnd:    rangeEnd,
			LateArrivals: analytics.LateArrivals{
				Details: []analytics.LateArrivalDetail{},
			},
			UnauthorizedAbsences: analytics.UnauthorizedAbsences{
				Details: []analytics.AbsenceDetail{},
			},
		}

		for _, s := range byEmployee[id] {
			key := dateKey(s.Date)
			record, present := firstBadge[id+"|"+key]

			if !present {
				// Absence only once the scheduled day has passed.
				if key < asOfKey {
					stat.UnauthorizedAbsences.Details = append(stat.UnauthorizedAbsences.Details, analytics.AbsenceDetail{
						Date:           key,
						ScheduledShift: s.StartTime + " - " + s.EndTime,
					})
				}
				continue
			}

			startMin, ok := timeutil.NormalizeTime(s.StartTime)
			if !ok {
				continue
			}

			scheduledStart := time.Date(
				s.Date.Year(), s.Date.Month(), s.Date.Day(),
				startMin/60, startMin%60, 0, 0,
				record.BadgeInAt.Location(),
			)
			minutesLate := int(math.Round(record.BadgeInAt.Sub(scheduledStart).Minutes()))
			if minutesLate < 0 {
				minutesLate = 0
			}

			if minutesLate > LateGraceMinutes {
				stat.LateArrivals.TotalMinutesLate += minutesLate
				stat.LateArrivals.Details = append(stat.LateArrivals.Details, analytics.LateArrivalDetail{
					Date:           key,
					ScheduledStart: timeutil.FormatMinutes(startMin),
					MinutesLate:    minutesLate,
					Severity:       analytics.LatenessSeverity(minutesLate),
				})
			}
		}

		stat.LateArrivals.Count = len(stat.LateArrivals.Details)
		stat.UnauthorizedAbsences.Count = len(stat.UnauthorizedAbsences.Details)
		stats = append(stats, stat)
	}

	return stats
}

// firstBadgeByEmployeeDay indexes clock records by employee and calendar day,
// keeping the earliest clock-in when an employee badged more than once.
func firstBadgeByEmployeeDay(records []attendance.ClockRecord) map[string]attendance.ClockRecord {
	sorted := make([]attendance.ClockRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].BadgeInAt.Before(sorted[j].BadgeInAt)
	})

	index := make(map[string]attendance.ClockRecord, len(sorted))
	for _, r := range sorted {
		key := r.EmployeeID + "|" + dateKey(r.Date)
		if _, exists := index[key]; !exists {
			index[key] = r
		}
	}
	return index
}

// employeeName picks the display name joined onto the shift rows, if present.
func employeeName(shifts []shift.Shift) string {
	for _, s := range shifts {
		if s.EmployeeName != nil && *s.EmployeeName != "" {
			return *s.EmployeeName
		}
	}
	return ""
}
