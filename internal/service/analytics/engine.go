package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/timeutil"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
)

// FilterAll selects every employee in the data set.
const FilterAll = "all"

const dateLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// validRange reports whether [start, end] is a usable query range.
// An unusable range degrades to an empty result, never an error.
func validRange(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && !start.After(end)
}

// rangeDays counts calendar days in [start, end] inclusive.
func rangeDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func matchesEmployee(employeeID, filter string) bool {
	return filter == "" || filter == FilterAll || employeeID == filter
}

// shiftsInRange filters by civil date and employee, then sorts by date,
// start time, and ID so every computation over the slice is deterministic.
func shiftsInRange(shifts []shift.Shift, start, end time.Time, employeeID string) []shift.Shift {
	startKey, endKey := dateKey(start), dateKey(end)

	filtered := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		key := dateKey(s.Date)
		if key < startKey || key > endKey {
			continue
		}
		if !matchesEmployee(s.EmployeeID, employeeID) {
			continue
		}
		filtered = append(filtered, s)
	}

	sort.Slice(filtered, func(i, j int) bool {
		ki, kj := dateKey(filtered[i].Date), dateKey(filtered[j].Date)
		if ki != kj {
			return ki < kj
		}
		mi, _ := timeutil.NormalizeTime(filtered[i].StartTime)
		mj, _ := timeutil.NormalizeTime(filtered[j].StartTime)
		if mi != mj {
			return mi < mj
		}
		return filtered[i].ID < filtered[j].ID
	})

	return filtered
}

// distinctEmployeeIDs returns the sorted set of employee IDs present in shifts.
func distinctEmployeeIDs(shifts []shift.Shift) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, s := range shifts {
		if !seen[s.EmployeeID] {
			seen[s.EmployeeID] = true
			ids = append(ids, s.EmployeeID)
		}
	}
	sort.Strings(ids)
	return ids
}

// weekdayName resolves the weekly bucket for a shift: its Day field when
// valid, otherwise the weekday derived from its date.
func weekdayName(s shift.Shift) string {
	if validator.IsInSlice(s.Day, shift.Weekdays) {
		return s.Day
	}
	return s.Date.Weekday().String()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
