package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// Shift times arrive in two shapes depending on which client wrote them:
// 12-hour with an AM/PM suffix, or already 24-hour.
var (
	twelveHourRegex     = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	twentyFourHourRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NormalizeTime parses a time-of-day string into minutes since midnight.
// Accepts "h:mm AM/PM" (case-insensitive, hour 1-12, minute 0-59) and bare
// "H:mm"/"HH:mm" (components taken as-is). Returns false for anything else
// instead of an error so callers can degrade per-entry.
func NormalizeTime(s string) (int, bool) {
	t := strings.ToUpper(strings.TrimSpace(s))

	if m := twelveHourRegex.FindStringSubmatch(t); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours < 1 || hours > 12 || minutes > 59 {
			return 0, false
		}
		if m[3] == "PM" && hours != 12 {
			hours += 12
		} else if m[3] == "AM" && hours == 12 {
			// Midnight case: 12:xx AM becomes 00:xx
			hours = 0
		}
		return hours*60 + minutes, true
	}

	if m := twentyFourHourRegex.FindStringSubmatch(t); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes, true
	}

	return 0, false
}

// FormatMinutes renders minutes since midnight as a zero-padded "HH:MM" string.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Duration is the length of a shift split into whole hours and minutes.
type Duration struct {
	Hours   int
	Minutes int
}

// ComputeDuration calculates the duration between two time-of-day strings.
// A shift whose end is earlier than its start crosses midnight and gets a day
// added. Equal endpoints yield a zero duration. If either endpoint cannot be
// normalized the second return value is false.
func ComputeDuration(start, end string) (Duration, bool) {
	startMin, ok := NormalizeTime(start)
	if !ok {
		return Duration{}, false
	}
	endMin, ok := NormalizeTime(end)
	if !ok {
		return Duration{}, false
	}

	if endMin < startMin {
		endMin += MinutesPerDay
	}

	diff := endMin - startMin
	return Duration{Hours: diff / 60, Minutes: diff % 60}, true
}

// TotalHours returns the duration as a fractional hour count.
func (d Duration) TotalHours() float64 {
	return float64(d.Hours) + float64(d.Minutes)/60
}

// TotalMinutes returns the duration in whole minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// String renders the duration as "8h 30m", omitting zero components.
// A zero duration is "0m", never the empty string.
func (d Duration) String() string {
	var b strings.Builder
	if d.Hours > 0 {
		fmt.Fprintf(&b, "%dh", d.Hours)
	}
	if d.Minutes > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%dm", d.Minutes)
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}
