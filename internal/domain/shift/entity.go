package shift

import "time"

// Weekdays in planning order, Monday first.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Shift is one scheduled work block. Day groups it into the weekly planning
// grid; Date pins the occurrence to a calendar day for range queries.
type Shift struct {
	ID         string
	BusinessID string
	EmployeeID string
	Day        string
	Date       time.Time
	StartTime  string // "h:mm AM/PM" or "HH:mm"
	EndTime    string
	Position   string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
