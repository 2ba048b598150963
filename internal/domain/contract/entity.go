package contract

import "time"

type ContractType string

const (
	ContractFullTime  ContractType = "full-time"
	ContractPartTime  ContractType = "part-time"
	ContractTemporary ContractType = "temporary"
)

var ContractTypeValues = []string{
	string(ContractFullTime),
	string(ContractPartTime),
	string(ContractTemporary),
}

type Contract struct {
	ID            string
	BusinessID    string
	EmployeeID    string
	Type          ContractType
	ContractHours float64
	StartDate     time.Time
	EndDate       *time.Time // nil for open-ended contracts
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ActiveOn reports whether the contract covers the given date.
func (c Contract) ActiveOn(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	if c.StartDate.After(date) {
		return false
	}
	if c.EndDate != nil && c.EndDate.Before(day) {
		return false
	}
	return true
}
