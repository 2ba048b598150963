package employee

import "time"

type Employee struct {
	ID         string
	BusinessID string
	Name       string
	Email      string
	Position   string
	// ContractHours is the agreed weekly working-hours baseline. The active
	// contract document, when one exists, takes precedence over this value.
	ContractHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
