package business

import "time"

// Business is the tenant. Every record in the system is scoped under one.
type Business struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
