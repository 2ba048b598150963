package shift

import "context"

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error

	// Planning returns the shifts in range grouped per weekday,
	// each day's listing sorted chronologically by start time.
	Planning(ctx context.Context, req PlanningRequest) (PlanningResponse, error)
}
