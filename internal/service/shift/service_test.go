package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
)

func testContext(businessID string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"business_id": businessID,
		"type":        "access",
	})
	if err != nil {
		panic(err)
	}
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeShiftRepo struct {
	shifts []shift.Shift
	nextID int
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.nextID++
	s.ID = fmt.Sprintf("shift-%d", f.nextID)
	f.shifts = append(f.shifts, s)
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string, businessID string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id && s.BusinessID == businessID {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) Update(ctx context.Context, updated shift.Shift) error {
	for i, s := range f.shifts {
		if s.ID == updated.ID && s.BusinessID == updated.BusinessID {
			f.shifts[i] = updated
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string, businessID string) error {
	for i, s := range f.shifts {
		if s.ID == id && s.BusinessID == businessID {
			f.shifts = append(f.shifts[:i], f.shifts[i+1:]...)
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) ListByRange(ctx context.Context, start, end time.Time, businessID string) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.BusinessID == businessID && !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time, businessID string) ([]shift.Shift, error) {
	all, _ := f.ListByRange(ctx, start, end, businessID)
	var out []shift.Shift
	for _, s := range all {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, businessID string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.BusinessID != businessID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, businessID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.BusinessID == businessID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, businessID string) error {
	return nil
}

func newTestService() (shift.ShiftService, *fakeShiftRepo) {
	shiftRepo := &fakeShiftRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", BusinessID: "biz-1", Name: "Ada"},
	}}
	return NewShiftService(shiftRepo, employeeRepo), shiftRepo
}

func TestCreateShift(t *testing.T) {
	svc, _ := newTestService()
	ctx := testContext("biz-1")

	created, err := svc.Create(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Day:        "Monday",
		Date:       "2025-06-02",
		StartTime:  "9:00 AM",
		EndTime:    "5:00 PM",
		Position:   "Bar",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, "8h", created.Duration)
}

func TestCreateShift_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := testContext("biz-1")

	_, err := svc.Create(ctx, shift.CreateShiftRequest{
		EmployeeID: "ghost",
		Day:        "Monday",
		Date:       "2025-06-02",
		StartTime:  "9:00 AM",
		EndTime:    "5:00 PM",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateShift_OverlapRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := testContext("biz-1")

	_, err := svc.Create(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Day:        "Monday",
		Date:       "2025-06-02",
		StartTime:  "9:00 AM",
		EndTime:    "5:00 PM",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Day:        "Monday",
		Date:       "2025-06-02",
		StartTime:  "4:00 PM",
		EndTime:    "8:00 PM",
	})
	assert.ErrorIs(t, err, shift.ErrShiftOverlap)
}

func TestCreateShift_BackToBackAllowed(t *testing.T) {
	svc, _ := newTestService()
	ctx := testContext("biz-1")

	_, err := svc.Create(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Day:        "Monday",
		Date:       "2025-06-02",
		StartTime:  "9:00 AM",
		EndTime:    "5:00 PM",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Day:        "Monday",
		Date:       "2025-06-02",
		StartTime:  "5:00 PM",
		EndTime:    "9:00 PM",
	})
	assert.NoError(t, err)
}

func TestPlanning_GroupsAndSortsChronologically(t *testing.T) {
	svc, _ := newTestService()
	ctx := testContext("biz-1")

	for _, req := range []shift.CreateShiftRequest{
		{EmployeeID: "emp-1", Day: "Monday", Date: "2025-06-02", StartTime: "2:00 PM", EndTime: "8:00 PM"},
		{EmployeeID: "emp-1", Day: "Monday", Date: "2025-06-02", StartTime: "9:00 AM", EndTime: "1:00 PM"},
		{EmployeeID: "emp-1", Day: "Wednesday", Date: "2025-06-04", StartTime: "10:00 AM", EndTime: "4:00 PM"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	planning, err := svc.Planning(ctx, shift.PlanningRequest{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-08",
	})
	require.NoError(t, err)

	require.Len(t, planning.Days, 7)
	assert.Equal(t, "Monday", planning.Days[0].Day)

	monday := planning.Days[0].Shifts
	require.Len(t, monday, 2)
	assert.Equal(t, "9:00 AM", monday[0].StartTime)
	assert.Equal(t, "2:00 PM", monday[1].StartTime)

	assert.Equal(t, "Wednesday", planning.Days[2].Day)
	require.Len(t, planning.Days[2].Shifts, 1)

	assert.Empty(t, planning.Days[1].Shifts)
}

func TestPlanning_InvertedRangeEmpty(t *testing.T) {
	svc, _ := newTestService()
	ctx := testContext("biz-1")

	planning, err := svc.Planning(ctx, shift.PlanningRequest{
		StartDate: "2025-06-08",
		EndDate:   "2025-06-02",
	})
	require.NoError(t, err)
	assert.Empty(t, planning.Days)
}
