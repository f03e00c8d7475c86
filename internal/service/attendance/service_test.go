package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        attendance.AttendanceService
	attendance attendance.AttendanceRepository
	employees  employee.EmployeeRepository
	leaves     leave.LeaveRepository
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		attendance: memory.NewAttendanceRepository(store),
		employees:  memory.NewEmployeeRepository(store),
		leaves:     memory.NewLeaveRepository(store),
		now:        time.Date(2024, 3, 1, 8, 45, 10, 0, time.UTC),
	}
	f.svc = NewAttendanceService(f.attendance, f.employees, f.leaves, func() time.Time { return f.now })

	_, err := f.employees.Create(context.Background(), employee.Employee{ID: "emp-1", Name: "Jane", UniqueLink: "jane"})
	require.NoError(t, err)
	return f
}

func record(f *fixture, action attendance.Action) (attendance.AttendanceResponse, error) {
	return f.svc.Record(context.Background(), attendance.RecordAttendanceRequest{EmployeeID: "emp-1", Action: action})
}

func TestRecord_ClockInThenOut(t *testing.T) {
	f := newFixture(t)

	in, err := record(f, attendance.ActionClockIn)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", in.Date)
	require.NotNil(t, in.ClockIn)
	assert.Equal(t, "08:45:10", *in.ClockIn)
	assert.False(t, in.IsLate)
	assert.Equal(t, attendance.StatusPresent, in.Status)

	f.now = time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC)
	out, err := record(f, attendance.ActionClockOut)
	require.NoError(t, err)
	require.NotNil(t, out.ClockOut)
	assert.Equal(t, "17:30:00", *out.ClockOut)
	assert.Equal(t, "08:45:10", *out.ClockIn)

	_, err = record(f, attendance.ActionClockOut)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestRecord_DoubleClockInRejected(t *testing.T) {
	f := newFixture(t)

	_, err := record(f, attendance.ActionClockIn)
	require.NoError(t, err)

	_, err = record(f, attendance.ActionClockIn)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	date := "2024-03-01"
	list, err := f.svc.List(context.Background(), attendance.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Len(t, list.Attendance, 1)
}

func TestRecord_ClockOutWithoutClockIn(t *testing.T) {
	f := newFixture(t)

	_, err := record(f, attendance.ActionClockOut)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestRecord_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Record(ctx, attendance.RecordAttendanceRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = f.svc.Record(ctx, attendance.RecordAttendanceRequest{EmployeeID: "ghost", Action: attendance.ActionClockIn})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.svc.Record(ctx, attendance.RecordAttendanceRequest{EmployeeID: "emp-1", Action: "break"})
	assert.ErrorIs(t, err, attendance.ErrInvalidAction)
}

func TestRecord_LateArrival(t *testing.T) {
	f := newFixture(t)
	f.now = time.Date(2024, 3, 1, 9, 1, 0, 0, time.UTC)

	in, err := record(f, attendance.ActionClockIn)
	require.NoError(t, err)
	assert.True(t, in.IsLate)
}

// racingRepository lets another writer clock in between the service's read
// and its swap.
type racingRepository struct {
	attendance.AttendanceRepository
	once       sync.Once
	alwaysLose bool
}

func (r *racingRepository) CompareAndSwap(ctx context.Context, expected *attendance.Attendance, next attendance.Attendance) (bool, error) {
	if r.alwaysLose {
		return false, nil
	}
	r.once.Do(func() {
		competitor, _ := attendance.ClockIn(nil, next.EmployeeID, next.Date, "08:00:00")
		_, _ = r.AttendanceRepository.CompareAndSwap(ctx, nil, competitor)
	})
	return r.AttendanceRepository.CompareAndSwap(ctx, expected, next)
}

func TestRecord_LostRaceSurfacesBusinessError(t *testing.T) {
	f := newFixture(t)
	racing := &racingRepository{AttendanceRepository: f.attendance}
	svc := NewAttendanceService(racing, f.employees, f.leaves, func() time.Time { return f.now })

	_, err := svc.Record(context.Background(), attendance.RecordAttendanceRequest{EmployeeID: "emp-1", Action: attendance.ActionClockIn})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	stored, err := f.attendance.GetByEmployeeAndDate(context.Background(), "emp-1", "2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "08:00:00", *stored.ClockIn, "winner's record is kept")
}

func TestRecord_ConflictAfterRetry(t *testing.T) {
	f := newFixture(t)
	svc := NewAttendanceService(&racingRepository{AttendanceRepository: f.attendance, alwaysLose: true}, f.employees, f.leaves, func() time.Time { return f.now })

	_, err := svc.Record(context.Background(), attendance.RecordAttendanceRequest{EmployeeID: "emp-1", Action: attendance.ActionClockIn})
	assert.ErrorIs(t, err, attendance.ErrAttendanceConflict)
}

func TestRecord_ConcurrentClockInsHaveOneWinner(t *testing.T) {
	f := newFixture(t)

	const requests = 16
	var wg sync.WaitGroup
	errs := make([]error, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = record(f, attendance.ActionClockIn)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	}
	assert.Equal(t, 1, succeeded)
}

func TestUpsert_ReplacesExistingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := record(f, attendance.ActionClockIn)
	require.NoError(t, err)

	resp, err := f.svc.Upsert(ctx, attendance.UpsertAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-01",
		Status:     attendance.StatusHalfDay,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsHalfDay)

	emp := "emp-1"
	list, err := f.svc.List(ctx, attendance.AttendanceFilter{EmployeeID: &emp})
	require.NoError(t, err)
	require.Len(t, list.Attendance, 1)
	assert.Equal(t, attendance.StatusHalfDay, list.Attendance[0].Status)
	assert.Nil(t, list.Attendance[0].ClockIn)

	_, err = f.svc.Upsert(ctx, attendance.UpsertAttendanceRequest{EmployeeID: "ghost", Date: "2024-03-01"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	status, err := f.svc.GetStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.False(t, status.IsClockedIn)
	assert.Nil(t, status.Attendance)

	f.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err = record(f, attendance.ActionClockIn)
	require.NoError(t, err)

	status, err = f.svc.GetStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.True(t, status.IsClockedIn)
	assert.Nil(t, status.HoursWorked)

	f.now = time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC)
	_, err = record(f, attendance.ActionClockOut)
	require.NoError(t, err)

	status, err = f.svc.GetStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.False(t, status.IsClockedIn)
	require.NotNil(t, status.HoursWorked)
	assert.Equal(t, 8.5, *status.HoursWorked)

	_, err = f.svc.GetStatus(ctx, "")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = f.svc.GetStatus(ctx, "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.attendance.Upsert(ctx, attendance.Attendance{EmployeeID: "emp-1", Date: "2024-02-29", Status: attendance.StatusPresent}))
	_, err := record(f, attendance.ActionClockIn)
	require.NoError(t, err)

	today, err := f.svc.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, today.Attendance, 1)
	assert.Equal(t, "2024-03-01", today.Attendance[0].Date)
}

func TestMarkAbsent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, e := range []employee.Employee{
		{ID: "emp-2", Name: "Present", UniqueLink: "present"},
		{ID: "emp-3", Name: "On Leave", UniqueLink: "leave"},
		{ID: "emp-4", Name: "Pending Leave", UniqueLink: "pending"},
	} {
		_, err := f.employees.Create(ctx, e)
		require.NoError(t, err)
	}

	require.NoError(t, f.attendance.Upsert(ctx, attendance.Attendance{EmployeeID: "emp-2", Date: "2024-02-29", Status: attendance.StatusPresent}))
	_, err := f.leaves.Create(ctx, leave.Leave{EmployeeID: "emp-3", Date: "2024-02-29", Type: leave.TypeFullDay, Status: leave.StatusApproved})
	require.NoError(t, err)
	_, err = f.leaves.Create(ctx, leave.Leave{EmployeeID: "emp-4", Date: "2024-02-29", Type: leave.TypeFullDay, Status: leave.StatusPending})
	require.NoError(t, err)

	marked, err := f.svc.MarkAbsent(ctx, "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	for _, id := range []string{"emp-1", "emp-4"} {
		a, err := f.attendance.GetByEmployeeAndDate(ctx, id, "2024-02-29")
		require.NoError(t, err)
		require.NotNil(t, a, id)
		assert.Equal(t, attendance.StatusAbsent, a.Status)
	}

	a, err := f.attendance.GetByEmployeeAndDate(ctx, "emp-3", "2024-02-29")
	require.NoError(t, err)
	assert.Nil(t, a)

	marked, err = f.svc.MarkAbsent(ctx, "2024-02-29")
	require.NoError(t, err)
	assert.Zero(t, marked, "second sweep inserts nothing")
}

func TestReplaceAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := record(f, attendance.ActionClockIn)
	require.NoError(t, err)

	count, err := f.svc.ReplaceAll(ctx, attendance.ReplaceAttendanceRequest{Attendance: []attendance.UpsertAttendanceRequest{
		{EmployeeID: "emp-1", Date: "2024-01-02", Status: attendance.StatusAbsent},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	list, err := f.svc.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, list.Attendance, 1)
	assert.Equal(t, "2024-01-02", list.Attendance[0].Date)
}
