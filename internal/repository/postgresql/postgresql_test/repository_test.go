package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	jane := employee.Employee{
		ID: "0190f1a2-0000-7000-8000-000000000001", Name: "Jane", UniqueLink: "jane",
		PasswordHash: "hash", Email: "jane@example.com", Designation: "Engineer",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	created, err := repo.Create(ctx, jane)
	require.NoError(t, err)
	assert.Equal(t, jane.UniqueLink, created.UniqueLink)

	dup := jane
	dup.ID = "0190f1a2-0000-7000-8000-000000000002"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrUniqueLinkExists)

	sameID := jane
	sameID.UniqueLink = "mallory"
	_, err = repo.Create(ctx, sameID)
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	byLink, err := repo.GetByUniqueLink(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, jane.ID, byLink.ID)

	name := "Jane Doe"
	updated, err := repo.Update(ctx, jane.ID, employee.UpdateEmployee{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "Engineer", updated.Designation)

	_, err = repo.Update(ctx, "missing", employee.UpdateEmployee{Name: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, repo.Delete(ctx, jane.ID))
	assert.ErrorIs(t, repo.Delete(ctx, jane.ID), employee.ErrEmployeeNotFound)
	_, err = repo.GetByID(ctx, jane.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, repo.ReplaceAll(ctx, []employee.Employee{jane, {
		ID: "0190f1a2-0000-7000-8000-000000000003", Name: "Adam", UniqueLink: "adam",
		PasswordHash: "hash", Email: "adam@example.com", Designation: "Employee", CreatedAt: jane.CreatedAt,
	}}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Adam", all[0].Name)
}

func TestAttendanceRepository_CompareAndSwap(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	first, err := attendance.ClockIn(nil, "emp-1", "2024-03-01", "08:55:00")
	require.NoError(t, err)

	ok, err := repo.CompareAndSwap(ctx, nil, first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompareAndSwap(ctx, nil, first)
	require.NoError(t, err)
	assert.False(t, ok, "insert-if-absent must not overwrite")

	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-1", "2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, stored)

	out, err := attendance.ClockOut(stored, "17:00:00")
	require.NoError(t, err)

	stale := *stored
	stale.ClockIn = strPtr("07:00:00")
	ok, err = repo.CompareAndSwap(ctx, &stale, out)
	require.NoError(t, err)
	assert.False(t, ok, "stale expectation must lose")

	ok, err = repo.CompareAndSwap(ctx, stored, out)
	require.NoError(t, err)
	assert.True(t, ok)

	missing, err := repo.GetByEmployeeAndDate(ctx, "emp-1", "2024-03-02")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttendanceRepository_ConcurrentInsertHasOneWinner(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	record, err := attendance.ClockIn(nil, "emp-1", "2024-03-01", "08:55:00")
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.CompareAndSwap(ctx, nil, record)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestAttendanceRepository_UpsertAndList(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	a := attendance.Attendance{EmployeeID: "emp-1", Date: "2024-03-01", Status: attendance.StatusAbsent}
	require.NoError(t, repo.Upsert(ctx, a))
	a.Status = attendance.StatusHalfDay
	a.IsHalfDay = true
	require.NoError(t, repo.Upsert(ctx, a))
	require.NoError(t, repo.Upsert(ctx, attendance.Attendance{EmployeeID: "emp-2", Date: "2024-03-01", Status: attendance.StatusPresent}))

	emp := "emp-1"
	got, err := repo.List(ctx, attendance.AttendanceFilter{EmployeeID: &emp})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, attendance.StatusHalfDay, got[0].Status)

	date := "2024-03-01"
	got, err = repo.List(ctx, attendance.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLeaveRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewLeaveRepository(setup.DB)
	ctx := context.Background()

	l := leave.Leave{
		EmployeeID: "emp-1", Date: "2024-03-04", Type: leave.TypeFullDay,
		Reason: "trip", Status: leave.StatusPending, RequestedAt: time.Now().UTC(),
	}
	_, err := repo.Create(ctx, l)
	require.NoError(t, err)

	_, err = repo.Create(ctx, l)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyExists)

	updated, err := repo.UpdateStatus(ctx, "emp-1", "2024-03-04", leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)

	_, err = repo.UpdateStatus(ctx, "emp-1", "2024-03-05", leave.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	approved := leave.StatusApproved
	got, err := repo.List(ctx, leave.LeaveFilter{Status: &approved})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	got, err = repo.List(ctx, leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
