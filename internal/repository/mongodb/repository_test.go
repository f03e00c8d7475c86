package mongodb_test

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/mongodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMongo(t *testing.T) *database.MongoDB {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewMongoDB(ctx, uri, "attendance_test_"+strconv.FormatInt(time.Now().UnixNano(), 36))
	require.NoError(t, err)
	require.NoError(t, db.EnsureIndexes(ctx))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewEmployeeRepository(db)
	ctx := context.Background()

	jane := employee.Employee{ID: "e1", Name: "Jane", UniqueLink: "jane", PasswordHash: "h", Email: "jane@example.com", Designation: "Employee"}
	_, err := repo.Create(ctx, jane)
	require.NoError(t, err)

	dup := jane
	dup.ID = "e2"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrUniqueLinkExists)

	sameID := jane
	sameID.UniqueLink = "mallory"
	_, err = repo.Create(ctx, sameID)
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	designation := "Lead"
	updated, err := repo.Update(ctx, "e1", employee.UpdateEmployee{Designation: &designation})
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Designation)
	assert.Equal(t, "Jane", updated.Name)

	_, err = repo.GetByUniqueLink(ctx, "nobody")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, repo.Delete(ctx, "e1"))
	assert.ErrorIs(t, repo.Delete(ctx, "e1"), employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ReplaceAllRollsBack(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewEmployeeRepository(db)
	ctx := context.Background()

	jane := employee.Employee{ID: "e1", Name: "Jane", UniqueLink: "jane", PasswordHash: "h", Email: "jane@example.com", Designation: "Employee"}
	require.NoError(t, repo.ReplaceAll(ctx, []employee.Employee{jane}))

	bob := employee.Employee{ID: "e2", Name: "Bob", UniqueLink: "bob", PasswordHash: "h", Email: "bob@example.com", Designation: "Employee"}
	clash := bob
	clash.ID = "e3"
	require.Error(t, repo.ReplaceAll(ctx, []employee.Employee{bob, clash}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "e1", list[0].ID)
}

func TestAttendanceRepository_CompareAndSwap(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewAttendanceRepository(db)
	ctx := context.Background()

	first, err := attendance.ClockIn(nil, "emp-1", "2024-03-01", "09:05:00")
	require.NoError(t, err)

	ok, err := repo.CompareAndSwap(ctx, nil, first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompareAndSwap(ctx, nil, first)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-1", "2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsLate)

	out, err := attendance.ClockOut(stored, "17:00:00")
	require.NoError(t, err)

	ok, err = repo.CompareAndSwap(ctx, stored, out)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompareAndSwap(ctx, stored, out)
	require.NoError(t, err)
	assert.False(t, ok, "clockOut no longer null")
}

func TestLeaveRepository(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewLeaveRepository(db)
	ctx := context.Background()

	l := leave.Leave{EmployeeID: "emp-1", Date: "2024-03-04", Type: leave.TypeHalfDay, Reason: "x", Status: leave.StatusPending, RequestedAt: time.Now().UTC()}
	_, err := repo.Create(ctx, l)
	require.NoError(t, err)
	_, err = repo.Create(ctx, l)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyExists)

	updated, err := repo.UpdateStatus(ctx, "emp-1", "2024-03-04", leave.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, updated.Status)

	_, err = repo.UpdateStatus(ctx, "emp-2", "2024-03-04", leave.StatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	require.NoError(t, repo.ReplaceAll(ctx, []leave.Leave{l}))
	all, err := repo.List(ctx, leave.LeaveFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, leave.StatusPending, all[0].Status)
}
