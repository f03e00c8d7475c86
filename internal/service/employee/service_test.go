package employee

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() (employee.EmployeeService, employee.EmployeeRepository) {
	repo := memory.NewEmployeeRepository(memory.NewStore())
	now := func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return NewEmployeeService(repo, now), repo
}

func validCreateRequest(link string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "Jane Doe",
		UniqueLink: link,
		Password:   "password123",
		Email:      "jane@example.com",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	resp, err := svc.Create(ctx, validCreateRequest("jane"))
	require.NoError(t, err)

	parsed, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, employee.DefaultDesignation, resp.Designation)

	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestEmployeeService_Create_DuplicateLink(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, validCreateRequest("jane"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest("jane"))
	assert.ErrorIs(t, err, employee.ErrUniqueLinkExists)
}

func TestEmployeeService_Create_DuplicateID(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	first, err := svc.Create(ctx, validCreateRequest("alice"))
	require.NoError(t, err)

	second := validCreateRequest("mallory")
	second.ID = first.ID
	second.Name = "Mallory"
	_, err = svc.Create(ctx, second)
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.UniqueLink)
}

func TestEmployeeService_Create_PasswordTooLong(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest("jane")
	req.Password = strings.Repeat("p", 80)
	_, err := svc.Create(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "password")
}

func TestEmployeeService_Create_MissingFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uniqueLink is required")
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Create(ctx, validCreateRequest("jane"))
	require.NoError(t, err)

	designation := "Manager"
	password := "new-password"
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Designation: &designation, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "Manager", updated.Designation)
	assert.Equal(t, "Jane Doe", updated.Name)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")))

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID})
	assert.ErrorIs(t, err, employee.ErrNoFieldsToUpdate)

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "missing", Designation: &designation})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, validCreateRequest("jane"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), employee.ErrEmployeeNotFound)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, validCreateRequest("old"))
	require.NoError(t, err)

	a := validCreateRequest("adam")
	a.Name = "Adam"
	a.ID = "fixed-id"
	count, err := svc.ReplaceAll(ctx, employee.ReplaceEmployeesRequest{Employees: []employee.CreateEmployeeRequest{a, validCreateRequest("jane")}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Employees, 2)
	assert.Equal(t, "fixed-id", list.Employees[0].ID)
	assert.Equal(t, "jane", list.Employees[1].UniqueLink)
}
