package employee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Run("defaults designation", func(t *testing.T) {
		req := CreateEmployeeRequest{Name: " Jane ", UniqueLink: "jane", Password: "secret1", Email: "jane@example.com"}
		require.NoError(t, req.Validate())
		assert.Equal(t, DefaultDesignation, req.Designation)
		assert.Equal(t, "Jane", req.Name)
	})

	t.Run("reports every missing field", func(t *testing.T) {
		req := CreateEmployeeRequest{}
		err := req.Validate()
		require.Error(t, err)
		for _, field := range []string{"name", "uniqueLink", "password", "email"} {
			assert.Contains(t, err.Error(), field+" is required")
		}
	})

	t.Run("rejects unsafe link", func(t *testing.T) {
		req := CreateEmployeeRequest{Name: "Jane", UniqueLink: "jane doe", Password: "secret1", Email: "jane@example.com"}
		assert.Error(t, req.Validate())
	})
}

func TestReplaceEmployeesRequest_DuplicateLink(t *testing.T) {
	req := ReplaceEmployeesRequest{Employees: []CreateEmployeeRequest{
		{Name: "A", UniqueLink: "same", Password: "secret1", Email: "a@example.com"},
		{Name: "B", UniqueLink: "same", Password: "secret2", Email: "b@example.com"},
	}}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employees[1].uniqueLink")
}

func TestUpdateEmployee_IsEmpty(t *testing.T) {
	assert.True(t, UpdateEmployee{}.IsEmpty())
	name := "New"
	assert.False(t, UpdateEmployee{Name: &name}.IsEmpty())
}

func TestPasswordLength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "abc", true},
		{"minimum", "abcdef", false},
		{"bcrypt limit", strings.Repeat("p", 72), false},
		{"over bcrypt limit", strings.Repeat("p", 73), true},
		{"multibyte over limit", strings.Repeat("é", 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := CreateEmployeeRequest{Name: "Jane", UniqueLink: "jane", Password: tt.password, Email: "jane@example.com"}
			err := create.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "password")
			} else {
				assert.NoError(t, err)
			}

			password := tt.password
			update := UpdateEmployeeRequest{ID: "emp-1", Password: &password}
			assert.Equal(t, tt.wantErr, update.Validate() != nil)
		})
	}
}
