package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

const (
	minPasswordLength = 6
	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72
)

func validatePassword(errs *validator.ValidationErrors, password string) {
	switch {
	case len(password) < minPasswordLength:
		errs.Add("password", "password must be at least "+strconv.Itoa(minPasswordLength)+" characters")
	case len(password) > maxPasswordBytes:
		errs.Add("password", "password must be at most "+strconv.Itoa(maxPasswordBytes)+" bytes")
	}
}

type CreateEmployeeRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	UniqueLink  string `json:"uniqueLink"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.UniqueLink = strings.TrimSpace(r.UniqueLink)
	r.Email = strings.TrimSpace(r.Email)
	r.Designation = strings.TrimSpace(r.Designation)

	errs.Required("name", r.Name)

	if validator.IsEmpty(r.UniqueLink) {
		errs.Add("uniqueLink", "uniqueLink is required")
	} else if !validator.IsValidSlug(r.UniqueLink) {
		errs.Add("uniqueLink", "uniqueLink may only contain letters, digits, '.', '_', '~' and '-'")
	}

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else {
		validatePassword(&errs, r.Password)
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if r.Designation == "" {
		r.Designation = DefaultDesignation
	}

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Password    *string `json:"password,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "invalid email format")
	}
	if r.Designation != nil && validator.IsEmpty(*r.Designation) {
		errs.Add("designation", "designation must not be empty")
	}
	if r.Password != nil {
		validatePassword(&errs, *r.Password)
	}

	return errs.Err()
}

type ReplaceEmployeesRequest struct {
	Employees []CreateEmployeeRequest `json:"employees"`
}

func (r *ReplaceEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors
	links := make(map[string]struct{}, len(r.Employees))
	ids := make(map[string]struct{}, len(r.Employees))
	for i := range r.Employees {
		item := &r.Employees[i]
		prefix := "employees[" + strconv.Itoa(i) + "]"
		if errs.Nest(prefix, item.Validate()) {
			continue
		}
		if _, dup := links[item.UniqueLink]; dup {
			errs.Add(prefix+".uniqueLink", "duplicate uniqueLink")
		}
		links[item.UniqueLink] = struct{}{}
		if item.ID != "" {
			if _, dup := ids[item.ID]; dup {
				errs.Add(prefix+".id", "duplicate id")
			}
			ids[item.ID] = struct{}{}
		}
	}
	return errs.Err()
}

type EmployeeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UniqueLink  string    `json:"uniqueLink"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		UniqueLink:  e.UniqueLink,
		Email:       e.Email,
		Designation: e.Designation,
		CreatedAt:   e.CreatedAt,
	}
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

func NewListEmployeeResponse(employees []Employee) ListEmployeeResponse {
	resp := ListEmployeeResponse{Employees: make([]EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, NewEmployeeResponse(e))
	}
	return resp
}
