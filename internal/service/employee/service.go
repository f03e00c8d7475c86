package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, now func() time.Time) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          now,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// newEmployee turns a validated request into an entity with a fresh id
// when none was supplied.
func (s *EmployeeServiceImpl) newEmployee(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	id := req.ID
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
		}
		id = generated.String()
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return employee.Employee{}, err
	}

	return employee.Employee{
		ID:           id,
		Name:         req.Name,
		UniqueLink:   req.UniqueLink,
		PasswordHash: hash,
		Email:        req.Email,
		Designation:  req.Designation,
		CreatedAt:    s.now().UTC(),
	}, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.NewListEmployeeResponse(employees), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee, err := s.newEmployee(req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "unique_link", created.UniqueLink)
	return employee.NewEmployeeResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	update := employee.UpdateEmployee{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		update.PasswordHash = &hash
	}
	if update.IsEmpty() {
		return employee.EmployeeResponse{}, employee.ErrNoFieldsToUpdate
	}

	updated, err := s.employeeRepo.Update(ctx, req.ID, update)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// ReplaceAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ReplaceAll(ctx context.Context, req employee.ReplaceEmployeesRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	employees := make([]employee.Employee, 0, len(req.Employees))
	for _, item := range req.Employees {
		e, err := s.newEmployee(item)
		if err != nil {
			return 0, err
		}
		employees = append(employees, e)
	}

	if err := s.employeeRepo.ReplaceAll(ctx, employees); err != nil {
		return 0, fmt.Errorf("failed to replace employees: %w", err)
	}

	slog.Info("employees replaced", "count", len(employees))
	return len(employees), nil
}
