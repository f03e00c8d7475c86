package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) (ListEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, req ReplaceEmployeesRequest) (int, error)
}
