package employee

import "context"

type EmployeeRepository interface {
	// List returns every employee ordered by name.
	List(ctx context.Context) ([]Employee, error)

	// GetByID returns ErrEmployeeNotFound when no employee has id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUniqueLink returns ErrEmployeeNotFound when the link is unknown.
	GetByUniqueLink(ctx context.Context, uniqueLink string) (Employee, error)

	// Create returns ErrEmployeeIDExists when the id is taken and
	// ErrUniqueLinkExists when the link is taken.
	Create(ctx context.Context, employee Employee) (Employee, error)

	// Update applies the non-nil fields and returns the stored result.
	Update(ctx context.Context, id string, update UpdateEmployee) (Employee, error)

	Delete(ctx context.Context, id string) error

	// ReplaceAll clears the collection and stores employees as the complete set.
	ReplaceAll(ctx context.Context, employees []Employee) error
}
