package leave

import "context"

type LeaveFilter struct {
	EmployeeID *string
	Status     *Status
}

type LeaveRepository interface {
	// List returns leaves matching every non-nil filter field, ordered by date.
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)

	// GetByEmployeeAndDate returns ErrLeaveNotFound when there is none.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Leave, error)

	// Create inserts the leave only if the key is free, else ErrLeaveAlreadyExists.
	Create(ctx context.Context, leave Leave) (Leave, error)

	// UpdateStatus returns ErrLeaveNotFound when there is no leave for the key.
	UpdateStatus(ctx context.Context, employeeID string, date string, status Status) (Leave, error)

	// ReplaceAll clears the collection and stores leaves as the complete set.
	ReplaceAll(ctx context.Context, leaves []Leave) error
}
