package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrLeaveAlreadyExists = errors.New("leave request already exists for this date")
	ErrInvalidLeaveStatus = errors.New("status must be one of: approved, rejected, pending")
)
