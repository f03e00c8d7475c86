package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in/out errors
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("please clock in first")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
	ErrInvalidAction     = errors.New("invalid action")

	// General errors
	ErrAttendanceConflict = errors.New("attendance record was modified concurrently")
)
