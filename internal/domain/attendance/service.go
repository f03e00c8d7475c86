package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// List retrieves attendance records filtered by employee and/or date
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListToday retrieves every record for the current day
	ListToday(ctx context.Context) (ListAttendanceResponse, error)

	// Record applies a clock-in or clock-out action for today
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)

	// Upsert stores an administrator correction keyed by employee and date
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)

	// GetStatus reports whether the employee is currently clocked in
	GetStatus(ctx context.Context, employeeID string) (AttendanceStatusResponse, error)

	// ReplaceAll replaces the whole attendance collection
	ReplaceAll(ctx context.Context, req ReplaceAttendanceRequest) (int, error)

	// MarkAbsent inserts an absent record on date for every employee with
	// neither an attendance record nor an approved leave that day. Existing
	// records are never overwritten. It returns the number inserted.
	MarkAbsent(ctx context.Context, date string) (int, error)
}
