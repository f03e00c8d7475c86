package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Records are keyed by (employeeID, date).
type AttendanceRepository interface {
	// List returns records matching every non-nil filter field, ordered by date then employee.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Upsert inserts the record or replaces the one stored under the same key.
	Upsert(ctx context.Context, attendance Attendance) error

	// CompareAndSwap writes next only if the stored record still matches expected.
	// A nil expected means "insert only if no record exists for the key".
	// It reports false when another writer got there first.
	CompareAndSwap(ctx context.Context, expected *Attendance, next Attendance) (bool, error)

	// ReplaceAll clears the collection and stores records as the complete set.
	ReplaceAll(ctx context.Context, records []Attendance) error
}
