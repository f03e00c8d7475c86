// Package memory keeps employees, attendance and leaves in process memory.
// It backs the "memory" storage driver and the service and handler tests.
package memory

import (
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

type dayKey struct {
	employeeID string
	date       string
}

// Store holds the three collections behind one lock.
type Store struct {
	mu         sync.RWMutex
	employees  map[string]employee.Employee
	attendance map[dayKey]attendance.Attendance
	leaves     map[dayKey]leave.Leave
}

func NewStore() *Store {
	return &Store{
		employees:  make(map[string]employee.Employee),
		attendance: make(map[dayKey]attendance.Attendance),
		leaves:     make(map[dayKey]leave.Leave),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneAttendance(a attendance.Attendance) attendance.Attendance {
	a.ClockIn = cloneString(a.ClockIn)
	a.ClockOut = cloneString(a.ClockOut)
	return a
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
