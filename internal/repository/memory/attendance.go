package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	s *Store
}

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{s: s}
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, a := range r.s.attendance {
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		records = append(records, cloneAttendance(a))
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})
	return records, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.attendance[dayKey{employeeID, date}]
	if !ok {
		return nil, nil
	}
	a = cloneAttendance(a)
	return &a, nil
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.attendance[dayKey{a.EmployeeID, a.Date}] = cloneAttendance(a)
	return nil
}

func (r *attendanceRepositoryImpl) CompareAndSwap(ctx context.Context, expected *attendance.Attendance, next attendance.Attendance) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey{next.EmployeeID, next.Date}
	current, exists := r.s.attendance[key]
	switch {
	case expected == nil && exists:
		return false, nil
	case expected != nil && !exists:
		return false, nil
	case expected != nil && (!equalString(current.ClockIn, expected.ClockIn) || !equalString(current.ClockOut, expected.ClockOut)):
		return false, nil
	}
	r.s.attendance[key] = cloneAttendance(next)
	return true, nil
}

func (r *attendanceRepositoryImpl) ReplaceAll(ctx context.Context, records []attendance.Attendance) error {
	next := make(map[dayKey]attendance.Attendance, len(records))
	for _, a := range records {
		next[dayKey{a.EmployeeID, a.Date}] = cloneAttendance(a)
	}

	r.s.mu.Lock()
	r.s.attendance = next
	r.s.mu.Unlock()
	return nil
}
