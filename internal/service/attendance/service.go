package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// maxRecordAttempts bounds read-transition-swap rounds per request.
const maxRecordAttempts = 2

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	now func() time.Time,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		now:            now,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewListAttendanceResponse(records), nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	today := attendance.FormatDate(s.now())
	return s.List(ctx, attendance.AttendanceFilter{Date: &today})
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	date := attendance.FormatDate(now)
	clock := attendance.FormatTime(now)

	for attempt := 1; attempt <= maxRecordAttempts; attempt++ {
		current, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance: %w", err)
		}

		next, err := attendance.Apply(req.Action, current, req.EmployeeID, date, clock)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		swapped, err := s.attendanceRepo.CompareAndSwap(ctx, current, next)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
		}
		if swapped {
			slog.Info("attendance recorded",
				"employee_id", req.EmployeeID,
				"date", date,
				"action", req.Action,
				"time", clock,
				"is_late", next.IsLate,
			)
			return attendance.NewAttendanceResponse(next), nil
		}

		slog.Warn("attendance changed concurrently, retrying",
			"employee_id", req.EmployeeID,
			"date", date,
			"action", req.Action,
			"attempt", attempt,
		)
	}

	return attendance.AttendanceResponse{}, attendance.ErrAttendanceConflict
}

// Upsert implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := req.ToAttendance()
	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return attendance.NewAttendanceResponse(record), nil
}

// GetStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStatus(ctx context.Context, employeeID string) (attendance.AttendanceStatusResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.AttendanceStatusResponse{}, validator.ValidationErrors{
			{Field: "employeeId", Message: "employeeId is required"},
		}
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceStatusResponse{}, err
	}

	today := attendance.FormatDate(s.now())
	current, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceStatusResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	resp := attendance.AttendanceStatusResponse{
		EmployeeID: employeeID,
		Date:       today,
	}
	if current == nil {
		return resp, nil
	}

	record := attendance.NewAttendanceResponse(*current)
	resp.Attendance = &record
	resp.IsClockedIn = current.IsClockedIn()
	if current.ClockIn != nil && current.ClockOut != nil {
		hours := attendance.CalculateHours(*current.ClockIn, *current.ClockOut)
		resp.HoursWorked = &hours
	}
	return resp, nil
}

// ReplaceAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReplaceAll(ctx context.Context, req attendance.ReplaceAttendanceRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	records := make([]attendance.Attendance, 0, len(req.Attendance))
	for _, item := range req.Attendance {
		records = append(records, item.ToAttendance())
	}

	if err := s.attendanceRepo.ReplaceAll(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to replace attendance: %w", err)
	}

	slog.Info("attendance replaced", "count", len(records))
	return len(records), nil
}

// MarkAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, date string) (int, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{Date: &date})
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	approved := leave.StatusApproved
	leaves, err := s.leaveRepo.List(ctx, leave.LeaveFilter{Status: &approved})
	if err != nil {
		return 0, fmt.Errorf("failed to list leaves: %w", err)
	}

	covered := make(map[string]struct{}, len(records)+len(leaves))
	for _, a := range records {
		covered[a.EmployeeID] = struct{}{}
	}
	for _, l := range leaves {
		if l.Date == date {
			covered[l.EmployeeID] = struct{}{}
		}
	}

	marked := 0
	for _, emp := range employees {
		if _, ok := covered[emp.ID]; ok {
			continue
		}
		absent := attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     attendance.StatusAbsent,
		}
		inserted, err := s.attendanceRepo.CompareAndSwap(ctx, nil, absent)
		if err != nil {
			return marked, fmt.Errorf("failed to mark employee %s absent: %w", emp.ID, err)
		}
		if inserted {
			marked++
		}
	}

	return marked, nil
}
