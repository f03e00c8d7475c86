package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, now func() time.Time) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		now:          now,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return leave.ListLeaveResponse{}, leave.ErrInvalidLeaveStatus
	}

	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leave.NewListLeaveResponse(leaves), nil
}

// Create implements leave.LeaveService. New requests always start pending.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Type:        req.Type,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		RequestedAt: s.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("leave requested", "employee_id", created.EmployeeID, "date", created.Date, "type", created.Type)
	return leave.NewLeaveResponse(created), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	current, err := s.leaveRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if current.Status == req.Status {
		return leave.NewLeaveResponse(current), nil
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.EmployeeID, req.Date, req.Status)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("leave status updated", "employee_id", updated.EmployeeID, "date", updated.Date, "status", updated.Status)
	return leave.NewLeaveResponse(updated), nil
}

// ReplaceAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ReplaceAll(ctx context.Context, req leave.ReplaceLeavesRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	requestedAt := s.now().UTC().Truncate(time.Millisecond)
	leaves := make([]leave.Leave, 0, len(req.Leaves))
	for _, item := range req.Leaves {
		l := leave.Leave{
			EmployeeID:  item.EmployeeID,
			Date:        item.Date,
			Type:        item.Type,
			Reason:      item.Reason,
			Status:      item.Status,
			RequestedAt: requestedAt,
		}
		if item.RequestedAt != nil {
			l.RequestedAt = item.RequestedAt.UTC()
		}
		leaves = append(leaves, l)
	}

	if err := s.leaveRepo.ReplaceAll(ctx, leaves); err != nil {
		return 0, fmt.Errorf("failed to replace leaves: %w", err)
	}

	slog.Info("leaves replaced", "count", len(leaves))
	return len(leaves), nil
}
