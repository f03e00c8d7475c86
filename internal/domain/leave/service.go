package leave

import "context"

type LeaveService interface {
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	ReplaceAll(ctx context.Context, req ReplaceLeavesRequest) (int, error)
}
