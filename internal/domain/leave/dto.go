package leave

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Type       Type   `json:"type"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employeeId", r.EmployeeID)

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	if r.Type == "" {
		errs.Add("type", "type is required")
	} else if !r.Type.IsValid() {
		errs.Add("type", "type must be one of: full-day, half-day")
	}

	errs.Required("reason", r.Reason)

	return errs.Err()
}

type UpdateLeaveStatusRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"-"`
	Status     Status `json:"status"`
}

// Validate checks the status first so an unknown value is reported as
// ErrInvalidLeaveStatus rather than a field error. A path date that does
// not parse cannot name any leave, so it yields ErrLeaveNotFound.
func (r *UpdateLeaveStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return ErrInvalidLeaveStatus
	}

	var errs validator.ValidationErrors
	errs.Required("employeeId", r.EmployeeID)
	if err := errs.Err(); err != nil {
		return err
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return ErrLeaveNotFound
	}
	return nil
}

// ReplaceLeaveItem is one entry of a bulk replace; status and requestedAt
// are preserved as given.
type ReplaceLeaveItem struct {
	CreateLeaveRequest
	Status      Status     `json:"status"`
	RequestedAt *time.Time `json:"requestedAt"`
}

type ReplaceLeavesRequest struct {
	Leaves []ReplaceLeaveItem `json:"leaves"`
}

func (r *ReplaceLeavesRequest) Validate() error {
	var errs validator.ValidationErrors
	seen := make(map[string]struct{}, len(r.Leaves))
	for i := range r.Leaves {
		item := &r.Leaves[i]
		prefix := "leaves[" + strconv.Itoa(i) + "]"
		if errs.Nest(prefix, item.CreateLeaveRequest.Validate()) {
			continue
		}
		if item.Status == "" {
			item.Status = StatusPending
		}
		if !item.Status.IsValid() {
			errs.Add(prefix+".status", ErrInvalidLeaveStatus.Error())
		}
		key := item.EmployeeID + "|" + item.Date
		if _, dup := seen[key]; dup {
			errs.Add(prefix+".date", "duplicate leave for employeeId and date")
		}
		seen[key] = struct{}{}
	}
	return errs.Err()
}

type LeaveResponse struct {
	EmployeeID  string    `json:"employeeId"`
	Date        string    `json:"date"`
	Type        Type      `json:"type"`
	Reason      string    `json:"reason"`
	Status      Status    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		EmployeeID:  l.EmployeeID,
		Date:        l.Date,
		Type:        l.Type,
		Reason:      l.Reason,
		Status:      l.Status,
		RequestedAt: l.RequestedAt,
	}
}

type ListLeaveResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
}

func NewListLeaveResponse(leaves []Leave) ListLeaveResponse {
	resp := ListLeaveResponse{Leaves: make([]LeaveResponse, 0, len(leaves))}
	for _, l := range leaves {
		resp.Leaves = append(resp.Leaves, NewLeaveResponse(l))
	}
	return resp
}
