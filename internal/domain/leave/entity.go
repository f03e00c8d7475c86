package leave

import "time"

type Type string

const (
	TypeFullDay Type = "full-day"
	TypeHalfDay Type = "half-day"
)

func (t Type) IsValid() bool {
	return t == TypeFullDay || t == TypeHalfDay
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Leave is a leave request for one day, keyed by (EmployeeID, Date).
type Leave struct {
	EmployeeID  string
	Date        string // YYYY-MM-DD
	Type        Type
	Reason      string
	Status      Status
	RequestedAt time.Time
}
