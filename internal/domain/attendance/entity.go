package attendance

type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}

type Action string

const (
	ActionClockIn  Action = "clock-in"
	ActionClockOut Action = "clock-out"
)

// Attendance is one employee's record for one calendar day.
// (EmployeeID, Date) is the natural key.
type Attendance struct {
	EmployeeID string
	Date       string  // YYYY-MM-DD
	ClockIn    *string // HH:MM:SS
	ClockOut   *string // HH:MM:SS
	Status     Status
	IsLate     bool
	IsHalfDay  bool
}

// IsClockedIn reports whether the employee has an open session on this record.
func (a Attendance) IsClockedIn() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}
