package attendance

import (
	"strconv"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
}

type RecordAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Action     Action `json:"action"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employeeId", r.EmployeeID)
	errs.Required("action", string(r.Action))

	return errs.Err()
}

// UpsertAttendanceRequest is an administrator correction for one day.
type UpsertAttendanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clockIn"`
	ClockOut   *string `json:"clockOut"`
	Status     Status  `json:"status"`
	IsLate     *bool   `json:"isLate"`
	IsHalfDay  bool    `json:"isHalfDay"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employeeId", r.EmployeeID)

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	if r.ClockIn != nil && !validator.IsValidClockTime(*r.ClockIn) {
		errs.Add("clockIn", "clockIn must be in HH:MM:SS format")
	}
	if r.ClockOut != nil {
		if !validator.IsValidClockTime(*r.ClockOut) {
			errs.Add("clockOut", "clockOut must be in HH:MM:SS format")
		} else if r.ClockIn == nil {
			errs.Add("clockOut", "clockOut requires clockIn")
		}
	}

	if r.Status == "" {
		r.Status = StatusPresent
	}
	if !r.Status.IsValid() {
		errs.Add("status", "status must be one of: present, half-day, absent")
	}

	return errs.Err()
}

// ToAttendance builds the stored record. isLate is derived from clockIn
// unless the request sets it explicitly.
func (r UpsertAttendanceRequest) ToAttendance() Attendance {
	a := Attendance{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		ClockIn:    r.ClockIn,
		ClockOut:   r.ClockOut,
		Status:     r.Status,
		IsHalfDay:  r.IsHalfDay || r.Status == StatusHalfDay,
	}
	switch {
	case r.IsLate != nil:
		a.IsLate = *r.IsLate
	case r.ClockIn != nil:
		a.IsLate = IsLate(*r.ClockIn)
	}
	return a
}

type ReplaceAttendanceRequest struct {
	Attendance []UpsertAttendanceRequest `json:"attendance"`
}

func (r *ReplaceAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	seen := make(map[string]struct{}, len(r.Attendance))
	for i := range r.Attendance {
		item := &r.Attendance[i]
		prefix := "attendance[" + strconv.Itoa(i) + "]"
		if errs.Nest(prefix, item.Validate()) {
			continue
		}
		key := item.EmployeeID + "|" + item.Date
		if _, dup := seen[key]; dup {
			errs.Add(prefix+".date", "duplicate record for employeeId and date")
		}
		seen[key] = struct{}{}
	}
	return errs.Err()
}

// ========================================
// RESPONSES
// ========================================

type AttendanceResponse struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clockIn"`
	ClockOut   *string `json:"clockOut"`
	Status     Status  `json:"status"`
	IsLate     bool    `json:"isLate"`
	IsHalfDay  bool    `json:"isHalfDay"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		ClockIn:    a.ClockIn,
		ClockOut:   a.ClockOut,
		Status:     a.Status,
		IsLate:     a.IsLate,
		IsHalfDay:  a.IsHalfDay,
	}
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}

func NewListAttendanceResponse(records []Attendance) ListAttendanceResponse {
	resp := ListAttendanceResponse{Attendance: make([]AttendanceResponse, 0, len(records))}
	for _, a := range records {
		resp.Attendance = append(resp.Attendance, NewAttendanceResponse(a))
	}
	return resp
}

type AttendanceStatusResponse struct {
	EmployeeID  string              `json:"employeeId"`
	Date        string              `json:"date"`
	IsClockedIn bool                `json:"isClockedIn"`
	HoursWorked *float64            `json:"hoursWorked,omitempty"`
	Attendance  *AttendanceResponse `json:"attendance"`
}
