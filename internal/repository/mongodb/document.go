package mongodb

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

type employeeDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	UniqueLink   string    `bson:"uniqueLink"`
	PasswordHash string    `bson:"passwordHash"`
	Email        string    `bson:"email"`
	Designation  string    `bson:"designation"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func newEmployeeDocument(e employee.Employee) employeeDocument {
	return employeeDocument{
		ID:           e.ID,
		Name:         e.Name,
		UniqueLink:   e.UniqueLink,
		PasswordHash: e.PasswordHash,
		Email:        e.Email,
		Designation:  e.Designation,
		CreatedAt:    e.CreatedAt,
	}
}

func (d employeeDocument) toEntity() employee.Employee {
	return employee.Employee{
		ID:           d.ID,
		Name:         d.Name,
		UniqueLink:   d.UniqueLink,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		Designation:  d.Designation,
		CreatedAt:    d.CreatedAt,
	}
}

type attendanceDocument struct {
	EmployeeID string  `bson:"employeeId"`
	Date       string  `bson:"date"`
	ClockIn    *string `bson:"clockIn"`
	ClockOut   *string `bson:"clockOut"`
	Status     string  `bson:"status"`
	IsLate     bool    `bson:"isLate"`
	IsHalfDay  bool    `bson:"isHalfDay"`
}

func newAttendanceDocument(a attendance.Attendance) attendanceDocument {
	return attendanceDocument{
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		ClockIn:    a.ClockIn,
		ClockOut:   a.ClockOut,
		Status:     string(a.Status),
		IsLate:     a.IsLate,
		IsHalfDay:  a.IsHalfDay,
	}
}

func (d attendanceDocument) toEntity() attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		ClockIn:    d.ClockIn,
		ClockOut:   d.ClockOut,
		Status:     attendance.Status(d.Status),
		IsLate:     d.IsLate,
		IsHalfDay:  d.IsHalfDay,
	}
}

type leaveDocument struct {
	EmployeeID  string    `bson:"employeeId"`
	Date        string    `bson:"date"`
	Type        string    `bson:"type"`
	Reason      string    `bson:"reason"`
	Status      string    `bson:"status"`
	RequestedAt time.Time `bson:"requestedAt"`
}

func newLeaveDocument(l leave.Leave) leaveDocument {
	return leaveDocument{
		EmployeeID:  l.EmployeeID,
		Date:        l.Date,
		Type:        string(l.Type),
		Reason:      l.Reason,
		Status:      string(l.Status),
		RequestedAt: l.RequestedAt,
	}
}

func (d leaveDocument) toEntity() leave.Leave {
	return leave.Leave{
		EmployeeID:  d.EmployeeID,
		Date:        d.Date,
		Type:        leave.Type(d.Type),
		Reason:      d.Reason,
		Status:      leave.Status(d.Status),
		RequestedAt: d.RequestedAt,
	}
}
