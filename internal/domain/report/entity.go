package report

import "github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"

// MonthlyReport aggregates one employee's attendance and approved leaves
// for a calendar month. It is derived and never stored.
type MonthlyReport struct {
	EmployeeID        string
	EmployeeName      string
	Month             int
	Year              int
	TotalPresent      int
	TotalLeaves       int
	TotalHalfDays     int
	TotalLateArrivals int
	AttendanceDetails []attendance.Attendance
}

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// File is a rendered report ready to be sent as an attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
