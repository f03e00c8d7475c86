package report

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

const (
	minYear = 2000
	maxYear = 2100
)

// MonthlyReportRequest holds the raw query parameters of a report request.
type MonthlyReportRequest struct {
	EmployeeID string
	Month      string
	Year       string
}

// MonthlyReportQuery is a validated MonthlyReportRequest.
type MonthlyReportQuery struct {
	EmployeeID string
	Month      int
	Year       int
}

// Parse validates the request. Month must be 1-12 and year 2000-2100;
// both must be plain integers.
func (r MonthlyReportRequest) Parse() (MonthlyReportQuery, error) {
	month := strings.TrimSpace(r.Month)
	year := strings.TrimSpace(r.Year)
	if month == "" || year == "" {
		return MonthlyReportQuery{}, ErrPeriodRequired
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return MonthlyReportQuery{}, ErrInvalidPeriod
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < minYear || y > maxYear {
		return MonthlyReportQuery{}, ErrInvalidPeriod
	}

	return MonthlyReportQuery{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		Month:      m,
		Year:       y,
	}, nil
}

type ExportReportRequest struct {
	MonthlyReportRequest
	Format string
}

func (r ExportReportRequest) Parse() (MonthlyReportQuery, Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(r.Format)))
	if format == "" {
		format = FormatXLSX
	}
	if format != FormatXLSX && format != FormatPDF {
		return MonthlyReportQuery{}, "", ErrInvalidExportFormat
	}
	q, err := r.MonthlyReportRequest.Parse()
	if err != nil {
		return MonthlyReportQuery{}, "", err
	}
	return q, format, nil
}

type MonthlyReportResponse struct {
	EmployeeID        string                          `json:"employeeId"`
	EmployeeName      string                          `json:"employeeName"`
	Month             int                             `json:"month"`
	Year              int                             `json:"year"`
	TotalPresent      int                             `json:"totalPresent"`
	TotalLeaves       int                             `json:"totalLeaves"`
	TotalHalfDays     int                             `json:"totalHalfDays"`
	TotalLateArrivals int                             `json:"totalLateArrivals"`
	AttendanceDetails []attendance.AttendanceResponse `json:"attendanceDetails"`
}

func NewMonthlyReportResponse(r MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		Month:             r.Month,
		Year:              r.Year,
		TotalPresent:      r.TotalPresent,
		TotalLeaves:       r.TotalLeaves,
		TotalHalfDays:     r.TotalHalfDays,
		TotalLateArrivals: r.TotalLateArrivals,
		AttendanceDetails: attendance.NewListAttendanceResponse(r.AttendanceDetails).Attendance,
	}
}

type ListMonthlyReportResponse struct {
	Reports []MonthlyReportResponse `json:"reports"`
}

func NewListMonthlyReportResponse(reports []MonthlyReport) ListMonthlyReportResponse {
	resp := ListMonthlyReportResponse{Reports: make([]MonthlyReportResponse, 0, len(reports))}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, NewMonthlyReportResponse(r))
	}
	return resp
}
