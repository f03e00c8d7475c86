package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

// inMonth reports whether a YYYY-MM-DD date falls in month/year.
func inMonth(date string, month, year int) bool {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return y == year && m == month
}

// BuildMonthlyReport computes the report for emp from unfiltered records.
// Half-day attendance and approved half-day leaves both count towards
// TotalHalfDays.
func BuildMonthlyReport(emp employee.Employee, records []attendance.Attendance, leaves []leave.Leave, month, year int) MonthlyReport {
	r := MonthlyReport{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		Month:             month,
		Year:              year,
		AttendanceDetails: make([]attendance.Attendance, 0),
	}

	for _, a := range records {
		if a.EmployeeID != emp.ID || !inMonth(a.Date, month, year) {
			continue
		}
		r.AttendanceDetails = append(r.AttendanceDetails, a)

		if a.Status == attendance.StatusPresent && a.ClockIn != nil && a.ClockOut != nil {
			r.TotalPresent++
		}
		if a.IsHalfDay || a.Status == attendance.StatusHalfDay {
			r.TotalHalfDays++
		}
		if a.IsLate {
			r.TotalLateArrivals++
		}
	}

	for _, l := range leaves {
		if l.EmployeeID != emp.ID || l.Status != leave.StatusApproved || !inMonth(l.Date, month, year) {
			continue
		}
		switch l.Type {
		case leave.TypeFullDay:
			r.TotalLeaves++
		case leave.TypeHalfDay:
			r.TotalHalfDays++
		}
	}

	sort.SliceStable(r.AttendanceDetails, func(i, j int) bool {
		return r.AttendanceDetails[i].Date < r.AttendanceDetails[j].Date
	})

	return r
}

// WorkedHours sums CalculateHours over the days with both clock times.
func (r MonthlyReport) WorkedHours() float64 {
	var total float64
	for _, a := range r.AttendanceDetails {
		if a.ClockIn != nil && a.ClockOut != nil {
			total += attendance.CalculateHours(*a.ClockIn, *a.ClockOut)
		}
	}
	return total
}
