package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

// BulkHandler replaces whole collections at once.
type BulkHandler interface {
	ReplaceEmployees(w http.ResponseWriter, r *http.Request)
	ReplaceAttendance(w http.ResponseWriter, r *http.Request)
	ReplaceLeaves(w http.ResponseWriter, r *http.Request)
}

type bulkHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
}

func NewBulkHandler(employeeService employee.EmployeeService, attendanceService attendance.AttendanceService, leaveService leave.LeaveService) BulkHandler {
	return &bulkHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

// ReplaceEmployees handles PUT /bulk/employees
func (h *bulkHandlerImpl) ReplaceEmployees(w http.ResponseWriter, r *http.Request) {
	var req employee.ReplaceEmployeesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	count, err := h.employeeService.ReplaceAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.MessageWithCount(w, "Employees saved successfully", count)
}

// ReplaceAttendance handles PUT /bulk/attendance
func (h *bulkHandlerImpl) ReplaceAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReplaceAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	count, err := h.attendanceService.ReplaceAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.MessageWithCount(w, "Attendance saved successfully", count)
}

// ReplaceLeaves handles PUT /bulk/leaves
func (h *bulkHandlerImpl) ReplaceLeaves(w http.ResponseWriter, r *http.Request) {
	var req leave.ReplaceLeavesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	count, err := h.leaveService.ReplaceAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.MessageWithCount(w, "Leaves saved successfully", count)
}
