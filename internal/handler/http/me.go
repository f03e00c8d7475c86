package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

// MeHandler serves self-service routes for the authenticated employee.
type MeHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
}

type meHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewMeHandler(attendanceService attendance.AttendanceService) MeHandler {
	return &meHandlerImpl{
		attendanceService: attendanceService,
	}
}

type recordMyAttendanceRequest struct {
	Action attendance.Action `json:"action"`
}

// GetStatus handles GET /me/status
func (h *meHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.GetStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// Record handles POST /me/attendance
func (h *meHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var body recordMyAttendanceRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	result, err := h.attendanceService.Record(r.Context(), attendance.RecordAttendanceRequest{
		EmployeeID: employeeID,
		Action:     body.Action,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}
