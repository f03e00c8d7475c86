package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func monthlyReportRequest(r *http.Request) report.MonthlyReportRequest {
	q := r.URL.Query()
	return report.MonthlyReportRequest{
		EmployeeID: q.Get("employeeId"),
		Month:      q.Get("month"),
		Year:       q.Get("year"),
	}
}

// GetMonthlyReport handles GET /reports?employeeId=&month=&year=
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	query, err := monthlyReportRequest(r).Parse()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if query.EmployeeID != "" {
		result, err := h.reportService.GenerateMonthlyReport(r.Context(), query.EmployeeID, query.Month, query.Year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.OK(w, report.NewMonthlyReportResponse(result))
		return
	}

	results, err := h.reportService.GenerateAllMonthlyReports(r.Context(), query.Month, query.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, report.NewListMonthlyReportResponse(results))
}

// Export handles GET /reports/export?format=&month=&year=&employeeId=
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.ExportReportRequest{
		MonthlyReportRequest: monthlyReportRequest(r),
		Format:               r.URL.Query().Get("format"),
	}
	query, format, err := req.Parse()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.reportService.Export(r.Context(), query, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Name, file.ContentType, file.Data)
}
