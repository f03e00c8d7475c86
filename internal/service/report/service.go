package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReports bounds the per-employee fan-out of GenerateAllMonthlyReports.
const maxConcurrentReports = 8

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	renderers      map[report.Format]report.Renderer
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	renderers map[report.Format]report.Renderer,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		renderers:      renderers,
	}
}

// GenerateMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, employeeID string, month, year int) (report.MonthlyReport, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.MonthlyReport{}, err
	}
	return s.buildFor(ctx, emp, month, year)
}

// GenerateAllMonthlyReports implements report.ReportService.
func (s *ReportServiceImpl) GenerateAllMonthlyReports(ctx context.Context, month, year int) ([]report.MonthlyReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	reports := make([]report.MonthlyReport, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReports)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			r, err := s.buildFor(gctx, emp, month, year)
			if err != nil {
				return fmt.Errorf("report for employee %s: %w", emp.ID, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// buildFor loads emp's attendance and approved leaves and aggregates them.
func (s *ReportServiceImpl) buildFor(ctx context.Context, emp employee.Employee, month, year int) (report.MonthlyReport, error) {
	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{EmployeeID: &emp.ID})
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	approved := leave.StatusApproved
	leaves, err := s.leaveRepo.List(ctx, leave.LeaveFilter{EmployeeID: &emp.ID, Status: &approved})
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load leaves: %w", err)
	}

	return report.BuildMonthlyReport(emp, records, leaves, month, year), nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, query report.MonthlyReportQuery, format report.Format) (report.File, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return report.File{}, report.ErrInvalidExportFormat
	}

	var reports []report.MonthlyReport
	name := fmt.Sprintf("attendance-report-%04d-%02d", query.Year, query.Month)
	if query.EmployeeID != "" {
		r, err := s.GenerateMonthlyReport(ctx, query.EmployeeID, query.Month, query.Year)
		if err != nil {
			return report.File{}, err
		}
		reports = []report.MonthlyReport{r}
		name += "-" + query.EmployeeID
	} else {
		all, err := s.GenerateAllMonthlyReports(ctx, query.Month, query.Year)
		if err != nil {
			return report.File{}, err
		}
		reports = all
	}

	data, err := renderer.Render(reports, query.Month, query.Year)
	if err != nil {
		return report.File{}, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	slog.Info("report exported", "format", format, "month", query.Month, "year", query.Year, "reports", len(reports), "bytes", len(data))
	return report.File{
		Name:        name + "." + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}
