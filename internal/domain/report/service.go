package report

import "context"

type ReportService interface {
	// GenerateMonthlyReport returns employee.ErrEmployeeNotFound for an unknown id.
	GenerateMonthlyReport(ctx context.Context, employeeID string, month, year int) (MonthlyReport, error)

	// GenerateAllMonthlyReports returns one report per employee, in employee list order.
	GenerateAllMonthlyReports(ctx context.Context, month, year int) ([]MonthlyReport, error)

	// Export renders the reports selected by query as an xlsx or pdf file.
	Export(ctx context.Context, query MonthlyReportQuery, format Format) (File, error)
}

// Renderer turns reports into a downloadable document.
type Renderer interface {
	Render(reports []MonthlyReport, month, year int) ([]byte, error)
	ContentType() string
	Extension() string
}
