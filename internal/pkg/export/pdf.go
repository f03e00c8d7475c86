package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer prints one section per employee: the monthly totals followed
// by the attendance table.
type PDFRenderer struct {
	now func() time.Time
}

func NewPDFRenderer(now func() time.Time) report.Renderer {
	return PDFRenderer{now: now}
}

func (PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (PDFRenderer) Extension() string {
	return string(report.FormatPDF)
}

var pdfColumns = []struct {
	header string
	width  float64
}{
	{"Date", 28}, {"Clock In", 24}, {"Clock Out", 24}, {"Hours", 18},
	{"Status", 26}, {"Late", 16}, {"Half Day", 20},
}

func (p PDFRenderer) Render(reports []report.MonthlyReport, month, year int) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Attendance Report %04d-%02d", year, month), false)

	if len(reports) == 0 {
		pdf.AddPage()
		p.header(pdf, month, year)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 10, "No employees found.")
	}

	for _, r := range reports {
		pdf.AddPage()
		p.header(pdf, month, year)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, r.EmployeeName)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		metrics := []struct {
			label string
			value string
		}{
			{"Present", fmt.Sprintf("%d", r.TotalPresent)},
			{"Leaves", fmt.Sprintf("%d", r.TotalLeaves)},
			{"Half Days", fmt.Sprintf("%d", r.TotalHalfDays)},
			{"Late Arrivals", fmt.Sprintf("%d", r.TotalLateArrivals)},
			{"Hours Worked", fmt.Sprintf("%.2f", r.WorkedHours())},
		}
		for _, m := range metrics {
			pdf.Cell(50, 7, m.label)
			pdf.Cell(40, 7, m.value)
			pdf.Ln(7)
		}
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 8, c.header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, a := range r.AttendanceDetails {
			for i, v := range detailCells(r.EmployeeName, a)[1:] {
				pdf.CellFormat(pdfColumns[i].width, 7, fmt.Sprint(v), "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (p PDFRenderer) header(pdf *gofpdf.Fpdf, month, year int) {
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Attendance Report %s", time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")))
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated at %s", p.now().Format("02 January 2006 15:04:05")))
	pdf.Ln(10)
}
