package export

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	DetailsSheet = "Details"
)

var (
	summaryHeaders = []string{"Employee ID", "Employee Name", "Present", "Leaves", "Half Days", "Late Arrivals", "Hours Worked"}
	detailHeaders  = []string{"Employee Name", "Date", "Clock In", "Clock Out", "Hours", "Status", "Late", "Half Day"}
)

// ExcelRenderer writes a summary sheet with one row per report and a
// details sheet with one row per attendance record.
type ExcelRenderer struct{}

func NewExcelRenderer() report.Renderer {
	return ExcelRenderer{}
}

func (ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (ExcelRenderer) Extension() string {
	return string(report.FormatXLSX)
}

func (ExcelRenderer) Render(reports []report.MonthlyReport, month, year int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	index, err := f.NewSheet(SummarySheet)
	if err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if _, err := f.NewSheet(DetailsSheet); err != nil {
		return nil, fmt.Errorf("create details sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SetCellValue(SummarySheet, "A1", fmt.Sprintf("Attendance Report %04d-%02d", year, month)); err != nil {
		return nil, err
	}
	if err := writeRow(f, SummarySheet, 3, toCells(summaryHeaders), headerStyle); err != nil {
		return nil, err
	}
	if err := writeRow(f, DetailsSheet, 1, toCells(detailHeaders), headerStyle); err != nil {
		return nil, err
	}

	detailRow := 2
	for i, r := range reports {
		summary := []interface{}{
			r.EmployeeID, r.EmployeeName, r.TotalPresent, r.TotalLeaves,
			r.TotalHalfDays, r.TotalLateArrivals, r.WorkedHours(),
		}
		if err := writeRow(f, SummarySheet, i+4, summary, 0); err != nil {
			return nil, err
		}

		for _, a := range r.AttendanceDetails {
			if err := writeRow(f, DetailsSheet, detailRow, detailCells(r.EmployeeName, a), 0); err != nil {
				return nil, err
			}
			detailRow++
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SummarySheet, "B", "B", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SummarySheet, "C", "G", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(DetailsSheet, "A", "A", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(DetailsSheet, "B", "H", 12); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func detailCells(employeeName string, a attendance.Attendance) []interface{} {
	clockIn, clockOut, hours := "", "", ""
	if a.ClockIn != nil {
		clockIn = *a.ClockIn
	}
	if a.ClockOut != nil {
		clockOut = *a.ClockOut
	}
	if a.ClockIn != nil && a.ClockOut != nil {
		hours = fmt.Sprintf("%.2f", attendance.CalculateHours(*a.ClockIn, *a.ClockOut))
	}
	return []interface{}{employeeName, a.Date, clockIn, clockOut, hours, string(a.Status), yesNo(a.IsLate), yesNo(a.IsHalfDay)}
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}, style int) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
