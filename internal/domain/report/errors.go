package report

import "errors"

var (
	ErrPeriodRequired      = errors.New("month and year are required")
	ErrInvalidPeriod       = errors.New("invalid month or year")
	ErrInvalidExportFormat = errors.New("format must be one of: xlsx, pdf")
)
