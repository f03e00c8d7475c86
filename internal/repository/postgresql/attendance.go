package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `employee_id, date, clock_in, clock_out, status, is_late, is_half_day`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.Status, &a.IsLate, &a.IsHalfDay)
	return a, err
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("date = $%d", len(args)))
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 AND date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	return &a, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			status = EXCLUDED.status,
			is_late = EXCLUDED.is_late,
			is_half_day = EXCLUDED.is_half_day
	`

	_, err := q.Exec(ctx, query, a.EmployeeID, a.Date, a.ClockIn, a.ClockOut, a.Status, a.IsLate, a.IsHalfDay)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// CompareAndSwap implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CompareAndSwap(ctx context.Context, expected *attendance.Attendance, next attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, r.db)

	if expected == nil {
		query := `
			INSERT INTO attendance (` + attendanceColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (employee_id, date) DO NOTHING
		`
		tag, err := q.Exec(ctx, query, next.EmployeeID, next.Date, next.ClockIn, next.ClockOut, next.Status, next.IsLate, next.IsHalfDay)
		if err != nil {
			return false, fmt.Errorf("failed to insert attendance: %w", err)
		}
		return tag.RowsAffected() == 1, nil
	}

	query := `
		UPDATE attendance
		SET clock_in = $3, clock_out = $4, status = $5, is_late = $6, is_half_day = $7
		WHERE employee_id = $1 AND date = $2
			AND clock_in IS NOT DISTINCT FROM $8
			AND clock_out IS NOT DISTINCT FROM $9
	`
	tag, err := q.Exec(ctx, query,
		next.EmployeeID, next.Date, next.ClockIn, next.ClockOut, next.Status, next.IsLate, next.IsHalfDay,
		expected.ClockIn, expected.ClockOut,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update attendance: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReplaceAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ReplaceAll(ctx context.Context, records []attendance.Attendance) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM attendance`); err != nil {
			return fmt.Errorf("failed to clear attendance: %w", err)
		}

		rows := make([][]interface{}, 0, len(records))
		for _, a := range records {
			rows = append(rows, []interface{}{a.EmployeeID, a.Date, a.ClockIn, a.ClockOut, string(a.Status), a.IsLate, a.IsHalfDay})
		}
		return copyRows(ctx, q, "attendance",
			[]string{"employee_id", "date", "clock_in", "clock_out", "status", "is_late", "is_half_day"}, rows)
	})
}
