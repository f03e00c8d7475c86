package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `employee_id, date, type, reason, status, requested_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(&l.EmployeeID, &l.Date, &l.Type, &l.Reason, &l.Status, &l.RequestedAt)
	return l, err
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + leaveColumns + ` FROM leaves`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

// GetByEmployeeAndDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE employee_id = $1 AND date = $2`

	l, err := scanLeave(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (` + leaveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query, l.EmployeeID, l.Date, l.Type, l.Reason, l.Status, l.RequestedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveAlreadyExists
		}
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, employeeID string, date string, status leave.Status) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves SET status = $3
		WHERE employee_id = $1 AND date = $2
		RETURNING ` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query, employeeID, date, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	return updated, nil
}

// ReplaceAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ReplaceAll(ctx context.Context, leaves []leave.Leave) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM leaves`); err != nil {
			return fmt.Errorf("failed to clear leaves: %w", err)
		}

		rows := make([][]interface{}, 0, len(leaves))
		for _, l := range leaves {
			rows = append(rows, []interface{}{l.EmployeeID, l.Date, string(l.Type), l.Reason, string(l.Status), l.RequestedAt})
		}
		return copyRows(ctx, q, "leaves",
			[]string{"employee_id", "date", "type", "reason", "status", "requested_at"}, rows)
	})
}
