package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, unique_link, password_hash, email, designation, created_at`

const employeesPrimaryKey = "employees_pkey"

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.UniqueLink, &emp.PasswordHash, &emp.Email, &emp.Designation, &emp.CreatedAt)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByUniqueLink implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUniqueLink(ctx context.Context, uniqueLink string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE unique_link = $1`, uniqueLink)
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, query string, arg string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, unique_link, password_hash, email, designation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.UniqueLink, newEmployee.PasswordHash,
		newEmployee.Email, newEmployee.Designation, newEmployee.CreatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			if violatedConstraint(err) == employeesPrimaryKey {
				return employee.Employee{}, employee.ErrEmployeeIDExists
			}
			return employee.Employee{}, employee.ErrUniqueLinkExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, update employee.UpdateEmployee) (employee.Employee, error) {
	if update.IsEmpty() {
		return e.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, e.db)

	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	add := func(col string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("name", update.Name)
	add("email", update.Email)
	add("designation", update.Designation)
	add("password_hash", update.PasswordHash)
	args = append(args, id)

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), len(args), employeeColumns)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ReplaceAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	return WithTransaction(ctx, e.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, e.db)

		if _, err := q.Exec(ctx, `DELETE FROM employees`); err != nil {
			return fmt.Errorf("failed to clear employees: %w", err)
		}

		rows := make([][]interface{}, 0, len(employees))
		for _, emp := range employees {
			rows = append(rows, []interface{}{emp.ID, emp.Name, emp.UniqueLink, emp.PasswordHash, emp.Email, emp.Designation, emp.CreatedAt})
		}
		return copyRows(ctx, q, "employees",
			[]string{"id", "name", "unique_link", "password_hash", "email", "designation", "created_at"}, rows)
	})
}
