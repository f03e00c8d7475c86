package database

import (
	"context"
	"fmt"
)

// CreateSchema creates the employees, attendance and leaves tables.
// Safe to call on every start; every statement uses IF NOT EXISTS.
func (db *DB) CreateSchema(ctx context.Context) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS employees (
    id TEXT CONSTRAINT employees_pkey PRIMARY KEY,
    name TEXT NOT NULL,
    unique_link TEXT NOT NULL CONSTRAINT employees_unique_link_key UNIQUE,
    password_hash TEXT NOT NULL,
    email TEXT NOT NULL,
    designation TEXT NOT NULL DEFAULT 'Employee',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_employees_name ON employees(name);

CREATE TABLE IF NOT EXISTS attendance (
    employee_id TEXT NOT NULL,
    date TEXT NOT NULL CHECK (date ~ '^\d{4}-\d{2}-\d{2}$'),
    clock_in TEXT CHECK (clock_in ~ '^\d{2}:\d{2}:\d{2}$'),
    clock_out TEXT CHECK (clock_out ~ '^\d{2}:\d{2}:\d{2}$'),
    status TEXT NOT NULL DEFAULT 'present' CHECK (status IN ('present', 'half-day', 'absent')),
    is_late BOOLEAN NOT NULL DEFAULT FALSE,
    is_half_day BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (employee_id, date),
    CHECK (clock_out IS NULL OR clock_in IS NOT NULL)
);

CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date);

CREATE TABLE IF NOT EXISTS leaves (
    employee_id TEXT NOT NULL,
    date TEXT NOT NULL CHECK (date ~ '^\d{4}-\d{2}-\d{2}$'),
    type TEXT NOT NULL CHECK (type IN ('full-day', 'half-day')),
    reason TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (employee_id, date)
);

CREATE INDEX IF NOT EXISTS idx_leaves_status ON leaves(status);
`
