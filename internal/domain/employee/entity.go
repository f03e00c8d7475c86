package employee

import "time"

const DefaultDesignation = "Employee"

type Employee struct {
	ID           string
	Name         string
	UniqueLink   string
	PasswordHash string
	Email        string
	Designation  string
	CreatedAt    time.Time
}

// UpdateEmployee carries a partial update; nil fields are left unchanged.
type UpdateEmployee struct {
	Name         *string
	Email        *string
	Designation  *string
	PasswordHash *string
}

func (u UpdateEmployee) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Designation == nil && u.PasswordHash == nil
}
