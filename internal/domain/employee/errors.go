package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee id already exists")
	ErrUniqueLinkExists = errors.New("uniqueLink already taken")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
