package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Required appends a "<field> is required" error when value is blank.
func (v *ValidationErrors) Required(field, value string) {
	if IsEmpty(value) {
		*v = append(*v, ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	}
}

// Add appends a validation error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Nest appends the field errors of err under prefix, e.g. "items[2].name".
// Errors that are not ValidationErrors are recorded against prefix itself.
// It reports whether err was non-nil.
func (v *ValidationErrors) Nest(prefix string, err error) bool {
	if err == nil {
		return false
	}
	var nested ValidationErrors
	if !errors.As(err, &nested) {
		v.Add(prefix, err.Error())
		return true
	}
	for _, e := range nested {
		v.Add(prefix+"."+e.Field, e.Message)
	}
	return true
}

// Err returns v as an error, or nil when it is empty.
func (v ValidationErrors) Err() error {
	if len(v) > 0 {
		return v
	}
	return nil
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var clockTimeRegex = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// IsValidClockTime checks for a 24h "HH:MM:SS" time of day.
func IsValidClockTime(s string) bool {
	if !clockTimeRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

// Slug validation: URL-safe characters only
var slugRegex = regexp.MustCompile(`^[A-Za-z0-9._~-]{1,100}$`)

func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
