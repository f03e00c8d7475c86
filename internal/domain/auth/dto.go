package auth

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	UniqueLink string `json:"uniqueLink"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("uniqueLink", r.UniqueLink)
	errs.Required("password", r.Password)

	return errs.Err()
}

type TokenResponse struct {
	AccessToken string                    `json:"accessToken"`
	ExpiresAt   time.Time                 `json:"expiresAt"`
	Employee    employee.EmployeeResponse `json:"employee"`
}
