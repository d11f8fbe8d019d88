package auth

import (
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

type LoginRequest struct {
	// One of the two identifiers is required.
	EmployeeCode string `json:"employee_code"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) && validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code or email is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresAt  int64             `json:"access_token_expires_at"`
	RefreshToken          string            `json:"-"` // delivered via HttpOnly cookie
	RefreshTokenExpiresAt int64             `json:"-"`
	User                  user.UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
