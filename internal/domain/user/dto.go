package user

import (
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

type CreateUserRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         string  `json:"role"`
	BranchID     string  `json:"branch_id"`
	MobileNumber string  `json:"mobile_number"`
	LoginTime    string  `json:"login_time"`    // "HH:MM", defaults to 09:30
	GraceMinutes *int    `json:"grace_minutes"` // defaults to 10
	SupervisorID *string `json:"supervisor_id"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code must look like JEY-0042"})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}

	if !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of therapist, supervisor, hr, superadmin"})
	}

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id is required"})
	}

	if !validator.IsEmpty(r.MobileNumber) && !validator.IsValidPhoneNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{Field: "mobile_number", Message: "mobile_number must be 9-15 digits"})
	}

	if !validator.IsEmpty(r.LoginTime) {
		if _, ok := validator.IsValidTimeOfDay(r.LoginTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "login_time", Message: "login_time must be in HH:MM format"})
		}
	}

	if r.GraceMinutes != nil && (*r.GraceMinutes < 0 || *r.GraceMinutes > 120) {
		errs = append(errs, validator.ValidationError{Field: "grace_minutes", Message: "grace_minutes must be between 0 and 120"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID           string  `json:"-"`
	Email        *string `json:"email"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Role         *string `json:"role"`
	BranchID     *string `json:"branch_id"`
	MobileNumber *string `json:"mobile_number"`
	LoginTime    *string `json:"login_time"`
	GraceMinutes *int    `json:"grace_minutes"`
	SupervisorID *string `json:"supervisor_id"`
	IsActive     *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}

	if r.Role != nil && !ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of therapist, supervisor, hr, superadmin"})
	}

	if r.MobileNumber != nil && !validator.IsEmpty(*r.MobileNumber) && !validator.IsValidPhoneNumber(*r.MobileNumber) {
		errs = append(errs, validator.ValidationError{Field: "mobile_number", Message: "mobile_number must be 9-15 digits"})
	}

	if r.LoginTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.LoginTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "login_time", Message: "login_time must be in HH:MM format"})
		}
	}

	if r.GraceMinutes != nil && (*r.GraceMinutes < 0 || *r.GraceMinutes > 120) {
		errs = append(errs, validator.ValidationError{Field: "grace_minutes", Message: "grace_minutes must be between 0 and 120"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	BranchID *string
	Role     *string
	Search   *string
	IsActive *bool
	Page     int
	Limit    int
}

type UserResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	BranchID     string  `json:"branch_id"`
	BranchName   *string `json:"branch_name,omitempty"`
	MobileNumber string  `json:"mobile_number,omitempty"`
	LoginTime    string  `json:"login_time"`
	GraceMinutes int     `json:"grace_minutes"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		EmployeeCode: u.EmployeeCode,
		Email:        u.Email,
		FullName:     u.FullName(),
		Role:         string(u.Role),
		BranchID:     u.BranchID,
		BranchName:   u.BranchName,
		MobileNumber: u.MobileNumber,
		LoginTime:    u.LoginTime.Format("15:04"),
		GraceMinutes: u.GraceMinutes,
		SupervisorID: u.SupervisorID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

type ListUsersResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Users      []UserResponse `json:"users"`
}
