package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmployeeCodeExists    = errors.New("employee code already exists")
	ErrEmailExists           = errors.New("email already registered")
	ErrSupervisorNotFound    = errors.New("assigned supervisor not found")
	ErrSupervisorInvalidRole = errors.New("assigned supervisor must have the supervisor role")
	ErrSupervisorSelf        = errors.New("user cannot be their own supervisor")
	ErrSupervisorBranch      = errors.New("supervisor must belong to the same branch")
	ErrForbidden             = errors.New("insufficient permissions for this action")
)
