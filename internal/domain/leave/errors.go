package leave

import "errors"

var (
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrInvalidDateRange    = errors.New("start date cannot be after end date")
	ErrStartDateInPast     = errors.New("cannot apply for leave in the past")
	ErrOverlappingLeave    = errors.New("you already have a leave application for this period")
	ErrAlreadyProcessed    = errors.New("can only update pending leave applications")
	ErrNotApplicationOwner = errors.New("leave application does not belong to this employee")
	ErrResolverNotAllowed  = errors.New("only a supervisor, HR or superadmin can resolve leave applications")
)
