package checkout

import "errors"

var (
	ErrRequestNotFound       = errors.New("checkout request not found")
	ErrCorrectionNotNeeded   = errors.New("this attendance record does not need checkout correction")
	ErrDuplicateRequest      = errors.New("checkout correction request already exists for this attendance")
	ErrTimeBeforeCheckIn     = errors.New("checkout time must be after check-in time")
	ErrTimeAfterCutoff       = errors.New("checkout time cannot be after 6 PM")
	ErrFutureAttendance      = errors.New("can only request checkout correction for past dates")
	ErrNoSupervisorAssigned  = errors.New("no supervisor assigned")
	ErrAlreadyProcessed      = errors.New("can only update pending checkout requests")
	ErrNotRequestOwner       = errors.New("attendance record does not belong to the requesting employee")
	ErrResolverNotAuthorized = errors.New("only the assigned supervisor or HR can resolve this request")
)
