package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, app LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	Update(ctx context.Context, app LeaveApplication) error
	Delete(ctx context.Context, id string) error

	// HasOverlapping reports whether the employee already has a
	// pending/approved application intersecting [start, end].
	// excludeID skips one application (the one being edited); pass ""
	// on submission.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)

	List(ctx context.Context, filter Filter) ([]LeaveApplication, int64, error)
}
