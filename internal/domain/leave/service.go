package leave

import "context"

// LeaveService is the leave application workflow.
type LeaveService interface {
	Apply(ctx context.Context, employeeID string, req ApplyRequest) (LeaveResponse, error)

	// Approve and Reject require a pending application and a resolver
	// with authority over the applicant's branch.
	Approve(ctx context.Context, resolverID, applicationID string) (LeaveResponse, error)
	Reject(ctx context.Context, resolverID, applicationID string) (LeaveResponse, error)

	// Update and Delete apply only while pending; the owner may touch
	// their own application, supervisors/HR anything in branch scope.
	Update(ctx context.Context, actorID string, req UpdateRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actorID, applicationID string) error

	List(ctx context.Context, actorID string, filter Filter) (ListResponse, error)
}
