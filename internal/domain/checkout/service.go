package checkout

import "context"

// CheckoutService is the correction workflow: submit by the therapist,
// resolve by the assigned supervisor or HR/superadmin.
type CheckoutService interface {
	Submit(ctx context.Context, therapistID string, req SubmitRequest) (CheckoutRequestResponse, error)

	// Approve writes the claimed time back into the attendance log and
	// recomputes its derived fields. Fails with ErrAlreadyProcessed on
	// anything but a pending request.
	Approve(ctx context.Context, resolverID string, req ResolveRequest) (CheckoutRequestResponse, error)

	// Reject only moves the request to rejected; the attendance log is
	// untouched.
	Reject(ctx context.Context, resolverID string, req ResolveRequest) (CheckoutRequestResponse, error)

	List(ctx context.Context, actorID string, filter Filter) (ListResponse, error)
}
