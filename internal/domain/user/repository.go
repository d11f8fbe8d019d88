package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmployeeCode(ctx context.Context, code string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	List(ctx context.Context, filter Filter) ([]User, int64, error)

	// GetBranchSupervisor returns the first active supervisor of a
	// branch, used for therapist auto-assignment.
	GetBranchSupervisor(ctx context.Context, branchID string) (User, error)

	// GetActive returns all active users, optionally narrowed to one
	// branch by passing a non-nil branchID.
	GetActive(ctx context.Context, branchID *string) ([]User, error)
}
