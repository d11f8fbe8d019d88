package leave

import (
	"context"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/leave"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/clock"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	user.UserRepository
	clock clock.Clock
	loc   *time.Location
}

func NewLeaveService(
	db *database.DB,
	leaveRepository leave.LeaveRepository,
	userRepository user.UserRepository,
	clk clock.Clock,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
		clock:           clk,
		loc:             loc,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, employeeID string, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	if startDate.After(endDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	// Parsed dates are UTC midnights; compare against today's date in
	// the organization timezone expressed the same way.
	y, m, d := s.clock.Now().In(s.loc).Date()
	todayUTC := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if startDate.Before(todayUTC) {
		return leave.LeaveResponse{}, leave.ErrStartDateInPast
	}

	overlapping, err := s.LeaveRepository.HasOverlapping(ctx, employeeID, startDate, endDate, "")
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	app := leave.LeaveApplication{
		EmployeeID: employeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}
	app.Recompute()

	created, err := s.LeaveRepository.Create(ctx, app)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, resolverID, applicationID string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, resolverID, applicationID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, resolverID, applicationID string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, resolverID, applicationID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) resolve(ctx context.Context, resolverID, applicationID string, status leave.Status) (leave.LeaveResponse, error) {
	app, err := s.LeaveRepository.GetByID(ctx, applicationID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if app.Resolved() {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	resolver, err := s.UserRepository.GetByID(ctx, resolverID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	ownerBranch := ""
	if app.BranchID != nil {
		ownerBranch = *app.BranchID
	}
	if !user.CanResolveLeave(resolver, ownerBranch) {
		return leave.LeaveResponse{}, leave.ErrResolverNotAllowed
	}

	now := s.clock.Now().In(s.loc)
	app.Status = status
	app.ApprovedBy = &resolver.ID
	app.ApprovedAt = &now

	if err := s.LeaveRepository.Update(ctx, app); err != nil {
		return leave.LeaveResponse{}, err
	}

	app.ApproverName = strPtr(resolver.FullName())
	return leave.ToResponse(app), nil
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, actorID string, req leave.UpdateRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	app, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if app.Resolved() {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	if err := s.authorizeEdit(ctx, actorID, app); err != nil {
		return leave.LeaveResponse{}, err
	}

	if req.LeaveType != nil {
		app.LeaveType = leave.Type(*req.LeaveType)
	}
	if req.StartDate != nil {
		startDate, _ := validator.IsValidDate(*req.StartDate)
		app.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, _ := validator.IsValidDate(*req.EndDate)
		app.EndDate = endDate
	}
	if req.Reason != nil {
		app.Reason = *req.Reason
	}

	if app.StartDate.After(app.EndDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	if req.StartDate != nil {
		y, m, d := s.clock.Now().In(s.loc).Date()
		todayUTC := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if app.StartDate.Before(todayUTC) {
			return leave.LeaveResponse{}, leave.ErrStartDateInPast
		}
	}

	overlapping, err := s.LeaveRepository.HasOverlapping(ctx, app.EmployeeID, app.StartDate, app.EndDate, app.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	app.Recompute()

	if err := s.LeaveRepository.Update(ctx, app); err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(app), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, actorID, applicationID string) error {
	app, err := s.LeaveRepository.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if app.Resolved() {
		return leave.ErrAlreadyProcessed
	}

	if err := s.authorizeEdit(ctx, actorID, app); err != nil {
		return err
	}

	return s.LeaveRepository.Delete(ctx, applicationID)
}

func (s *LeaveServiceImpl) authorizeEdit(ctx context.Context, actorID string, app leave.LeaveApplication) error {
	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	ownerBranch := ""
	if app.BranchID != nil {
		ownerBranch = *app.BranchID
	}
	if !user.CanEditLeave(actor, app.EmployeeID, ownerBranch) {
		return leave.ErrNotApplicationOwner
	}
	return nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, actorID string, filter leave.Filter) (leave.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListResponse{}, err
	}

	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return leave.ListResponse{}, err
	}

	switch actor.Role {
	case user.RoleTherapist:
		filter.EmployeeID = &actor.ID
		filter.BranchID = nil
	case user.RoleSupervisor:
		filter.BranchID = &actor.BranchID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	applications, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, err
	}

	responses := make([]leave.LeaveResponse, 0, len(applications))
	for _, app := range applications {
		responses = append(responses, leave.ToResponse(app))
	}

	return leave.ListResponse{
		TotalCount:   total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		Applications: responses,
	}, nil
}

func strPtr(s string) *string {
	return &s
}
