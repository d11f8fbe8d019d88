package checkout

import (
	"context"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/attendance"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/checkout"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/clock"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/repository/postgresql"
)

type CheckoutServiceImpl struct {
	db *database.DB
	checkout.CheckoutRequestRepository
	attendance.AttendanceRepository
	user.UserRepository
	clock clock.Clock
	loc   *time.Location
}

func NewCheckoutService(
	db *database.DB,
	checkoutRepository checkout.CheckoutRequestRepository,
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	clk clock.Clock,
	loc *time.Location,
) checkout.CheckoutService {
	return &CheckoutServiceImpl{
		db:                        db,
		CheckoutRequestRepository: checkoutRepository,
		AttendanceRepository:      attendanceRepository,
		UserRepository:            userRepository,
		clock:                     clk,
		loc:                       loc,
	}
}

// Submit implements checkout.CheckoutService.
func (s *CheckoutServiceImpl) Submit(ctx context.Context, therapistID string, req checkout.SubmitRequest) (checkout.CheckoutRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	therapist, err := s.UserRepository.GetByID(ctx, therapistID)
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	log, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceLogID)
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	if log.EmployeeID != therapistID {
		return checkout.CheckoutRequestResponse{}, checkout.ErrNotRequestOwner
	}
	if !log.NeedsCheckoutCorrection {
		return checkout.CheckoutRequestResponse{}, checkout.ErrCorrectionNotNeeded
	}

	// Stored dates are UTC midnights; express today's date in the
	// organization timezone the same way before comparing. Corrections
	// are only accepted once the record's day is over.
	y, m, d := s.clock.Now().In(s.loc).Date()
	todayUTC := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if !log.Date.Before(todayUTC) {
		return checkout.CheckoutRequestResponse{}, checkout.ErrFutureAttendance
	}

	requestedTime, _ := validator.IsValidTimeOfDay(req.RequestedTime)
	claimed := clock.CombineDateTime(log.Date, requestedTime, s.loc)

	if log.CheckInTime != nil && !claimed.After(log.CheckInTime.In(s.loc)) {
		return checkout.CheckoutRequestResponse{}, checkout.ErrTimeBeforeCheckIn
	}
	if claimed.After(attendance.CutoffFor(log.Date, s.loc)) {
		return checkout.CheckoutRequestResponse{}, checkout.ErrTimeAfterCutoff
	}

	exists, err := s.CheckoutRequestRepository.ExistsForAttendanceLog(ctx, log.ID)
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}
	if exists {
		return checkout.CheckoutRequestResponse{}, checkout.ErrDuplicateRequest
	}

	if therapist.SupervisorID == nil || *therapist.SupervisorID == "" {
		return checkout.CheckoutRequestResponse{}, checkout.ErrNoSupervisorAssigned
	}

	created, err := s.CheckoutRequestRepository.Create(ctx, checkout.CheckoutRequest{
		TherapistID:     therapistID,
		AttendanceLogID: log.ID,
		RequestedTime:   requestedTime,
		Reason:          req.Reason,
		Status:          checkout.StatusPending,
		SupervisorID:    *therapist.SupervisorID,
	})
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	created.TherapistName = strPtr(therapist.FullName())
	created.TherapistCode = &therapist.EmployeeCode
	created.AttendanceDate = &log.Date
	created.CheckInTime = log.CheckInTime

	return checkout.ToResponse(created), nil
}

// Approve implements checkout.CheckoutService.
func (s *CheckoutServiceImpl) Approve(ctx context.Context, resolverID string, req checkout.ResolveRequest) (checkout.CheckoutRequestResponse, error) {
	request, err := s.loadForResolution(ctx, resolverID, req.ID)
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	now := s.clock.Now().In(s.loc)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		log, err := s.AttendanceRepository.GetByID(txCtx, request.AttendanceLogID)
		if err != nil {
			return err
		}

		therapist, err := s.UserRepository.GetByID(txCtx, request.TherapistID)
		if err != nil {
			return err
		}

		checkOut := clock.CombineDateTime(log.Date, request.RequestedTime, s.loc)
		log.CheckOutTime = &checkOut
		log.Recompute(attendance.Schedule{
			LoginTime:    therapist.LoginTime,
			GraceMinutes: therapist.GraceMinutes,
		}, s.loc)

		if err := s.AttendanceRepository.Update(txCtx, log); err != nil {
			return err
		}

		request.Status = checkout.StatusApproved
		request.SupervisorNotes = req.Notes
		request.ProcessedAt = &now

		return s.CheckoutRequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	return checkout.ToResponse(request), nil
}

// Reject implements checkout.CheckoutService.
func (s *CheckoutServiceImpl) Reject(ctx context.Context, resolverID string, req checkout.ResolveRequest) (checkout.CheckoutRequestResponse, error) {
	request, err := s.loadForResolution(ctx, resolverID, req.ID)
	if err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	request.Status = checkout.StatusRejected
	request.SupervisorNotes = req.Notes
	request.ProcessedAt = &now

	if err := s.CheckoutRequestRepository.Update(ctx, request); err != nil {
		return checkout.CheckoutRequestResponse{}, err
	}

	return checkout.ToResponse(request), nil
}

func (s *CheckoutServiceImpl) loadForResolution(ctx context.Context, resolverID, requestID string) (checkout.CheckoutRequest, error) {
	request, err := s.CheckoutRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return checkout.CheckoutRequest{}, err
	}

	if request.Resolved() {
		return checkout.CheckoutRequest{}, checkout.ErrAlreadyProcessed
	}

	resolver, err := s.UserRepository.GetByID(ctx, resolverID)
	if err != nil {
		return checkout.CheckoutRequest{}, err
	}

	if !user.CanResolveCheckoutRequest(resolver, request.SupervisorID) {
		return checkout.CheckoutRequest{}, checkout.ErrResolverNotAuthorized
	}

	return request, nil
}

// List implements checkout.CheckoutService.
func (s *CheckoutServiceImpl) List(ctx context.Context, actorID string, filter checkout.Filter) (checkout.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return checkout.ListResponse{}, err
	}

	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return checkout.ListResponse{}, err
	}

	switch actor.Role {
	case user.RoleTherapist:
		filter.TherapistID = &actor.ID
		filter.SupervisorID = nil
	case user.RoleSupervisor:
		filter.SupervisorID = &actor.ID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.CheckoutRequestRepository.List(ctx, filter)
	if err != nil {
		return checkout.ListResponse{}, err
	}

	responses := make([]checkout.CheckoutRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, checkout.ToResponse(r))
	}

	return checkout.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

func strPtr(s string) *string {
	return &s
}
