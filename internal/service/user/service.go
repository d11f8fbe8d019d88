package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/branch"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultLoginTime    = "09:30"
	defaultGraceMinutes = 10
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	branch.BranchRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository, branchRepository branch.BranchRepository) user.UserService {
	return &UserServiceImpl{
		db:               db,
		UserRepository:   userRepository,
		BranchRepository: branchRepository,
	}
}

// resolveSupervisor validates an explicit supervisor assignment, or
// falls back to the branch's active supervisor for therapists. A
// therapist in a branch without a supervisor is created unassigned.
func (s *UserServiceImpl) resolveSupervisor(ctx context.Context, supervisorID *string, role user.Role, branchID, selfID string) (*string, error) {
	if supervisorID == nil || *supervisorID == "" {
		if role != user.RoleTherapist {
			return nil, nil
		}
		sup, err := s.UserRepository.GetBranchSupervisor(ctx, branchID)
		if err != nil {
			if errors.Is(err, user.ErrSupervisorNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &sup.ID, nil
	}

	if selfID != "" && *supervisorID == selfID {
		return nil, user.ErrSupervisorSelf
	}

	sup, err := s.UserRepository.GetByID(ctx, *supervisorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrSupervisorNotFound
		}
		return nil, err
	}
	if sup.Role != user.RoleSupervisor {
		return nil, user.ErrSupervisorInvalidRole
	}
	if sup.BranchID != branchID {
		return nil, user.ErrSupervisorBranch
	}

	return &sup.ID, nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.BranchRepository.GetByID(ctx, req.BranchID); err != nil {
		return user.UserResponse{}, err
	}

	loginTimeStr := req.LoginTime
	if loginTimeStr == "" {
		loginTimeStr = defaultLoginTime
	}
	loginTime, _ := validator.IsValidTimeOfDay(loginTimeStr)

	graceMinutes := defaultGraceMinutes
	if req.GraceMinutes != nil {
		graceMinutes = *req.GraceMinutes
	}

	supervisorID, err := s.resolveSupervisor(ctx, req.SupervisorID, user.Role(req.Role), req.BranchID, "")
	if err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.Role(req.Role),
		BranchID:     req.BranchID,
		MobileNumber: req.MobileNumber,
		LoginTime:    loginTime,
		GraceMinutes: graceMinutes,
		SupervisorID: supervisorID,
		IsVerified:   true,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.BranchID != nil {
		if _, err := s.BranchRepository.GetByID(ctx, *req.BranchID); err != nil {
			return user.UserResponse{}, err
		}
		u.BranchID = *req.BranchID
	}
	if req.MobileNumber != nil {
		u.MobileNumber = *req.MobileNumber
	}
	if req.LoginTime != nil {
		loginTime, _ := validator.IsValidTimeOfDay(*req.LoginTime)
		u.LoginTime = loginTime
	}
	if req.GraceMinutes != nil {
		u.GraceMinutes = *req.GraceMinutes
	}
	if req.SupervisorID != nil {
		supervisorID, err := s.resolveSupervisor(ctx, req.SupervisorID, u.Role, u.BranchID, u.ID)
		if err != nil {
			return user.UserResponse{}, err
		}
		u.SupervisorID = supervisorID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, u.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.Filter) (user.ListUsersResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return user.ListUsersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Users:      responses,
	}, nil
}
