package branch

import (
	"context"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/branch"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
)

type BranchServiceImpl struct {
	db *database.DB
	branch.BranchRepository
}

func NewBranchService(db *database.DB, branchRepository branch.BranchRepository) branch.BranchService {
	return &BranchServiceImpl{
		db:               db,
		BranchRepository: branchRepository,
	}
}

// CreateBranch implements branch.BranchService.
func (s *BranchServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	created, err := s.BranchRepository.Create(ctx, branch.Branch{Name: req.Name})
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return branch.ToResponse(created), nil
}

// GetBranch implements branch.BranchService.
func (s *BranchServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.BranchRepository.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	return branch.ToResponse(b), nil
}

// ListBranches implements branch.BranchService.
func (s *BranchServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.BranchRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, branch.ToResponse(b))
	}
	return responses, nil
}

// UpdateBranch implements branch.BranchService.
func (s *BranchServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	if err := s.BranchRepository.Update(ctx, req); err != nil {
		return branch.BranchResponse{}, err
	}

	return s.GetBranch(ctx, req.ID)
}

// DeleteBranch implements branch.BranchService.
func (s *BranchServiceImpl) DeleteBranch(ctx context.Context, id string) error {
	b, err := s.BranchRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.ActiveEmployees > 0 {
		return branch.ErrBranchNotEmpty
	}
	return s.BranchRepository.Delete(ctx, id)
}
