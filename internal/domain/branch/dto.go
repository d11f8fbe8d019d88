package branch

import (
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

type CreateBranchRequest struct {
	Name string `json:"name"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at most 50 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBranchRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name"`
}

func (r *UpdateBranchRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BranchResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ActiveEmployees int64  `json:"active_employees"`
	Therapists      int64  `json:"therapists"`
}

func ToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:              b.ID,
		Name:            b.Name,
		ActiveEmployees: b.ActiveEmployees,
		Therapists:      b.Therapists,
	}
}
