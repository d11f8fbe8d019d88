package leave

import (
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of casual, sick, emergency, unpaid"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID        string  `json:"-"`
	LeaveType *string `json:"leave_type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Reason    *string `json:"reason"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && !ValidType(*r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of casual, sick, emergency, unpaid"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}
	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID *string
	BranchID   *string
	Status     *string
	MonthYear  *string
	Page       int
	Limit      int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of pending, approved, rejected"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	BranchName   *string `json:"branch_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	LeaveDays    int     `json:"leave_days"`
	MonthYear    string  `json:"month_year"`
	AppliedAt    string  `json:"applied_at"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
}

func ToResponse(l LeaveApplication) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		EmployeeCode: l.EmployeeCode,
		BranchName:   l.BranchName,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Reason:       l.Reason,
		Status:       string(l.Status),
		LeaveDays:    l.LeaveDays,
		MonthYear:    l.MonthYear,
		AppliedAt:    l.AppliedAt.Format(time.RFC3339),
		ApprovedBy:   l.ApprovedBy,
		ApproverName: l.ApproverName,
	}
	if l.ApprovedAt != nil {
		s := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

type ListResponse struct {
	TotalCount   int64           `json:"total_count"`
	Page         int             `json:"page"`
	Limit        int             `json:"limit"`
	Applications []LeaveResponse `json:"leave_applications"`
}
