package checkout

import (
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

type SubmitRequest struct {
	AttendanceLogID string `json:"attendance_log_id"`
	RequestedTime   string `json:"requested_checkout_time"` // "HH:MM"
	Reason          string `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceLogID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_log_id", Message: "attendance_log_id is required"})
	}
	if validator.IsEmpty(r.RequestedTime) {
		errs = append(errs, validator.ValidationError{Field: "requested_checkout_time", Message: "requested_checkout_time is required"})
	} else if _, ok := validator.IsValidTimeOfDay(r.RequestedTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "requested_checkout_time", Message: "invalid time format, use HH:MM"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveRequest struct {
	ID    string `json:"-"`
	Notes string `json:"supervisor_notes"`
}

type Filter struct {
	Status       *string
	TherapistID  *string
	SupervisorID *string
	Page         int
	Limit        int
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

type CheckoutRequestResponse struct {
	ID              string  `json:"id"`
	TherapistID     string  `json:"therapist_id"`
	TherapistName   *string `json:"therapist_name,omitempty"`
	TherapistCode   *string `json:"therapist_code,omitempty"`
	AttendanceLogID string  `json:"attendance_log_id"`
	AttendanceDate  *string `json:"attendance_date,omitempty"`
	CheckInTime     *string `json:"check_in_time,omitempty"`
	RequestedTime   string  `json:"requested_checkout_time"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	SupervisorID    string  `json:"supervisor_id"`
	SupervisorName  *string `json:"supervisor_name,omitempty"`
	SupervisorNotes string  `json:"supervisor_notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
}

func ToResponse(r CheckoutRequest) CheckoutRequestResponse {
	resp := CheckoutRequestResponse{
		ID:              r.ID,
		TherapistID:     r.TherapistID,
		TherapistName:   r.TherapistName,
		TherapistCode:   r.TherapistCode,
		AttendanceLogID: r.AttendanceLogID,
		RequestedTime:   r.RequestedTime.Format("15:04"),
		Reason:          r.Reason,
		Status:          string(r.Status),
		SupervisorID:    r.SupervisorID,
		SupervisorName:  r.SupervisorName,
		SupervisorNotes: r.SupervisorNotes,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.AttendanceDate != nil {
		d := r.AttendanceDate.Format("2006-01-02")
		resp.AttendanceDate = &d
	}
	if r.CheckInTime != nil {
		s := r.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &s
	}
	if r.ProcessedAt != nil {
		s := r.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}

type ListResponse struct {
	TotalCount int64                     `json:"total_count"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	Requests   []CheckoutRequestResponse `json:"checkout_requests"`
}
