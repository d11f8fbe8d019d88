package attendance

import (
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ScanQRRequest carries a scanned payload: the JSON the QR encodes plus
// its detached signature.
type ScanQRRequest struct {
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

func (r *ScanQRRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Payload) {
		errs = append(errs, validator.ValidationError{Field: "payload", Message: "payload is required"})
	}
	if validator.IsEmpty(r.Signature) {
		errs = append(errs, validator.ValidationError{Field: "signature", Message: "signature is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID *string
	BranchID   *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}
	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{string(StatusPresent), string(StatusAbsent), string(StatusDidNotCheckout)}) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, absent, did_not_checkout"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                      string  `json:"id"`
	EmployeeID              string  `json:"employee_id"`
	EmployeeName            *string `json:"employee_name,omitempty"`
	EmployeeCode            *string `json:"employee_code,omitempty"`
	BranchName              *string `json:"branch_name,omitempty"`
	Date                    string  `json:"date"`
	CheckInTime             *string `json:"check_in_time,omitempty"`
	CheckOutTime            *string `json:"check_out_time,omitempty"`
	Status                  string  `json:"status"`
	CheckinStatus           string  `json:"checkin_status"`
	TotalHours              float64 `json:"total_hours"`
	NeedsCheckoutCorrection bool    `json:"needs_checkout_correction"`
	AutoCheckout            bool    `json:"auto_checkout"`
}

func ToResponse(log AttendanceLog) AttendanceResponse {
	return AttendanceResponse{
		ID:                      log.ID,
		EmployeeID:              log.EmployeeID,
		EmployeeName:            log.EmployeeName,
		EmployeeCode:            log.EmployeeCode,
		BranchName:              log.BranchName,
		Date:                    log.Date.Format("2006-01-02"),
		CheckInTime:             timePtrToString(log.CheckInTime),
		CheckOutTime:            timePtrToString(log.CheckOutTime),
		Status:                  string(log.Status),
		CheckinStatus:           string(log.CheckinStatus),
		TotalHours:              log.TotalHours,
		NeedsCheckoutCorrection: log.NeedsCheckoutCorrection,
		AutoCheckout:            log.AutoCheckout,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type GenerateQRResponse struct {
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
	QRImage   string `json:"qr_image"` // data:image/png;base64,...
	ExpiresAt string `json:"expires_at"`
}
