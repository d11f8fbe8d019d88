package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrRecheckinDisabled = errors.New("re-check-in after a completed cycle is disabled")

	// Check-out errors
	ErrNoActiveCheckIn = errors.New("no active check-in record found for today")
	ErrPastCutoff      = errors.New("cannot checkout after 6 PM; please submit a checkout correction request")

	// QR errors
	ErrQRExpired        = errors.New("QR code has expired")
	ErrQRAlreadyUsed    = errors.New("QR code has already been used")
	ErrQRInvalidType    = errors.New("invalid QR type; only check-in QR codes are supported")
	ErrQRInvalidPayload = errors.New("QR payload is malformed or its signature does not verify")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
