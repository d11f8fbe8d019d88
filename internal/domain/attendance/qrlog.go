package attendance

import "time"

const (
	QRTypeCheckin = "checkin"

	// QRValidity is the fixed window during which a generated QR
	// payload may be scanned.
	QRValidity = 3 * time.Minute
)

// QRCodeLog records a QR issuance so a payload can only be redeemed
// once and only within its validity window.
type QRCodeLog struct {
	ID           string
	EmployeeCode string
	IssuedAt     time.Time
	QRType       string
	IsUsed       bool
	UsedAt       *time.Time
	CreatedAt    time.Time
}

// Expired reports whether the code's validity window has lapsed at now.
func (q *QRCodeLog) Expired(now time.Time) bool {
	return now.Sub(q.IssuedAt) > QRValidity
}
