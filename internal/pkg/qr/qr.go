package qr

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

var ErrBadSignature = errors.New("qr: payload signature does not verify")

// Payload is the JSON carried inside a check-in QR code. The timestamp
// records issuance; validity is checked against it at scan time, not by
// anything stored in the code itself.
type Payload struct {
	EmployeeCode string `json:"employee_id"`
	Type         string `json:"type"`
	Timestamp    string `json:"timestamp"` // RFC3339
	BranchID     string `json:"branch_id"`
}

// Signer creates and verifies detached HMAC-SHA256 signatures over
// serialized payloads, so a scanned code cannot be forged or altered.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Encode serializes the payload and returns it with its signature,
// both ready to embed in a QR image.
func (s *Signer) Encode(p Payload) (payload string, signature string, err error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", "", err
	}
	return string(raw), s.sign(raw), nil
}

// Decode verifies the signature and unmarshals the payload.
func (s *Signer) Decode(payload, signature string) (Payload, error) {
	raw := []byte(payload)
	if !hmac.Equal([]byte(s.sign(raw)), []byte(signature)) {
		return Payload{}, ErrBadSignature
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

func (s *Signer) sign(raw []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(raw)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// IssuedAt parses the payload's issuance instant.
func (p Payload) IssuedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, p.Timestamp)
}

// RenderPNG renders the signed payload as a base64 data URI PNG ready
// to drop into an <img> tag.
func RenderPNG(payload, signature string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"payload":   payload,
		"signature": signature,
	})
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(body), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
