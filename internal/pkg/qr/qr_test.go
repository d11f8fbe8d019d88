package qr

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	signer := NewSigner("test-qr-secret")
	original := Payload{
		EmployeeCode: "JEY-0042",
		Type:         "attendance_checkin",
		Timestamp:    "2026-03-02T09:31:00+05:30",
		BranchID:     "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}

	payload, signature, err := signer.Encode(original)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	require.NotEmpty(t, signature)

	decoded, err := signer.Decode(payload, signature)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	signer := NewSigner("test-qr-secret")
	payload, signature, err := signer.Encode(Payload{
		EmployeeCode: "JEY-0042",
		Type:         "attendance_checkin",
		Timestamp:    "2026-03-02T09:31:00+05:30",
	})
	require.NoError(t, err)

	tampered := strings.Replace(payload, "JEY-0042", "JEY-0099", 1)
	_, err = signer.Decode(tampered, signature)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	payload, signature, err := NewSigner("secret-a").Encode(Payload{EmployeeCode: "JEY-0042"})
	require.NoError(t, err)

	_, err = NewSigner("secret-b").Decode(payload, signature)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestIssuedAt(t *testing.T) {
	p := Payload{Timestamp: "2026-03-02T09:31:00+05:30"}
	got, err := p.IssuedAt()
	require.NoError(t, err)

	loc := time.FixedZone("IST", 5*3600+1800)
	assert.True(t, got.Equal(time.Date(2026, 3, 2, 9, 31, 0, 0, loc)))

	_, err = Payload{Timestamp: "not-a-timestamp"}.IssuedAt()
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	signer := NewSigner("test-qr-secret")
	payload, signature, err := signer.Encode(Payload{
		EmployeeCode: "JEY-0042",
		Type:         "attendance_checkin",
		Timestamp:    "2026-03-02T09:31:00+05:30",
	})
	require.NoError(t, err)

	uri, err := RenderPNG(payload, signature)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Greater(t, len(uri), len("data:image/png;base64,"))
}
