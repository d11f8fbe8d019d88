package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // v7, uppercase
		"123e4567-e89b-12d3-a456-426614174000", // v1
		"f47ac10b-58cc-4372-a567-0e02b2c3d479", // v4
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"0188d0f2-7b8c-9b4a-8a2b-6b8b8b8b8b8b", // invalid version nibble
		"0188d0f2-7b8c-7b4a-ca2b-6b8b8b8b8b8b", // invalid variant nibble
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"12345", true},
		{"0", true},
		{"12a45", false},
		{"-123", false},
		{"12.5", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsNumeric(c.input)
		if got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-15", "2024-02-29", "1999-12-31"}
	invalid := []string{"2026-13-01", "2026-01-32", "2025-02-29", "15-01-2026", "2026/01/15", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:30", "00:00", "23:59", "17:45:30"}
	invalid := []string{"24:00", "09:60", "9:30am", "093000", ""}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"JEY-0042", "AB-123", "ABCDE-123456"}
	invalid := []string{"jey-0042", "JEY0042", "J-123", "ABCDEF-123", "JEY-12", "JEY-1234567", "JEY-12a4", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+919876543210", "9876543210", "+91 98765 43210", "98765-43210"}
	invalid := []string{"12345678", "1234567890123456", "+91abc543210", "", "++919876543210"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"therapist", "supervisor", "hr"}
	cases := []struct {
		value string
		want  bool
	}{
		{"therapist", true},
		{"hr", true},
		{"superadmin", false},
		{"Therapist", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsInSlice(c.value, roles)
		if got != c.want {
			t.Errorf("IsInSlice(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-01-15T10:30:00Z",
		"2026-01-15T10:30:00+05:30",
		"2026-01-15T10:30:00.123456789Z",
	}
	invalid := []string{"2026-01-15 10:30:00", "2026-01-15", "10:30:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "role", Message: "unknown role"},
	}
	want := "email: invalid email format; role: unknown role"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "invalid email format" || m["role"] != "unknown role" {
		t.Errorf("ToMap() = %v", m)
	}
}
