package user

import "time"

type Role string

const (
	RoleTherapist  Role = "therapist"  // Regular staff, self-scope only
	RoleSupervisor Role = "supervisor" // Reviews their branch's therapists
	RoleHR         Role = "hr"         // All branches
	RoleSuperAdmin Role = "superadmin" // Full access
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleTherapist, RoleSupervisor, RoleHR, RoleSuperAdmin:
		return true
	}
	return false
}

// User is an employee of the center. Supervisor assignment is stored as
// a lookup key only, validated at write time (role must be supervisor,
// never self), so misconfigured hierarchies cannot form ownership
// cycles.
type User struct {
	ID           string
	EmployeeCode string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	BranchID     string
	MobileNumber string
	LoginTime    time.Time // time-of-day, date portion ignored
	GraceMinutes int
	SupervisorID *string
	IsVerified   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joins
	BranchName     *string
	SupervisorName *string
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsReviewer reports whether the user can resolve requests at all.
func (u *User) IsReviewer() bool {
	return u.Role == RoleSupervisor || u.Role == RoleHR || u.Role == RoleSuperAdmin
}
