package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestCanManage(t *testing.T) {
	superadmin := User{ID: "sa", Role: RoleSuperAdmin, BranchID: "b1"}
	hr := User{ID: "hr", Role: RoleHR, BranchID: "b1"}
	supervisor := User{ID: "sup", Role: RoleSupervisor, BranchID: "b1"}
	ownTherapist := User{ID: "t1", Role: RoleTherapist, BranchID: "b1", SupervisorID: strp("sup")}
	otherTherapist := User{ID: "t2", Role: RoleTherapist, BranchID: "b1", SupervisorID: strp("sup-2")}
	otherBranch := User{ID: "t3", Role: RoleTherapist, BranchID: "b2", SupervisorID: strp("sup")}

	assert.True(t, CanManage(superadmin, otherBranch))
	assert.True(t, CanManage(hr, ownTherapist))
	assert.False(t, CanManage(hr, otherBranch))
	assert.True(t, CanManage(supervisor, ownTherapist))
	assert.False(t, CanManage(supervisor, otherTherapist))
	assert.False(t, CanManage(supervisor, otherBranch))
	assert.False(t, CanManage(supervisor, hr))
	assert.False(t, CanManage(ownTherapist, otherTherapist))
}

func TestCanViewAttendanceOf(t *testing.T) {
	hr := User{ID: "hr", Role: RoleHR, BranchID: "b1"}
	supervisor := User{ID: "sup", Role: RoleSupervisor, BranchID: "b1"}
	therapist := User{ID: "t1", Role: RoleTherapist, BranchID: "b1"}
	otherBranch := User{ID: "t3", Role: RoleTherapist, BranchID: "b2"}

	assert.True(t, CanViewAttendanceOf(hr, otherBranch))
	assert.True(t, CanViewAttendanceOf(supervisor, therapist))
	assert.False(t, CanViewAttendanceOf(supervisor, otherBranch))
	assert.True(t, CanViewAttendanceOf(therapist, therapist))
	assert.False(t, CanViewAttendanceOf(therapist, otherBranch))
}

func TestCanResolveCheckoutRequest(t *testing.T) {
	hr := User{ID: "hr", Role: RoleHR}
	assigned := User{ID: "sup", Role: RoleSupervisor}
	other := User{ID: "sup-2", Role: RoleSupervisor}
	therapist := User{ID: "t1", Role: RoleTherapist}

	assert.True(t, CanResolveCheckoutRequest(hr, "sup"))
	assert.True(t, CanResolveCheckoutRequest(assigned, "sup"))
	assert.False(t, CanResolveCheckoutRequest(other, "sup"))
	assert.False(t, CanResolveCheckoutRequest(therapist, "sup"))
}

func TestCanResolveLeave(t *testing.T) {
	hr := User{ID: "hr", Role: RoleHR, BranchID: "b2"}
	supervisor := User{ID: "sup", Role: RoleSupervisor, BranchID: "b1"}
	therapist := User{ID: "t1", Role: RoleTherapist, BranchID: "b1"}

	assert.True(t, CanResolveLeave(hr, "b1"))
	assert.True(t, CanResolveLeave(supervisor, "b1"))
	assert.False(t, CanResolveLeave(supervisor, "b2"))
	assert.False(t, CanResolveLeave(therapist, "b1"))
}

func TestCanEditLeave(t *testing.T) {
	owner := User{ID: "t1", Role: RoleTherapist, BranchID: "b1"}
	peer := User{ID: "t2", Role: RoleTherapist, BranchID: "b1"}
	supervisor := User{ID: "sup", Role: RoleSupervisor, BranchID: "b1"}

	assert.True(t, CanEditLeave(owner, "t1", "b1"))
	assert.False(t, CanEditLeave(peer, "t1", "b1"))
	assert.True(t, CanEditLeave(supervisor, "t1", "b1"))
	assert.False(t, CanEditLeave(supervisor, "t1", "b2"))
}

func TestValidRole(t *testing.T) {
	for _, s := range []string{"therapist", "supervisor", "hr", "superadmin"} {
		assert.True(t, ValidRole(s), s)
	}
	for _, s := range []string{"admin", "Therapist", ""} {
		assert.False(t, ValidRole(s), s)
	}
}
