package user

// Role policy lives here as (actor, action, ownership) -> allow so
// that handlers and services never compare role strings directly.

// CanManage reports whether actor may create/update/deactivate target.
func CanManage(actor User, target User) bool {
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleHR:
		return target.BranchID == actor.BranchID
	case RoleSupervisor:
		return target.BranchID == actor.BranchID &&
			target.Role == RoleTherapist &&
			target.SupervisorID != nil && *target.SupervisorID == actor.ID
	}
	return false
}

// CanViewAttendanceOf reports whether actor may read target's
// attendance records.
func CanViewAttendanceOf(actor User, target User) bool {
	switch actor.Role {
	case RoleSuperAdmin, RoleHR:
		return true
	case RoleSupervisor:
		return target.BranchID == actor.BranchID
	case RoleTherapist:
		return actor.ID == target.ID
	}
	return false
}

// CanResolveCheckoutRequest limits resolution to the named supervisor
// or an HR/superadmin account.
func CanResolveCheckoutRequest(actor User, assignedSupervisorID string) bool {
	switch actor.Role {
	case RoleSuperAdmin, RoleHR:
		return true
	case RoleSupervisor:
		return actor.ID == assignedSupervisorID
	}
	return false
}

// CanResolveLeave reports whether actor may approve/reject a leave
// application filed by an employee in ownerBranchID.
func CanResolveLeave(actor User, ownerBranchID string) bool {
	switch actor.Role {
	case RoleSuperAdmin, RoleHR:
		return true
	case RoleSupervisor:
		return actor.BranchID == ownerBranchID
	}
	return false
}

// CanEditLeave covers editing or deleting a pending application:
// the owner themselves, or a supervisor/HR within branch scope.
func CanEditLeave(actor User, ownerID, ownerBranchID string) bool {
	if actor.ID == ownerID {
		return true
	}
	return CanResolveLeave(actor, ownerBranchID)
}
