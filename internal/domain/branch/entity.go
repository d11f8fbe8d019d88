package branch

import "time"

// Branch is a center location. Employee visibility for supervisors is
// scoped to their branch.
type Branch struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived counts, populated on list/get
	ActiveEmployees int64
	Therapists      int64
}
