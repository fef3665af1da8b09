package constants

// Role is the closed set of account roles. Kept as a typed string so it can go
// straight into JWT claims and gorm columns while still being checked at the
// boundaries.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTeacher    Role = "TEACHER"
	RoleSupervisor Role = "SUPERVISOR"
)

// Reviewers are the roles allowed to approve or reject activities.
var Reviewers = []Role{RoleAdmin, RoleSupervisor}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleSupervisor:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole maps a raw claim/DB value onto the closed set; ok is false for
// anything outside it.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

const (
	MsgReviewerOnly = "Access denied: requires admin or supervisor role"
	MsgAdminOnly    = "Access denied: requires admin role"
	MsgTeacherOnly  = "Access denied: requires teacher role"
)
