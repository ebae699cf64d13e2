package auth

import "fmt"

// Role is the closed set of actor roles. Admins hold elevated privilege;
// teachers are standard actors who manage only their own bookings.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTeacher:
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
