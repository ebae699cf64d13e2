package auth

// Capability checks for every operation, evaluated before any mutation.
// All functions are pure; denial carries no resource detail beyond the
// generic forbidden error built by the caller.

// CanListAllBookings covers the unscoped booking list and per-user listings
// of arbitrary actors.
func CanListAllBookings(role Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return false
	}
	return false
}

// CanViewBooking is deliberately open: any authenticated actor may fetch a
// booking by id. This mirrors the observed behavior of the system this
// replaces; tightening it to creator-only would break existing clients.
func CanViewBooking(Role) bool { return true }

// CanListBookingsForUser allows admins to list anyone's bookings and
// standard actors to list only their own.
func CanListBookingsForUser(role Role, actorID, targetUserID int) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return actorID == targetUserID
	}
	return false
}

// CanDeleteBooking allows admins to delete any booking and standard actors
// to delete only bookings they created.
func CanDeleteBooking(role Role, actorID, ownerID int) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return actorID == ownerID
	}
	return false
}

// CanManageCatalog covers create/update/delete of spaces and time slots.
func CanManageCatalog(role Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return false
	}
	return false
}

// CanUpdateUser allows admins to update anyone and actors to update
// themselves. Role changes are gated separately by CanChangeRole.
func CanUpdateUser(role Role, actorID, targetUserID int) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return actorID == targetUserID
	}
	return false
}

// CanChangeRole restricts role reassignment to admins; standard actors
// cannot self-promote.
func CanChangeRole(role Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return false
	}
	return false
}

// CanSetUserEnabled allows admins to enable or disable accounts, except
// disabling their own.
func CanSetUserEnabled(role Role, actorID, targetUserID int, enabled bool) bool {
	switch role {
	case RoleAdmin:
		if actorID == targetUserID && !enabled {
			return false
		}
		return true
	case RoleTeacher:
		return false
	}
	return false
}

// CanDeleteUser allows admins to delete any account except their own.
func CanDeleteUser(role Role, actorID, targetUserID int) bool {
	switch role {
	case RoleAdmin:
		return actorID != targetUserID
	case RoleTeacher:
		return false
	}
	return false
}
