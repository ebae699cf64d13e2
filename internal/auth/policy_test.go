package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanListAllBookings(t *testing.T) {
	assert.True(t, CanListAllBookings(RoleAdmin))
	assert.False(t, CanListAllBookings(RoleTeacher))
	assert.False(t, CanListAllBookings(Role("janitor")))
}

func TestCanViewBooking(t *testing.T) {
	assert.True(t, CanViewBooking(RoleAdmin))
	assert.True(t, CanViewBooking(RoleTeacher))
}

func TestCanListBookingsForUser(t *testing.T) {
	assert.True(t, CanListBookingsForUser(RoleAdmin, 1, 7))
	assert.True(t, CanListBookingsForUser(RoleTeacher, 7, 7))
	assert.False(t, CanListBookingsForUser(RoleTeacher, 7, 2))
}

func TestCanDeleteBooking(t *testing.T) {
	assert.True(t, CanDeleteBooking(RoleAdmin, 1, 7))
	assert.True(t, CanDeleteBooking(RoleTeacher, 7, 7))
	assert.False(t, CanDeleteBooking(RoleTeacher, 7, 2))
}

func TestCanManageCatalog(t *testing.T) {
	assert.True(t, CanManageCatalog(RoleAdmin))
	assert.False(t, CanManageCatalog(RoleTeacher))
}

func TestCanUpdateUser(t *testing.T) {
	assert.True(t, CanUpdateUser(RoleAdmin, 1, 7))
	assert.True(t, CanUpdateUser(RoleTeacher, 7, 7))
	assert.False(t, CanUpdateUser(RoleTeacher, 7, 2))
}

func TestCanChangeRole(t *testing.T) {
	assert.True(t, CanChangeRole(RoleAdmin))
	assert.False(t, CanChangeRole(RoleTeacher))
}

func TestCanSetUserEnabled(t *testing.T) {
	assert.True(t, CanSetUserEnabled(RoleAdmin, 1, 7, false))
	assert.True(t, CanSetUserEnabled(RoleAdmin, 1, 7, true))
	// An admin may re-enable but never disable their own account.
	assert.True(t, CanSetUserEnabled(RoleAdmin, 1, 1, true))
	assert.False(t, CanSetUserEnabled(RoleAdmin, 1, 1, false))
	assert.False(t, CanSetUserEnabled(RoleTeacher, 7, 7, false))
}

func TestCanDeleteUser(t *testing.T) {
	assert.True(t, CanDeleteUser(RoleAdmin, 1, 7))
	assert.False(t, CanDeleteUser(RoleAdmin, 1, 1))
	assert.False(t, CanDeleteUser(RoleTeacher, 7, 2))
}
