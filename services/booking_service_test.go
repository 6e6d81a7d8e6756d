package services

import (
	"testing"

	"garagespace/constants"
	apperrors "garagespace/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveUserID(t *testing.T) {
	admin := Actor{UserID: 1, IsAdmin: true}
	user := Actor{UserID: 7, IsAdmin: false}

	// Admins may book on behalf of someone else.
	assert.Equal(t, uint(42), EffectiveUserID(admin, 42))
	assert.Equal(t, uint(1), EffectiveUserID(admin, 0))

	// Regular users always get their own id, whatever the payload says.
	assert.Equal(t, uint(7), EffectiveUserID(user, 42))
	assert.Equal(t, uint(7), EffectiveUserID(user, 0))
	assert.Equal(t, uint(7), EffectiveUserID(user, 7))
}

func TestInitialStatusDefaults(t *testing.T) {
	admin := Actor{UserID: 1, IsAdmin: true}
	user := Actor{UserID: 7, IsAdmin: false}

	status, err := InitialStatus(user, "")
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusPending, status)

	status, err = InitialStatus(admin, "")
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusApproved, status)
}

func TestInitialStatusExplicit(t *testing.T) {
	admin := Actor{UserID: 1, IsAdmin: true}
	user := Actor{UserID: 7, IsAdmin: false}

	status, err := InitialStatus(admin, constants.BookingStatusRemoved)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusRemoved, status)

	// Only admins may pick a status; a user sending one is refused
	// outright rather than silently downgraded.
	_, err = InitialStatus(user, constants.BookingStatusApproved)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErr.Code)

	_, err = InitialStatus(admin, "archived")
	assert.Error(t, err)
}
