package services

import (
	"testing"
	"time"

	"guest-companion-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Generate(42, "manager@riviera.example", models.RoleManager, uintPtr(7))
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ProfileID)
	assert.Equal(t, "manager@riviera.example", claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
	require.NotNil(t, claims.HotelID)
	assert.Equal(t, uint(7), *claims.HotelID)
}

func TestTokenSuperAdminHasNoHotel(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Generate(1, "root@example.com", models.RoleSuperAdmin, nil)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Nil(t, claims.HotelID)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.Generate(1, "a@b.c", models.RoleStaff, nil)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenWrongSecret(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	other := NewTokenService("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := svc.Generate(1, "a@b.c", models.RoleStaff, nil)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
